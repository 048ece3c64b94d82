package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare object",
			text: `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "object wrapped in prose",
			text: `Sure! Here is the JSON you asked for: {"a": 1} Hope it helps.`,
			want: `{"a": 1}`,
		},
		{
			name: "markdown fenced object",
			text: "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "closing brace inside string value",
			text: `Here: {"a": "text with } inside"} done`,
			want: `{"a": "text with } inside"}`,
		},
		{
			name: "escaped quote inside string",
			text: `{"a": "he said \"}\" loudly"}`,
			want: `{"a": "he said \"}\" loudly"}`,
		},
		{
			name: "nested objects",
			text: `prefix {"outer": {"inner": {"deep": true}}} suffix`,
			want: `{"outer": {"inner": {"deep": true}}}`,
		},
		{
			name: "only first object is taken",
			text: `{"first": 1} {"second": 2}`,
			want: `{"first": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractObject(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractObjectIdempotent(t *testing.T) {
	first, err := ExtractObject(`noise {"a": {"b": "}"}} noise`)
	require.NoError(t, err)

	second, err := ExtractObject(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExtractObjectNoObject(t *testing.T) {
	_, err := ExtractObject("the model refused to answer")
	assert.ErrorIs(t, err, ErrNoJSONObject)
}

func TestExtractObjectUnbalanced(t *testing.T) {
	_, err := ExtractObject(`{"a": {"b": 1}`)
	assert.ErrorIs(t, err, ErrUnbalancedBraces)

	_, err = ExtractObject(`{"a": "an unterminated string`)
	assert.ErrorIs(t, err, ErrUnbalancedBraces)
}

func TestUnmarshalObject(t *testing.T) {
	var out struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}

	err := UnmarshalObject(`Result below:
{"name": "go", "score": 10}
That is all.`, &out)
	require.NoError(t, err)
	assert.Equal(t, "go", out.Name)
	assert.Equal(t, 10, out.Score)
}

func TestUnmarshalObjectInvalidJSON(t *testing.T) {
	var out map[string]interface{}
	err := UnmarshalObject(`{"a": unquoted}`, &out)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoJSONObject)
}
