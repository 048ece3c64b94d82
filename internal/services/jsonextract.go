package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoJSONObject is returned when the text contains no opening brace.
	ErrNoJSONObject = errors.New("no JSON object found in text")
	// ErrUnbalancedBraces is returned when the first object never closes.
	ErrUnbalancedBraces = errors.New("unbalanced braces in text")
)

// ExtractObject recovers the first balanced {...} object from free-form
// model output, which is usually JSON wrapped in prose or markdown fences.
//
// Single forward scan with an explicit state machine (outside object /
// in object / in string / escaped). Braces inside quoted strings never
// affect depth tracking, so values like "text with } inside" stay intact.
// Input with no opening brace or an unclosed object fails deterministically.
func ExtractObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", ErrNoJSONObject
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", ErrUnbalancedBraces
}

// UnmarshalObject extracts the first balanced object from text and parses
// exactly that substring into target.
func UnmarshalObject(text string, target interface{}) error {
	obj, err := ExtractObject(text)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(obj), target); err != nil {
		return fmt.Errorf("failed to parse extracted object: %w", err)
	}

	return nil
}
