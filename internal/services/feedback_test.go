package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentmatch/job-matcher/internal/models"
)

func sampleMatchDetails() models.MatchDetails {
	details := models.DefaultMatchDetails()
	details.OverallMatch = 55.0
	details.Sections.Skills.Required.Matched = []string{"Go", "PostgreSQL"}
	details.Sections.Skills.Required.Missing = []string{"Kubernetes", "Terraform"}
	details.Sections.Skills.Preferred.Matched = []string{"Docker"}
	details.Sections.Skills.Preferred.Missing = []string{"GraphQL"}
	details.Sections.Experience.Score = 60.0
	details.Sections.Experience.MissingAspects = []string{"team leadership"}
	details.Sections.Education.Score = 40.0
	details.Sections.Education.MissingAspects = []string{"Master's degree"}
	return details
}

func TestFeedbackFallbackOnGatewayFailure(t *testing.T) {
	gw := &stubGateway{err: errors.New("unavailable")}
	gen := NewFeedbackGenerator(gw)

	fb := gen.Feedback(context.Background(), sampleMatchDetails())

	// missing skills are all required gaps plus up to three preferred ones
	assert.Equal(t, []string{"Kubernetes", "Terraform", "GraphQL"}, fb.MissingSkills)

	assert.Contains(t, fb.Improvements, "Add the required skill: Kubernetes")
	assert.Contains(t, fb.Improvements, "Add the required skill: Terraform")
	assert.Contains(t, fb.Improvements, "Consider adding the preferred skill: GraphQL")
	assert.LessOrEqual(t, len(fb.Improvements), 5)

	assert.Contains(t, fb.Strengths, "You have the required skill: Go")
	assert.Contains(t, fb.Strengths, "Your experience aligns well with job responsibilities")
	assert.NotContains(t, fb.Strengths, "Your educational background matches the job requirements")
	assert.LessOrEqual(t, len(fb.Strengths), 5)

	// missing skill names become keywords, plus long words from missing aspects
	assert.Contains(t, fb.KeywordRecommendations, "Kubernetes")
	assert.Contains(t, fb.KeywordRecommendations, "leadership")
	assert.LessOrEqual(t, len(fb.KeywordRecommendations), 10)
}

func TestFeedbackFallbackOnUnusableResponse(t *testing.T) {
	gw := &stubGateway{response: "sorry, no JSON today"}
	gen := NewFeedbackGenerator(gw)

	fb := gen.Feedback(context.Background(), sampleMatchDetails())
	assert.Equal(t, []string{"Kubernetes", "Terraform", "GraphQL"}, fb.MissingSkills)
}

func TestFeedbackUsesPolishedResponse(t *testing.T) {
	gw := &stubGateway{response: `{
  "strengths": ["Strong Go background"],
  "improvements": ["Add a Kubernetes project"],
  "missing_skills": ["Kubernetes"],
  "keyword_recommendations": ["Kubernetes", "Terraform"]
}`}
	gen := NewFeedbackGenerator(gw)

	fb := gen.Feedback(context.Background(), sampleMatchDetails())

	assert.Equal(t, []string{"Strong Go background"}, fb.Strengths)
	assert.Equal(t, []string{"Add a Kubernetes project"}, fb.Improvements)
	assert.Equal(t, []string{"Kubernetes"}, fb.MissingSkills)
}

func TestFeedbackPromptCarriesDraft(t *testing.T) {
	gw := &stubGateway{err: errors.New("unavailable")}
	gen := NewFeedbackGenerator(gw)

	gen.Feedback(context.Background(), sampleMatchDetails())

	require.Len(t, gw.prompts, 1)
	assert.Contains(t, gw.prompts[0], "Match Score: 55.0%")
	assert.Contains(t, gw.prompts[0], "Add the required skill: Kubernetes")
}

func TestFeedbackEmptyBreakdown(t *testing.T) {
	gw := &stubGateway{err: errors.New("unavailable")}
	gen := NewFeedbackGenerator(gw)

	fb := gen.Feedback(context.Background(), models.MatchDetails{})

	// all collections present, all empty
	assert.Equal(t, []string{}, fb.Strengths)
	assert.Equal(t, []string{}, fb.Improvements)
	assert.Equal(t, []string{}, fb.MissingSkills)
	assert.Equal(t, []string{}, fb.KeywordRecommendations)
}
