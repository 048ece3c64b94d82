package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"talentmatch/job-matcher/internal/models"
)

// stubGateway returns canned responses without any model I/O.
type stubGateway struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGateway) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func (s *stubGateway) GenerateWithFile(ctx context.Context, prompt string, filePath string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func TestMatchScorerGatewayFailure(t *testing.T) {
	gw := &stubGateway{err: errors.New("quota exhausted")}
	scorer := NewMatchScorer(gw)

	score, details := scorer.Score(context.Background(), models.DefaultResumeAnalysis(), models.DefaultJobAnalysis())

	assert.Equal(t, 0.0, score)
	assert.Equal(t, models.DefaultMatchDetails(), details)
}

func TestMatchScorerUnusableResponse(t *testing.T) {
	gw := &stubGateway{response: "I cannot help with that."}
	scorer := NewMatchScorer(gw)

	score, details := scorer.Score(context.Background(), models.DefaultResumeAnalysis(), models.DefaultJobAnalysis())

	assert.Equal(t, 0.0, score)
	assert.Equal(t, models.DefaultMatchDetails(), details)
}

func TestMatchScorerPassesThroughOverallMatch(t *testing.T) {
	// overall_match is stored as reported, not recomputed from sections
	gw := &stubGateway{response: `Analysis complete.
{
  "overall_match": 77.5,
  "sections": {
    "skills": {
      "score": 80.0,
      "required": {"matched": ["Go"], "missing": ["Kubernetes"], "match_rate": 50.0},
      "preferred": {"matched": [], "missing": ["AWS"], "match_rate": 0.0}
    },
    "experience": {"score": 10.0, "matching_aspects": [], "missing_aspects": [], "experience_entries": []},
    "education": {"score": 10.0, "matching_aspects": [], "missing_aspects": [], "highest_education": "bachelor"}
  },
  "weights_applied": {"skills": 0.6, "experience": 0.3, "education": 0.1}
}`}
	scorer := NewMatchScorer(gw)

	score, details := scorer.Score(context.Background(), models.DefaultResumeAnalysis(), models.DefaultJobAnalysis())

	assert.Equal(t, 77.5, score)
	assert.Equal(t, 77.5, details.OverallMatch)
	assert.Equal(t, []string{"Go"}, details.Sections.Skills.Required.Matched)
	assert.NotNil(t, details.Sections.Experience.MatchingAspects)
}

func TestMatchScorerNormalizesMissingCollections(t *testing.T) {
	gw := &stubGateway{response: `{"overall_match": 12.0, "sections": {}}`}
	scorer := NewMatchScorer(gw)

	_, details := scorer.Score(context.Background(), models.DefaultResumeAnalysis(), models.DefaultJobAnalysis())

	assert.NotNil(t, details.Sections.Skills.Required.Matched)
	assert.NotNil(t, details.Sections.Skills.Preferred.Missing)
	assert.NotNil(t, details.Sections.Experience.ExperienceEntries)
	assert.NotNil(t, details.Sections.Education.MissingAspects)
	assert.Equal(t, models.DefaultMatchWeights(), details.WeightsApplied)
}

func TestResumeAnalyzerDegradesToDefault(t *testing.T) {
	gw := &stubGateway{err: errors.New("timeout")}
	analyzer := NewResumeAnalyzer(gw)

	analysis, err := analyzer.Analyze(context.Background(), "some resume text")

	assert.Error(t, err)
	assert.Equal(t, models.DefaultResumeAnalysis(), analysis)
}

func TestResumeAnalyzerParsesWrappedJSON(t *testing.T) {
	gw := &stubGateway{response: `Here you go:
{"parsed_sections": {"summary": "Backend engineer", "contact": {"name": "Ada", "email": "ada@example.com", "phone": "", "location": ""}},
 "skills": [{"name": "Go", "proficiency": "Expert", "context": "APIs"}]}`}
	analyzer := NewResumeAnalyzer(gw)

	analysis, err := analyzer.Analyze(context.Background(), "some resume text")

	assert.NoError(t, err)
	assert.Equal(t, "Ada", analysis.ParsedSections.Contact.Name)
	assert.Len(t, analysis.Skills, 1)
	// unmentioned collections come back empty, not nil
	assert.NotNil(t, analysis.Experience)
	assert.NotNil(t, analysis.Projects)
}

func TestJobAnalyzerDegradesToDefault(t *testing.T) {
	gw := &stubGateway{response: "no json here"}
	analyzer := NewJobAnalyzer(gw)

	analysis, err := analyzer.Analyze(context.Background(), "job description")

	assert.Error(t, err)
	assert.Equal(t, models.DefaultJobAnalysis(), analysis)
	assert.Equal(t, "Untitled Job", analysis.Title)
}

func TestJobAnalyzerFillsEmptyTitle(t *testing.T) {
	gw := &stubGateway{response: `{"title": "", "required_skills": [{"name": "Go", "importance": 1.0}]}`}
	analyzer := NewJobAnalyzer(gw)

	analysis, err := analyzer.Analyze(context.Background(), "job description")

	assert.NoError(t, err)
	assert.Equal(t, "Untitled Job", analysis.Title)
	assert.Len(t, analysis.RequiredSkills, 1)
}
