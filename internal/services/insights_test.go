package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentmatch/job-matcher/internal/models"
)

// stubScorer scores jobs by title so ranking is deterministic.
type stubScorer struct {
	scores map[string]float64
}

func (s *stubScorer) Score(ctx context.Context, resume models.ResumeAnalysis, job models.JobAnalysis) (float64, models.MatchDetails) {
	return s.scores[job.Title], models.DefaultMatchDetails()
}

func TestRecommendJobsRanksByScore(t *testing.T) {
	scorer := &stubScorer{scores: map[string]float64{
		"Backend Engineer":  80,
		"Data Analyst":      40,
		"Platform Engineer": 95,
		"QA Engineer":       60,
	}}
	insights := NewInsightsService(scorer, &stubGateway{})

	jobs := []models.Job{
		{Title: "Backend Engineer"},
		{Title: "Data Analyst"},
		{Title: "Platform Engineer"},
		{Title: "QA Engineer"},
	}

	top := insights.RecommendJobs(context.Background(), models.DefaultResumeAnalysis(), jobs, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "Platform Engineer", top[0].Title)
	assert.Equal(t, "Backend Engineer", top[1].Title)
}

func TestRecommendJobsLimitExceedsJobs(t *testing.T) {
	scorer := &stubScorer{scores: map[string]float64{"Backend Engineer": 80}}
	insights := NewInsightsService(scorer, &stubGateway{})

	top := insights.RecommendJobs(context.Background(), models.DefaultResumeAnalysis(),
		[]models.Job{{Title: "Backend Engineer"}}, 5)

	assert.Len(t, top, 1)
}

func TestRecommendJobsTiesKeepInputOrder(t *testing.T) {
	scorer := &stubScorer{scores: map[string]float64{"A": 50, "B": 50, "C": 50}}
	insights := NewInsightsService(scorer, &stubGateway{})

	jobs := []models.Job{{Title: "A"}, {Title: "B"}, {Title: "C"}}
	top := insights.RecommendJobs(context.Background(), models.DefaultResumeAnalysis(), jobs, 3)

	assert.Equal(t, "A", top[0].Title)
	assert.Equal(t, "B", top[1].Title)
	assert.Equal(t, "C", top[2].Title)
}

func TestMarketAnalysisCountsLowercased(t *testing.T) {
	insights := NewInsightsService(&stubScorer{}, &stubGateway{})

	jobs := []models.Job{
		{
			RequiredSkills:  models.SkillRequirementList{{Name: "Go"}, {Name: "SQL"}},
			PreferredSkills: models.SkillRequirementList{{Name: "Docker"}},
		},
		{
			RequiredSkills:  models.SkillRequirementList{{Name: "go"}, {Name: "Python"}},
			PreferredSkills: models.SkillRequirementList{{Name: "docker"}, {Name: "AWS"}},
		},
	}

	analysis := insights.MarketAnalysis(jobs)

	assert.Equal(t, 2, analysis.TotalJobsAnalyzed)
	require.NotEmpty(t, analysis.TopRequiredSkills)

	// casing variants collapse into one entry
	assert.Equal(t, models.SkillFrequency{Name: "go", Count: 2}, analysis.TopRequiredSkills[0])
	assert.Equal(t, models.SkillFrequency{Name: "docker", Count: 2}, analysis.TopPreferredSkills[0])
	assert.False(t, analysis.AnalysisDate.IsZero())
}

func TestMarketAnalysisTiesKeepFirstSeenOrder(t *testing.T) {
	insights := NewInsightsService(&stubScorer{}, &stubGateway{})

	jobs := []models.Job{
		{RequiredSkills: models.SkillRequirementList{{Name: "sql"}, {Name: "go"}, {Name: "python"}}},
	}

	analysis := insights.MarketAnalysis(jobs)

	require.Len(t, analysis.TopRequiredSkills, 3)
	assert.Equal(t, "sql", analysis.TopRequiredSkills[0].Name)
	assert.Equal(t, "go", analysis.TopRequiredSkills[1].Name)
	assert.Equal(t, "python", analysis.TopRequiredSkills[2].Name)
}

func TestMarketAnalysisTopTenCap(t *testing.T) {
	insights := NewInsightsService(&stubScorer{}, &stubGateway{})

	var skills models.SkillRequirementList
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		skills = append(skills, models.SkillRequirement{Name: name})
	}

	analysis := insights.MarketAnalysis([]models.Job{{RequiredSkills: skills}})
	assert.Len(t, analysis.TopRequiredSkills, 10)
}

func TestImproveResumeParsesResponse(t *testing.T) {
	gw := &stubGateway{response: `{
  "format": ["Use consistent headings"],
  "bullet_points": ["Lead with impact"],
  "keywords": ["microservices"],
  "skills": ["Go"]
}`}
	insights := NewInsightsService(&stubScorer{}, gw)

	suggestions, err := insights.ImproveResume(context.Background(), "resume text")
	require.NoError(t, err)
	assert.Contains(t, suggestions, "format")
	assert.Contains(t, suggestions, "keywords")
}

func TestImproveResumeGatewayFailure(t *testing.T) {
	gw := &stubGateway{response: "not json"}
	insights := NewInsightsService(&stubScorer{}, gw)

	_, err := insights.ImproveResume(context.Background(), "resume text")
	assert.Error(t, err)
}
