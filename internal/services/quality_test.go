package services

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"talentmatch/job-matcher/internal/models"
)

func TestQualityScoreFullSkillsPartialEducation(t *testing.T) {
	analysis := models.ResumeAnalysis{
		Skills: []models.Skill{
			{Name: "Go", Proficiency: "Expert"},
			{Name: "SQL", Context: "analytics pipelines"},
		},
		Education: []models.Education{
			{Institution: "State University", Degree: "BSc", GPA: "3.8"},
			{Institution: "Community College", Degree: "AS"},
		},
	}
	for i := 0; i < 10; i++ {
		analysis.Skills = append(analysis.Skills, models.Skill{Name: fmt.Sprintf("Skill%d", i)})
	}

	score := NewQualityScorer().Score(analysis)

	// 12 skills: breadth capped at 50, +25 proficiency, +25 context
	assert.Equal(t, 100.0, score.Sections.Skills)
	// no achievements at all
	assert.Equal(t, 0.0, score.Sections.Experience)
	// 2 entries (50) + GPA (25), no field of study
	assert.Equal(t, 75.0, score.Sections.Education)
	// 0*0.5 + 100*0.3 + 75*0.2
	assert.Equal(t, 45.0, score.OverallScore)

	// only the quantifiable-achievements suggestion should fire
	assert.Equal(t, []string{
		"Add quantifiable achievements to your experience (e.g., percentages, amounts)",
	}, score.Suggestions)
}

func TestQualityScoreQuantifiableAchievements(t *testing.T) {
	analysis := models.ResumeAnalysis{
		Experience: []models.Experience{
			{
				Role: "Engineer",
				Achievements: []string{
					"Increased throughput by 40%",
					"Saved $120k in infrastructure costs",
					"Wrote documentation",
				},
			},
			{
				Role:         "Analyst",
				Achievements: []string{"Reduced report latency 3x"},
			},
		},
	}

	score := NewQualityScorer().Score(analysis)

	// 3 quantifiable achievements, 10 points each
	assert.Equal(t, 30.0, score.Sections.Experience)
	assert.NotContains(t, score.Suggestions,
		"Add quantifiable achievements to your experience (e.g., percentages, amounts)")
}

func TestQualityScoreExperienceCap(t *testing.T) {
	exp := models.Experience{Role: "Engineer"}
	for i := 0; i < 15; i++ {
		exp.Achievements = append(exp.Achievements, "improved build times again")
	}

	score := NewQualityScorer().Score(models.ResumeAnalysis{
		Experience: []models.Experience{exp},
	})

	assert.Equal(t, 100.0, score.Sections.Experience)
}

func TestQualityScoreEmptyResume(t *testing.T) {
	score := NewQualityScorer().Score(models.ResumeAnalysis{})

	assert.Equal(t, 0.0, score.OverallScore)
	assert.Equal(t, 0.0, score.Sections.Experience)
	assert.Equal(t, 0.0, score.Sections.Skills)
	assert.Equal(t, 0.0, score.Sections.Education)
	assert.Len(t, score.Suggestions, 3)
}

func TestQualityScorerCustomPatterns(t *testing.T) {
	scorer := NewQualityScorer(regexp.MustCompile(`shipped`))

	analysis := models.ResumeAnalysis{
		Experience: []models.Experience{
			{Achievements: []string{"shipped the billing rewrite", "increased revenue by 20%"}},
		},
	}

	score := scorer.Score(analysis)
	// only the custom pattern counts; the default set is replaced
	assert.Equal(t, 10.0, score.Sections.Experience)
}

func TestQualityScoreIsPure(t *testing.T) {
	analysis := models.ResumeAnalysis{
		Skills: []models.Skill{{Name: "Go", Proficiency: "Expert", Context: "services"}},
		Education: []models.Education{
			{Institution: "University", GPA: "3.9", FieldOfStudy: "CS"},
		},
	}

	scorer := NewQualityScorer()
	first := scorer.Score(analysis)
	second := scorer.Score(analysis)
	assert.Equal(t, first, second)
}
