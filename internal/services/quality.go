package services

import (
	"regexp"

	"talentmatch/job-matcher/internal/models"
)

// quantifiablePattern flags achievement lines that carry a measurable result.
var quantifiablePattern = regexp.MustCompile(`(?i)\d+%|\d+x|\$\d+|\d+ percent|increased|decreased|improved|reduced|saved|generated`)

// QualityScorer computes an intrinsic quality score for a parsed resume. It
// is a pure heuristic over the stored record and never calls the model.
//
// Section scoring:
//   - experience: 10 points per quantifiable achievement, capped at 100
//   - skills: up to 50 for breadth (5 per skill), +25 if any skill lists a
//     proficiency, +25 if any skill carries context
//   - education: up to 50 for entries (25 each), +25 if any entry has a GPA,
//     +25 if any entry has a field of study
//
// The overall score weights the sections 0.5/0.3/0.2.
type QualityScorer struct {
	quantifiable []*regexp.Regexp
}

// NewQualityScorer builds a scorer. Custom quantifiable-achievement patterns
// may be supplied; with none, the default set applies.
func NewQualityScorer(patterns ...*regexp.Regexp) *QualityScorer {
	if len(patterns) == 0 {
		patterns = []*regexp.Regexp{quantifiablePattern}
	}
	return &QualityScorer{quantifiable: patterns}
}

func (q *QualityScorer) isQuantifiable(achievement string) bool {
	for _, pattern := range q.quantifiable {
		if pattern.MatchString(achievement) {
			return true
		}
	}
	return false
}

// Score evaluates a resume record and returns the breakdown with suggestions.
func (q *QualityScorer) Score(analysis models.ResumeAnalysis) models.QualityScore {
	analysis.Normalize()

	hasQuantifiable := false
	experienceScore := 0.0
	for _, exp := range analysis.Experience {
		for _, achievement := range exp.Achievements {
			if q.isQuantifiable(achievement) {
				hasQuantifiable = true
				experienceScore += 10
			}
		}
	}
	experienceScore = min(100, experienceScore)

	skillsScore := 0.0
	if len(analysis.Skills) > 0 {
		skillsScore += min(50, float64(len(analysis.Skills))*5)

		for _, skill := range analysis.Skills {
			if skill.Proficiency != "" {
				skillsScore += 25
				break
			}
		}
		for _, skill := range analysis.Skills {
			if skill.Context != "" {
				skillsScore += 25
				break
			}
		}
	}
	skillsScore = min(100, skillsScore)

	educationScore := 0.0
	if len(analysis.Education) > 0 {
		educationScore += min(50, float64(len(analysis.Education))*25)

		for _, edu := range analysis.Education {
			if edu.GPA != "" {
				educationScore += 25
				break
			}
		}
		for _, edu := range analysis.Education {
			if edu.FieldOfStudy != "" {
				educationScore += 25
				break
			}
		}
	}
	educationScore = min(100, educationScore)

	suggestions := []string{}
	if !hasQuantifiable {
		suggestions = append(suggestions, "Add quantifiable achievements to your experience (e.g., percentages, amounts)")
	}
	if skillsScore < 60 {
		suggestions = append(suggestions, "Add more skills with proficiency levels and context")
	}
	if educationScore < 60 {
		suggestions = append(suggestions, "Provide more details in your education section, such as GPA and field of study")
	}

	return models.QualityScore{
		OverallScore: experienceScore*0.5 + skillsScore*0.3 + educationScore*0.2,
		Sections: models.QualitySections{
			Experience: experienceScore,
			Skills:     skillsScore,
			Education:  educationScore,
		},
		Suggestions: suggestions,
	}
}
