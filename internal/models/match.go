package models

import "database/sql/driver"

// MatchWeights is the section weight vector applied to a match. The three
// weights conceptually sum to 1.0.
type MatchWeights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
}

// DefaultMatchWeights is the platform default split (skills heavy).
func DefaultMatchWeights() MatchWeights {
	return MatchWeights{Skills: 0.6, Experience: 0.3, Education: 0.1}
}

func (w MatchWeights) Value() (driver.Value, error) {
	return jsonValue(w)
}

func (w *MatchWeights) Scan(value interface{}) error {
	return jsonScan(w, value)
}

// MatchDetails is the per-section breakdown behind a single overall score.
// overall_match is reported by the model and stored as given.
type MatchDetails struct {
	OverallMatch   float64       `json:"overall_match"`
	Sections       MatchSections `json:"sections"`
	WeightsApplied MatchWeights  `json:"weights_applied"`
}

type MatchSections struct {
	Skills     SkillsMatch     `json:"skills"`
	Experience ExperienceMatch `json:"experience"`
	Education  EducationMatch  `json:"education"`
}

type SkillsMatch struct {
	Score     float64          `json:"score"`
	Required  SkillMatchBucket `json:"required"`
	Preferred SkillMatchBucket `json:"preferred"`
}

type SkillMatchBucket struct {
	Matched   []string `json:"matched"`
	Missing   []string `json:"missing"`
	MatchRate float64  `json:"match_rate"`
}

type ExperienceMatch struct {
	Score             float64                `json:"score"`
	MatchingAspects   []string               `json:"matching_aspects"`
	MissingAspects    []string               `json:"missing_aspects"`
	ExperienceEntries []ExperienceEntryMatch `json:"experience_entries"`
}

type ExperienceEntryMatch struct {
	Role            string   `json:"role"`
	Company         string   `json:"company"`
	MatchPercentage float64  `json:"match_percentage"`
	MatchingTerms   []string `json:"matching_terms"`
}

type EducationMatch struct {
	Score           float64  `json:"score"`
	MatchingAspects []string `json:"matching_aspects"`
	MissingAspects  []string `json:"missing_aspects"`
	// One of "high school", "associate", "bachelor", "master", "phd", or
	// null when unknown.
	HighestEducation *string `json:"highest_education"`
}

// DefaultMatchDetails returns an all-zero breakdown with every collection
// present and the default weight vector. Score failures are reported with
// this shape, never with partial data.
func DefaultMatchDetails() MatchDetails {
	return MatchDetails{
		Sections: MatchSections{
			Skills: SkillsMatch{
				Required:  SkillMatchBucket{Matched: []string{}, Missing: []string{}},
				Preferred: SkillMatchBucket{Matched: []string{}, Missing: []string{}},
			},
			Experience: ExperienceMatch{
				MatchingAspects:   []string{},
				MissingAspects:    []string{},
				ExperienceEntries: []ExperienceEntryMatch{},
			},
			Education: EducationMatch{
				MatchingAspects: []string{},
				MissingAspects:  []string{},
			},
		},
		WeightsApplied: DefaultMatchWeights(),
	}
}

// Normalize fills nil collections and a zero weight vector so downstream
// consumers never see null fields.
func (d *MatchDetails) Normalize() {
	if d.Sections.Skills.Required.Matched == nil {
		d.Sections.Skills.Required.Matched = []string{}
	}
	if d.Sections.Skills.Required.Missing == nil {
		d.Sections.Skills.Required.Missing = []string{}
	}
	if d.Sections.Skills.Preferred.Matched == nil {
		d.Sections.Skills.Preferred.Matched = []string{}
	}
	if d.Sections.Skills.Preferred.Missing == nil {
		d.Sections.Skills.Preferred.Missing = []string{}
	}
	if d.Sections.Experience.MatchingAspects == nil {
		d.Sections.Experience.MatchingAspects = []string{}
	}
	if d.Sections.Experience.MissingAspects == nil {
		d.Sections.Experience.MissingAspects = []string{}
	}
	if d.Sections.Experience.ExperienceEntries == nil {
		d.Sections.Experience.ExperienceEntries = []ExperienceEntryMatch{}
	}
	if d.Sections.Education.MatchingAspects == nil {
		d.Sections.Education.MatchingAspects = []string{}
	}
	if d.Sections.Education.MissingAspects == nil {
		d.Sections.Education.MissingAspects = []string{}
	}
	if d.WeightsApplied == (MatchWeights{}) {
		d.WeightsApplied = DefaultMatchWeights()
	}
}

func (d MatchDetails) Value() (driver.Value, error) {
	return jsonValue(d)
}

func (d *MatchDetails) Scan(value interface{}) error {
	return jsonScan(d, value)
}

// Feedback is the candidate-facing result of the feedback generator. Lists
// aim for 3-5 items by convention; no hard cap is enforced here.
type Feedback struct {
	Strengths              []string `json:"strengths"`
	Improvements           []string `json:"improvements"`
	MissingSkills          []string `json:"missing_skills"`
	KeywordRecommendations []string `json:"keyword_recommendations"`
}

func DefaultFeedback() Feedback {
	return Feedback{
		Strengths:              []string{},
		Improvements:           []string{},
		MissingSkills:          []string{},
		KeywordRecommendations: []string{},
	}
}

func (f *Feedback) Normalize() {
	if f.Strengths == nil {
		f.Strengths = []string{}
	}
	if f.Improvements == nil {
		f.Improvements = []string{}
	}
	if f.MissingSkills == nil {
		f.MissingSkills = []string{}
	}
	if f.KeywordRecommendations == nil {
		f.KeywordRecommendations = []string{}
	}
}

func (f Feedback) Value() (driver.Value, error) {
	return jsonValue(f)
}

func (f *Feedback) Scan(value interface{}) error {
	return jsonScan(f, value)
}
