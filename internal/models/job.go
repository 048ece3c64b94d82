package models

import (
	"database/sql/driver"
	"time"
)

type Job struct {
	ID               uint                 `gorm:"primaryKey" json:"id"`
	CompanyID        uint                 `gorm:"not null;index" json:"company_id"`
	Title            string               `gorm:"type:text;index" json:"title"`
	DescriptionText  string               `gorm:"type:text" json:"description_text"`
	RequiredSkills   SkillRequirementList `gorm:"type:jsonb" json:"required_skills"`
	PreferredSkills  SkillRequirementList `gorm:"type:jsonb" json:"preferred_skills"`
	Responsibilities StringList           `gorm:"type:jsonb" json:"responsibilities"`
	Qualifications   StringList           `gorm:"type:jsonb" json:"qualifications"`
	PriorityWeights  MatchWeights         `gorm:"type:jsonb" json:"priority_weights"`
	CreatedAt        time.Time            `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time            `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}

// SkillRequirement is a job-side skill with an importance weight in [0,1].
type SkillRequirement struct {
	Name       string  `json:"name"`
	Importance float64 `json:"importance"`
}

type SkillRequirementList []SkillRequirement

func (l SkillRequirementList) Value() (driver.Value, error) {
	if l == nil {
		l = SkillRequirementList{}
	}
	return jsonValue(l)
}

func (l *SkillRequirementList) Scan(value interface{}) error {
	return jsonScan(l, value)
}

// JobAnalysis is the normalized record produced by the job analyzer.
type JobAnalysis struct {
	Title            string             `json:"title"`
	RequiredSkills   []SkillRequirement `json:"required_skills"`
	PreferredSkills  []SkillRequirement `json:"preferred_skills"`
	Responsibilities []string           `json:"responsibilities"`
	Qualifications   []string           `json:"qualifications"`
}

// DefaultJobAnalysis returns the safe record used when parsing fails.
func DefaultJobAnalysis() JobAnalysis {
	return JobAnalysis{
		Title:            "Untitled Job",
		RequiredSkills:   []SkillRequirement{},
		PreferredSkills:  []SkillRequirement{},
		Responsibilities: []string{},
		Qualifications:   []string{},
	}
}

func (a *JobAnalysis) Normalize() {
	if a.Title == "" {
		a.Title = "Untitled Job"
	}
	if a.RequiredSkills == nil {
		a.RequiredSkills = []SkillRequirement{}
	}
	if a.PreferredSkills == nil {
		a.PreferredSkills = []SkillRequirement{}
	}
	if a.Responsibilities == nil {
		a.Responsibilities = []string{}
	}
	if a.Qualifications == nil {
		a.Qualifications = []string{}
	}
}

// MatchProfile is the job-side payload the match scorer sees.
func (j *Job) MatchProfile() JobAnalysis {
	profile := JobAnalysis{
		Title:            j.Title,
		RequiredSkills:   j.RequiredSkills,
		PreferredSkills:  j.PreferredSkills,
		Responsibilities: j.Responsibilities,
		Qualifications:   j.Qualifications,
	}
	profile.Normalize()
	return profile
}
