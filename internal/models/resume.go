package models

import (
	"database/sql/driver"
	"time"
)

type Resume struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	UserID         uint              `gorm:"not null;index" json:"user_id"`
	FullText       string            `gorm:"type:text" json:"full_text"`
	Parsed         ResumeAnalysis    `gorm:"type:jsonb" json:"parsed_sections"`
	Skills         SkillList         `gorm:"type:jsonb" json:"skills"`
	Experience     ExperienceList    `gorm:"type:jsonb" json:"experience"`
	Education      EducationList     `gorm:"type:jsonb" json:"education"`
	Projects       ProjectList       `gorm:"type:jsonb" json:"projects"`
	Certifications CertificationList `gorm:"type:jsonb" json:"certifications"`
	Achievements   AchievementList   `gorm:"type:jsonb" json:"achievements"`
	FilePath       *string           `gorm:"type:text" json:"file_path,omitempty"`
	FileType       string            `gorm:"type:text" json:"file_type"`
	CreatedAt      time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Resume) TableName() string {
	return "resumes"
}

// ResumeAnalysis is the normalized record produced by the resume analyzer.
// Every field is always present; failures yield DefaultResumeAnalysis rather
// than partial or nil structures.
type ResumeAnalysis struct {
	ParsedSections ParsedSections  `json:"parsed_sections"`
	Skills         []Skill         `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Achievements   []Achievement   `json:"achievements"`
}

type ParsedSections struct {
	Summary string  `json:"summary"`
	Contact Contact `json:"contact"`
}

type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type Skill struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
	Context     string `json:"context"`
}

type Experience struct {
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	GPA          string `json:"gpa"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url"`
}

type Certification struct {
	Name    string `json:"name"`
	Issuer  string `json:"issuer"`
	Date    string `json:"date"`
	Expires string `json:"expires"`
}

type Achievement struct {
	Description string `json:"description"`
}

// DefaultResumeAnalysis returns a fully populated record with empty
// collections, used whenever analysis fails.
func DefaultResumeAnalysis() ResumeAnalysis {
	return ResumeAnalysis{
		Skills:         []Skill{},
		Experience:     []Experience{},
		Education:      []Education{},
		Projects:       []Project{},
		Certifications: []Certification{},
		Achievements:   []Achievement{},
	}
}

// Normalize replaces nil collections with empty ones so that stored and
// scored records never carry null fields.
func (a *ResumeAnalysis) Normalize() {
	if a.Skills == nil {
		a.Skills = []Skill{}
	}
	if a.Experience == nil {
		a.Experience = []Experience{}
	}
	if a.Education == nil {
		a.Education = []Education{}
	}
	if a.Projects == nil {
		a.Projects = []Project{}
	}
	if a.Certifications == nil {
		a.Certifications = []Certification{}
	}
	if a.Achievements == nil {
		a.Achievements = []Achievement{}
	}
}

func (a ResumeAnalysis) Value() (driver.Value, error) {
	return jsonValue(a)
}

func (a *ResumeAnalysis) Scan(value interface{}) error {
	return jsonScan(a, value)
}

type SkillList []Skill

func (l SkillList) Value() (driver.Value, error) {
	if l == nil {
		l = SkillList{}
	}
	return jsonValue(l)
}

func (l *SkillList) Scan(value interface{}) error {
	return jsonScan(l, value)
}

type ExperienceList []Experience

func (l ExperienceList) Value() (driver.Value, error) {
	if l == nil {
		l = ExperienceList{}
	}
	return jsonValue(l)
}

func (l *ExperienceList) Scan(value interface{}) error {
	return jsonScan(l, value)
}

type EducationList []Education

func (l EducationList) Value() (driver.Value, error) {
	if l == nil {
		l = EducationList{}
	}
	return jsonValue(l)
}

func (l *EducationList) Scan(value interface{}) error {
	return jsonScan(l, value)
}

type ProjectList []Project

func (l ProjectList) Value() (driver.Value, error) {
	if l == nil {
		l = ProjectList{}
	}
	return jsonValue(l)
}

func (l *ProjectList) Scan(value interface{}) error {
	return jsonScan(l, value)
}

type CertificationList []Certification

func (l CertificationList) Value() (driver.Value, error) {
	if l == nil {
		l = CertificationList{}
	}
	return jsonValue(l)
}

func (l *CertificationList) Scan(value interface{}) error {
	return jsonScan(l, value)
}

type AchievementList []Achievement

func (l AchievementList) Value() (driver.Value, error) {
	if l == nil {
		l = AchievementList{}
	}
	return jsonValue(l)
}

func (l *AchievementList) Scan(value interface{}) error {
	return jsonScan(l, value)
}
