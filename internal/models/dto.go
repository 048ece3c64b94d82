package models

import "time"

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	IsRecruiter bool   `json:"is_recruiter"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Base64UploadRequest struct {
	FileName    string `json:"file_name"`
	FileContent string `json:"file_content"`
}

type JobCreateRequest struct {
	Title           string        `json:"title"`
	DescriptionText string        `json:"description_text"`
	PriorityWeights *MatchWeights `json:"priority_weights,omitempty"`
}

type JobUpdateRequest struct {
	Title           *string       `json:"title,omitempty"`
	DescriptionText *string       `json:"description_text,omitempty"`
	PriorityWeights *MatchWeights `json:"priority_weights,omitempty"`
}

type ApplicationCreateRequest struct {
	JobID    uint    `json:"job_id"`
	ResumeID uint    `json:"resume_id"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
}

type StatusUpdateRequest struct {
	Status ApplicationStatus `json:"status"`
}

type ApplicationWithDetails struct {
	Application
	JobDetail    *Job    `json:"job,omitempty"`
	ResumeDetail *Resume `json:"resume,omitempty"`
}

type MatchRequest struct {
	ResumeID uint `json:"resume_id"`
	JobID    uint `json:"job_id"`
}

type MatchResponse struct {
	ResumeID     uint         `json:"resume_id"`
	JobID        uint         `json:"job_id"`
	MatchScore   float64      `json:"match_score"`
	MatchDetails MatchDetails `json:"match_details"`
	Feedback     Feedback     `json:"feedback"`
}

// QualityScore is the deterministic, model-free resume assessment.
type QualityScore struct {
	OverallScore float64         `json:"overall_score"`
	Sections     QualitySections `json:"sections"`
	Suggestions  []string        `json:"suggestions"`
}

type QualitySections struct {
	Experience float64 `json:"experience"`
	Skills     float64 `json:"skills"`
	Education  float64 `json:"education"`
}

type SkillFrequency struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MarketAnalysis struct {
	TotalJobsAnalyzed  int              `json:"total_jobs_analyzed"`
	TopRequiredSkills  []SkillFrequency `json:"top_required_skills"`
	TopPreferredSkills []SkillFrequency `json:"top_preferred_skills"`
	AnalysisDate       time.Time        `json:"analysis_date"`
}
