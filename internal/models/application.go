package models

import "time"

type ApplicationStatus string

const (
	StatusNew         ApplicationStatus = "New"
	StatusReviewed    ApplicationStatus = "Reviewed"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusRejected    ApplicationStatus = "Rejected"
)

// ValidStatuses lists the accepted application states in display order.
var ValidStatuses = []ApplicationStatus{StatusNew, StatusReviewed, StatusShortlisted, StatusRejected}

func IsValidStatus(s ApplicationStatus) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Application struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	JobID        uint              `gorm:"not null;index" json:"job_id"`
	ResumeID     uint              `gorm:"not null;index" json:"resume_id"`
	FullName     string            `gorm:"type:text" json:"full_name"`
	Email        string            `gorm:"type:text" json:"email"`
	Phone        *string           `gorm:"type:text" json:"phone,omitempty"`
	MatchScore   float64           `json:"match_score"`
	MatchDetails MatchDetails      `gorm:"type:jsonb" json:"match_details"`
	Feedback     Feedback          `gorm:"type:jsonb" json:"feedback"`
	Status       ApplicationStatus `gorm:"type:text;default:'New'" json:"status"`
	CreatedAt    time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	ReviewedAt   *time.Time        `json:"reviewed_at,omitempty"`

	// Relations
	Job    Job    `gorm:"foreignKey:JobID" json:"-"`
	Resume Resume `gorm:"foreignKey:ResumeID" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}
