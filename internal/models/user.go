package models

import "time"

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"type:text;not null" json:"-"`
	FullName       string    `gorm:"type:text" json:"full_name"`
	IsRecruiter    bool      `gorm:"default:false" json:"is_recruiter"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
