package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"talentmatch/job-matcher/internal/models"
)

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByID(id uint) (*models.Resume, error)
	FindAll(skip, limit int) ([]models.Resume, error)
	FindByUser(userID uint, skip, limit int) ([]models.Resume, error)
	Delete(id uint) error
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(resume *models.Resume) error {
	if err := r.db.Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}
	return nil
}

// FindByID implements ResumeRepository.
func (r *resumeRepository) FindByID(id uint) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.Where("id = ?", id).First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resume %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find resume: %w", err)
	}
	return &resume, nil
}

// FindAll implements ResumeRepository.
func (r *resumeRepository) FindAll(skip, limit int) ([]models.Resume, error) {
	var resumes []models.Resume
	if err := r.db.Offset(skip).Limit(limit).Find(&resumes).Error; err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return resumes, nil
}

// FindByUser implements ResumeRepository.
func (r *resumeRepository) FindByUser(userID uint, skip, limit int) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.
		Where("user_id = ?", userID).
		Offset(skip).
		Limit(limit).
		Find(&resumes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return resumes, nil
}

// Delete implements ResumeRepository.
func (r *resumeRepository) Delete(id uint) error {
	result := r.db.Where("id = ?", id).Delete(&models.Resume{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete resume: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("resume %d: %w", id, ErrNotFound)
	}
	return nil
}
