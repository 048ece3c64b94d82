package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"talentmatch/job-matcher/internal/models"
)

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id uint) (*models.Job, error)
	FindAll(skip, limit int) ([]models.Job, error)
	FindByCompany(companyID uint, skip, limit int) ([]models.Job, error)
	Update(job *models.Job) error
	Delete(id uint) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create implements JobRepository.
func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// FindByID implements JobRepository.
func (r *jobRepository) FindByID(id uint) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

// FindAll implements JobRepository.
func (r *jobRepository) FindAll(skip, limit int) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Offset(skip).Limit(limit).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// FindByCompany implements JobRepository.
func (r *jobRepository) FindByCompany(companyID uint, skip, limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("company_id = ?", companyID).
		Offset(skip).
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// Update implements JobRepository.
func (r *jobRepository) Update(job *models.Job) error {
	job.UpdatedAt = time.Now()
	if err := r.db.Save(job).Error; err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}

// Delete implements JobRepository.
func (r *jobRepository) Delete(id uint) error {
	result := r.db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job %d: %w", id, ErrNotFound)
	}
	return nil
}
