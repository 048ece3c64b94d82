package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"talentmatch/job-matcher/internal/models"
)

// ApplicationFilter narrows a listing; zero values mean "no filter".
type ApplicationFilter struct {
	JobID  uint
	Status models.ApplicationStatus
	Skip   int
	Limit  int
}

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id uint) (*models.Application, error)
	FindByIDWithDetails(id uint) (*models.Application, error)
	ListForRecruiter(recruiterID uint, filter ApplicationFilter) ([]models.Application, error)
	ListForSeeker(userID uint, filter ApplicationFilter) ([]models.Application, error)
	UpdateStatus(id uint, status models.ApplicationStatus) (*models.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create implements ApplicationRepository.
func (r *applicationRepository) Create(app *models.Application) error {
	if err := r.db.Create(app).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// FindByID implements ApplicationRepository.
func (r *applicationRepository) FindByID(id uint) (*models.Application, error) {
	var app models.Application
	if err := r.db.Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("application %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

// FindByIDWithDetails implements ApplicationRepository. The joined job and
// resume are needed for ownership checks on both sides.
func (r *applicationRepository) FindByIDWithDetails(id uint) (*models.Application, error) {
	var app models.Application
	err := r.db.
		Preload("Job").
		Preload("Resume").
		Where("id = ?", id).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("application %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

// ListForRecruiter implements ApplicationRepository: applications submitted
// to any job owned by the recruiter.
func (r *applicationRepository) ListForRecruiter(recruiterID uint, filter ApplicationFilter) ([]models.Application, error) {
	query := r.applyFilter(filter).
		Where("job_id IN (?)", r.db.Model(&models.Job{}).Select("id").Where("company_id = ?", recruiterID))

	var apps []models.Application
	if err := query.Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// ListForSeeker implements ApplicationRepository: applications backed by one
// of the seeker's own resumes.
func (r *applicationRepository) ListForSeeker(userID uint, filter ApplicationFilter) ([]models.Application, error) {
	query := r.applyFilter(filter).
		Where("resume_id IN (?)", r.db.Model(&models.Resume{}).Select("id").Where("user_id = ?", userID))

	var apps []models.Application
	if err := query.Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// UpdateStatus implements ApplicationRepository. The reviewed timestamp is
// set on the first transition away from New and untouched afterwards.
func (r *applicationRepository) UpdateStatus(id uint, status models.ApplicationStatus) (*models.Application, error) {
	app, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": status}
	if status != models.StatusNew && app.ReviewedAt == nil {
		now := time.Now()
		updates["reviewed_at"] = now
		app.ReviewedAt = &now
	}

	result := r.db.Model(&models.Application{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("application %d: %w", id, ErrNotFound)
	}

	app.Status = status
	return app, nil
}

func (r *applicationRepository) applyFilter(filter ApplicationFilter) *gorm.DB {
	query := r.db.Model(&models.Application{})
	if filter.JobID != 0 {
		query = query.Where("job_id = ?", filter.JobID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	return query.Offset(filter.Skip).Limit(filter.Limit)
}
