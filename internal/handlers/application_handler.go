package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"talentmatch/job-matcher/internal/models"
	"talentmatch/job-matcher/internal/repositories"
	"talentmatch/job-matcher/internal/services"
)

type ApplicationHandler struct {
	appRepo    repositories.ApplicationRepository
	jobRepo    repositories.JobRepository
	resumeRepo repositories.ResumeRepository
	matching   services.MatchingService
}

func NewApplicationHandler(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	resumeRepo repositories.ResumeRepository,
	matching services.MatchingService,
) *ApplicationHandler {
	return &ApplicationHandler{
		appRepo:    appRepo,
		jobRepo:    jobRepo,
		resumeRepo: resumeRepo,
		matching:   matching,
	}
}

// HandleCreate handles POST /applications. Seekers only. The match runs
// synchronously so the stored application always carries its score, details
// and feedback.
func (h *ApplicationHandler) HandleCreate(c *fiber.Ctx) error {
	user := CurrentUser(c)

	if user.IsRecruiter {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Recruiters cannot apply to jobs",
		})
	}

	var req models.ApplicationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	job, err := h.jobRepo.FindByID(req.JobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	resume, err := h.resumeRepo.FindByID(req.ResumeID)
	if err != nil || resume.UserID != user.ID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume not found or doesn't belong to you",
		})
	}

	result := h.matching.Match(c.Context(), resume.Parsed, job.MatchProfile())

	app := models.Application{
		JobID:        req.JobID,
		ResumeID:     req.ResumeID,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		MatchScore:   result.Score,
		MatchDetails: result.Details,
		Feedback:     result.Feedback,
		Status:       models.StatusNew,
	}

	if err := h.appRepo.Create(&app); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create application",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

// HandleList handles GET /applications. Recruiters see applications to their
// own jobs, seekers the applications made with their own resumes.
func (h *ApplicationHandler) HandleList(c *fiber.Ctx) error {
	user := CurrentUser(c)

	status := models.ApplicationStatus(c.Query("status"))
	if status != "" && !models.IsValidStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status filter",
		})
	}

	filter := repositories.ApplicationFilter{
		JobID:  uint(c.QueryInt("job_id", 0)),
		Status: status,
		Skip:   c.QueryInt("skip", 0),
		Limit:  c.QueryInt("limit", 100),
	}

	var apps []models.Application
	var err error
	if user.IsRecruiter {
		apps, err = h.appRepo.ListForRecruiter(user.ID, filter)
	} else {
		apps, err = h.appRepo.ListForSeeker(user.ID, filter)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list applications",
		})
	}

	return c.JSON(apps)
}

// HandleGet handles GET /applications/:id. The recruiter must own the job
// and the seeker must own the resume.
func (h *ApplicationHandler) HandleGet(c *fiber.Ctx) error {
	user := CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application id",
		})
	}

	app, err := h.appRepo.FindByIDWithDetails(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load application",
		})
	}

	if (user.IsRecruiter && app.Job.CompanyID != user.ID) ||
		(!user.IsRecruiter && app.Resume.UserID != user.ID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not enough permissions",
		})
	}

	return c.JSON(models.ApplicationWithDetails{
		Application:  *app,
		JobDetail:    &app.Job,
		ResumeDetail: &app.Resume,
	})
}

// HandleUpdateStatus handles PATCH /applications/:id/status. Only the
// recruiter owning the job may move an application through the pipeline.
func (h *ApplicationHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	user := CurrentUser(c)

	if !user.IsRecruiter {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not enough permissions",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application id",
		})
	}

	var req models.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if !models.IsValidStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid status. Must be one of: %v", models.ValidStatuses),
		})
	}

	app, err := h.appRepo.FindByIDWithDetails(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load application",
		})
	}

	if app.Job.CompanyID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not enough permissions",
		})
	}

	updated, err := h.appRepo.UpdateStatus(app.ID, req.Status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update status",
		})
	}

	return c.JSON(updated)
}
