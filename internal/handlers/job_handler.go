package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentmatch/job-matcher/internal/models"
	"talentmatch/job-matcher/internal/repositories"
	"talentmatch/job-matcher/internal/services"
)

type JobHandler struct {
	jobRepo  repositories.JobRepository
	analyzer services.JobAnalyzer
}

func NewJobHandler(jobRepo repositories.JobRepository, analyzer services.JobAnalyzer) *JobHandler {
	return &JobHandler{
		jobRepo:  jobRepo,
		analyzer: analyzer,
	}
}

// HandleCreate handles POST /jobs. Recruiters only. The description is parsed
// into structured requirements; an explicit title in the request wins over
// the parsed one.
func (h *JobHandler) HandleCreate(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var req models.JobCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.DescriptionText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "description_text is required",
		})
	}

	analysis, err := h.analyzer.Analyze(c.Context(), req.DescriptionText)
	if err != nil {
		log.Printf("⚠️  Job stored with default analysis: %v\n", err)
	}

	title := analysis.Title
	if strings.TrimSpace(req.Title) != "" {
		title = req.Title
	}

	weights := models.DefaultMatchWeights()
	if req.PriorityWeights != nil {
		weights = *req.PriorityWeights
	}

	job := models.Job{
		CompanyID:        user.ID,
		Title:            title,
		DescriptionText:  req.DescriptionText,
		RequiredSkills:   analysis.RequiredSkills,
		PreferredSkills:  analysis.PreferredSkills,
		Responsibilities: analysis.Responsibilities,
		Qualifications:   analysis.Qualifications,
		PriorityWeights:  weights,
	}

	if err := h.jobRepo.Create(&job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create job",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

// HandleList handles GET /jobs. Recruiters see their own postings, seekers
// browse all of them.
func (h *JobHandler) HandleList(c *fiber.Ctx) error {
	user := CurrentUser(c)
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	var jobs []models.Job
	var err error
	if user.IsRecruiter {
		jobs, err = h.jobRepo.FindByCompany(user.ID, skip, limit)
	} else {
		jobs, err = h.jobRepo.FindAll(skip, limit)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list jobs",
		})
	}

	return c.JSON(jobs)
}

// HandleGet handles GET /jobs/:id
func (h *JobHandler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job id",
		})
	}

	job, err := h.jobRepo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Job not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load job",
		})
	}

	return c.JSON(job)
}

// HandleUpdate handles PUT /jobs/:id. Only the owning recruiter may update.
// The description is re-parsed only when it actually changed.
func (h *JobHandler) HandleUpdate(c *fiber.Ctx) error {
	user := CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job id",
		})
	}

	var req models.JobUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	job, err := h.jobRepo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Job not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load job",
		})
	}

	if job.CompanyID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not enough permissions",
		})
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.PriorityWeights != nil {
		job.PriorityWeights = *req.PriorityWeights
	}

	if req.DescriptionText != nil && *req.DescriptionText != job.DescriptionText {
		analysis, err := h.analyzer.Analyze(c.Context(), *req.DescriptionText)
		if err != nil {
			log.Printf("⚠️  Job updated with default analysis: %v\n", err)
		}

		job.DescriptionText = *req.DescriptionText
		job.RequiredSkills = analysis.RequiredSkills
		job.PreferredSkills = analysis.PreferredSkills
		job.Responsibilities = analysis.Responsibilities
		job.Qualifications = analysis.Qualifications
	}

	if err := h.jobRepo.Update(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update job",
		})
	}

	return c.JSON(job)
}

// HandleDelete handles DELETE /jobs/:id. Only the owning recruiter may delete.
func (h *JobHandler) HandleDelete(c *fiber.Ctx) error {
	user := CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job id",
		})
	}

	job, err := h.jobRepo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Job not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load job",
		})
	}

	if job.CompanyID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not enough permissions",
		})
	}

	if err := h.jobRepo.Delete(job.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete job",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
