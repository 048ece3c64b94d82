package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"talentmatch/job-matcher/internal/models"
	"talentmatch/job-matcher/internal/repositories"
	"talentmatch/job-matcher/internal/services"
)

type MatchHandler struct {
	jobRepo    repositories.JobRepository
	resumeRepo repositories.ResumeRepository
	matching   services.MatchingService
	insights   services.InsightsService
}

func NewMatchHandler(
	jobRepo repositories.JobRepository,
	resumeRepo repositories.ResumeRepository,
	matching services.MatchingService,
	insights services.InsightsService,
) *MatchHandler {
	return &MatchHandler{
		jobRepo:    jobRepo,
		resumeRepo: resumeRepo,
		matching:   matching,
		insights:   insights,
	}
}

// HandleMatch handles POST /match: an ad-hoc scoring run that stores nothing.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var req models.MatchRequest
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
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume not found",
		})
	}

	if !user.IsRecruiter && resume.UserID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not enough permissions to access this resume",
		})
	}

	result := h.matching.Match(c.Context(), resume.Parsed, job.MatchProfile())

	return c.JSON(models.MatchResponse{
		ResumeID:     req.ResumeID,
		JobID:        req.JobID,
		MatchScore:   result.Score,
		MatchDetails: result.Details,
		Feedback:     result.Feedback,
	})
}

// HandleRecommendations handles GET /recommendations/:resume_id
func (h *MatchHandler) HandleRecommendations(c *fiber.Ctx) error {
	user := CurrentUser(c)

	resumeID, err := c.ParamsInt("resume_id")
	if err != nil || resumeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume id",
		})
	}

	resume, err := h.resumeRepo.FindByID(uint(resumeID))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load resume",
		})
	}

	if !user.IsRecruiter && resume.UserID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not enough permissions",
		})
	}

	jobs, err := h.listJobsFor(user, 100)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list jobs",
		})
	}

	limit := c.QueryInt("limit", 5)
	top := h.insights.RecommendJobs(c.Context(), resume.Parsed, jobs, limit)
	return c.JSON(top)
}

// HandleMarketAnalysis handles GET /market-analysis. Recruiters only; the
// aggregation runs over the recruiter's own postings.
func (h *MatchHandler) HandleMarketAnalysis(c *fiber.Ctx) error {
	user := CurrentUser(c)

	jobs, err := h.listJobsFor(user, 1000)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list jobs",
		})
	}

	return c.JSON(h.insights.MarketAnalysis(jobs))
}

// listJobsFor applies the role-based job visibility rule.
func (h *MatchHandler) listJobsFor(user *models.User, limit int) ([]models.Job, error) {
	if user.IsRecruiter {
		return h.jobRepo.FindByCompany(user.ID, 0, limit)
	}
	return h.jobRepo.FindAll(0, limit)
}
