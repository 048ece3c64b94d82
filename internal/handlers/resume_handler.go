package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentmatch/job-matcher/internal/models"
	"talentmatch/job-matcher/internal/repositories"
	"talentmatch/job-matcher/internal/services"
)

type ResumeHandler struct {
	resumeRepo     repositories.ResumeRepository
	storageService services.StorageService
	ingester       services.DocumentIngester
	analyzer       services.ResumeAnalyzer
	qualityScorer  *services.QualityScorer
	insights       services.InsightsService
	maxFileSize    int64
}

func NewResumeHandler(
	resumeRepo repositories.ResumeRepository,
	storageService services.StorageService,
	ingester services.DocumentIngester,
	analyzer services.ResumeAnalyzer,
	qualityScorer *services.QualityScorer,
	insights services.InsightsService,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		resumeRepo:     resumeRepo,
		storageService: storageService,
		ingester:       ingester,
		analyzer:       analyzer,
		qualityScorer:  qualityScorer,
		insights:       insights,
		maxFileSize:    maxFileSize,
	}
}

// HandleCreate handles POST /resumes. The caller sends either a multipart
// "file" or a "resume_text" form field.
func (h *ResumeHandler) HandleCreate(c *fiber.Ctx) error {
	user := CurrentUser(c)

	file, fileErr := c.FormFile("file")
	resumeText := strings.TrimSpace(c.FormValue("resume_text"))

	if fileErr != nil && resumeText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Either file or resume_text must be provided",
		})
	}

	var resume models.Resume

	if fileErr == nil {
		if file.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
			})
		}

		filename, filePath, err := h.storageService.SaveUpload(file)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to save file: %v", err),
			})
		}

		doc, err := h.ingester.Ingest(c.Context(), filePath)
		if err != nil {
			h.storageService.DeleteFile(filename)
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to extract text: %v", err),
			})
		}

		resume = h.buildResume(c, user.ID, doc.FullText)
		resume.FilePath = &doc.FilePath
		resume.FileType = doc.FileType
	} else {
		resume = h.buildResume(c, user.ID, resumeText)
		resume.FileType = "text"
	}

	if err := h.resumeRepo.Create(&resume); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create resume",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resume)
}

// HandleUploadBase64 handles POST /resumes/upload-base64
func (h *ResumeHandler) HandleUploadBase64(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var req models.Base64UploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.FileContent == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File content must be provided",
		})
	}

	content, err := base64.StdEncoding.DecodeString(req.FileContent)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid base64 encoding",
		})
	}

	if int64(len(content)) > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveBytes(req.FileName, content)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save file: %v", err),
		})
	}

	doc, err := h.ingester.Ingest(c.Context(), filePath)
	if err != nil {
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract text: %v", err),
		})
	}

	resume := h.buildResume(c, user.ID, doc.FullText)
	resume.FilePath = &doc.FilePath
	resume.FileType = doc.FileType

	if err := h.resumeRepo.Create(&resume); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create resume",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resume)
}

// buildResume analyzes the text and assembles the record. A failed analysis
// still produces a stored resume with the default record.
func (h *ResumeHandler) buildResume(c *fiber.Ctx, userID uint, fullText string) models.Resume {
	analysis, err := h.analyzer.Analyze(c.Context(), fullText)
	if err != nil {
		log.Printf("⚠️  Resume stored with default analysis: %v\n", err)
	}

	return models.Resume{
		UserID:         userID,
		FullText:       fullText,
		Parsed:         analysis,
		Skills:         analysis.Skills,
		Experience:     analysis.Experience,
		Education:      analysis.Education,
		Projects:       analysis.Projects,
		Certifications: analysis.Certifications,
		Achievements:   analysis.Achievements,
	}
}

// HandleList handles GET /resumes. Recruiters see every resume, seekers only
// their own.
func (h *ResumeHandler) HandleList(c *fiber.Ctx) error {
	user := CurrentUser(c)
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	var resumes []models.Resume
	var err error
	if user.IsRecruiter {
		resumes, err = h.resumeRepo.FindAll(skip, limit)
	} else {
		resumes, err = h.resumeRepo.FindByUser(user.ID, skip, limit)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list resumes",
		})
	}

	return c.JSON(resumes)
}

// HandleGet handles GET /resumes/:id
func (h *ResumeHandler) HandleGet(c *fiber.Ctx) error {
	resume, err := h.loadAuthorized(c)
	if resume == nil {
		return err
	}
	return c.JSON(resume)
}

// HandleDelete handles DELETE /resumes/:id
func (h *ResumeHandler) HandleDelete(c *fiber.Ctx) error {
	resume, err := h.loadAuthorized(c)
	if resume == nil {
		return err
	}

	if err := h.resumeRepo.Delete(resume.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete resume",
		})
	}

	if resume.FilePath != nil {
		if err := h.storageService.DeleteFile(filenameOf(*resume.FilePath)); err != nil {
			log.Printf("⚠️  Failed to remove stored file for resume %d: %v\n", resume.ID, err)
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleQualityScore handles GET /resumes/:id/quality-score
func (h *ResumeHandler) HandleQualityScore(c *fiber.Ctx) error {
	resume, err := h.loadAuthorized(c)
	if resume == nil {
		return err
	}

	return c.JSON(h.qualityScorer.Score(resume.Parsed))
}

// HandleImprove handles GET /resumes/:id/improve
func (h *ResumeHandler) HandleImprove(c *fiber.Ctx) error {
	resume, err := h.loadAuthorized(c)
	if resume == nil {
		return err
	}

	suggestions, err := h.insights.ImproveResume(c.Context(), resume.FullText)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to generate improvement suggestions",
		})
	}

	return c.JSON(suggestions)
}

// loadAuthorized fetches the path resume and enforces the owner-or-recruiter
// rule. On failure the response is already written and the resume is nil.
func (h *ResumeHandler) loadAuthorized(c *fiber.Ctx) (*models.Resume, error) {
	user := CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume id",
		})
	}

	resume, err := h.resumeRepo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume not found",
			})
		}
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load resume",
		})
	}

	if !user.IsRecruiter && resume.UserID != user.ID {
		return nil, c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not enough permissions",
		})
	}

	return resume, nil
}

// filenameOf extracts the stored filename from a full path.
func filenameOf(filePath string) string {
	if idx := strings.LastIndexByte(filePath, '/'); idx >= 0 {
		return filePath[idx+1:]
	}
	return filePath
}
