package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"talentmatch/job-matcher/internal/config"
	"talentmatch/job-matcher/internal/handlers"
	"talentmatch/job-matcher/internal/repositories"
	"talentmatch/job-matcher/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize storage
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	// Initialize Gemini AI
	gateway, err := services.NewGeminiGateway(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize services
	authService := services.NewAuthService(cfg.Auth.SecretKey, cfg.Auth.TokenTTL)
	pdfParser := services.NewPDFParserService()
	docxParser := services.NewDocxParserService()
	ingester := services.NewDocumentIngester(gateway, pdfParser, docxParser)
	resumeAnalyzer := services.NewResumeAnalyzer(gateway)
	jobAnalyzer := services.NewJobAnalyzer(gateway)
	matchScorer := services.NewMatchScorer(gateway)
	feedbackGenerator := services.NewFeedbackGenerator(gateway)
	matchingService := services.NewMatchingService(matchScorer, feedbackGenerator)
	qualityScorer := services.NewQualityScorer()
	insightsService := services.NewInsightsService(matchScorer, gateway)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, authService)
	resumeHandler := handlers.NewResumeHandler(
		resumeRepo,
		storageService,
		ingester,
		resumeAnalyzer,
		qualityScorer,
		insightsService,
		cfg.Storage.MaxFileSize,
	)
	jobHandler := handlers.NewJobHandler(jobRepo, jobAnalyzer)
	appHandler := handlers.NewApplicationHandler(appRepo, jobRepo, resumeRepo, matchingService)
	matchHandler := handlers.NewMatchHandler(jobRepo, resumeRepo, matchingService, insightsService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "TalentMatch API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    int(cfg.Storage.MaxFileSize) * 2,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth
	api.Post("/auth/register", authHandler.HandleRegister)
	api.Post("/auth/login", authHandler.HandleLogin)

	// Everything below requires a valid token
	authed := api.Group("", handlers.RequireAuth(authService, userRepo))

	// Resumes
	authed.Post("/resumes", resumeHandler.HandleCreate)
	authed.Post("/resumes/upload-base64", resumeHandler.HandleUploadBase64)
	authed.Get("/resumes", resumeHandler.HandleList)
	authed.Get("/resumes/:id", resumeHandler.HandleGet)
	authed.Delete("/resumes/:id", resumeHandler.HandleDelete)
	authed.Get("/resumes/:id/quality-score", resumeHandler.HandleQualityScore)
	authed.Get("/resumes/:id/improve", resumeHandler.HandleImprove)

	// Jobs
	authed.Post("/jobs", handlers.RequireRecruiter(), jobHandler.HandleCreate)
	authed.Get("/jobs", jobHandler.HandleList)
	authed.Get("/jobs/:id", jobHandler.HandleGet)
	authed.Put("/jobs/:id", handlers.RequireRecruiter(), jobHandler.HandleUpdate)
	authed.Delete("/jobs/:id", handlers.RequireRecruiter(), jobHandler.HandleDelete)

	// Applications
	authed.Post("/applications", appHandler.HandleCreate)
	authed.Get("/applications", appHandler.HandleList)
	authed.Get("/applications/:id", appHandler.HandleGet)
	authed.Patch("/applications/:id/status", appHandler.HandleUpdateStatus)

	// Matching and insights
	authed.Post("/match", matchHandler.HandleMatch)
	authed.Get("/recommendations/:resume_id", matchHandler.HandleRecommendations)
	authed.Get("/market-analysis", handlers.RequireRecruiter(), matchHandler.HandleMarketAnalysis)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "TalentMatch API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/auth/register",
				"POST /api/v1/auth/login",
				"POST /api/v1/resumes",
				"POST /api/v1/resumes/upload-base64",
				"GET /api/v1/resumes",
				"GET /api/v1/resumes/:id",
				"POST /api/v1/jobs",
				"GET /api/v1/jobs",
				"POST /api/v1/applications",
				"POST /api/v1/match",
				"GET /api/v1/recommendations/:resume_id",
				"GET /api/v1/market-analysis",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
