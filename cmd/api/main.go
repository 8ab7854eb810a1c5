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

	"placement-predictor/internal/config"
	"placement-predictor/internal/handlers"
	"placement-predictor/internal/repositories"
	"placement-predictor/internal/services"
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
	predRepo := repositories.NewPredictionRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	catalog := services.NewDefaultRoleCatalog()
	predictorService := services.NewPredictorService(catalog)
	guidelineService := services.NewGuidelineService(cfg.Storage.GuidelinesPath)
	extractor := services.NewPDFTextExtractor()
	log.Println("✅ Services initialized successfully")

	// The external analyzer is selected once at startup; without provider
	// configuration every analysis runs on the keyword fallback.
	var provider services.ResumeAnalyzer
	if cfg.AI.Provider == "gemini" && cfg.AI.APIKey != "" {
		provider, err = services.NewGeminiAnalyzer(cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("ℹ️  No AI provider configured, using local keyword analyzer")
	}

	analysisService := services.NewResumeAnalysisService(
		extractor,
		provider,
		services.NewKeywordAnalyzer(catalog),
	)

	mailerService := services.NewMailerService(
		cfg.Mail.Host,
		cfg.Mail.Port,
		cfg.Mail.Username,
		cfg.Mail.Password,
		cfg.Mail.Sender,
	)

	// Initialize handlers
	rolesHandler := handlers.NewRolesHandler(catalog)
	predictHandler := handlers.NewPredictHandler(predictorService, guidelineService, predRepo, catalog)
	resumeHandler := handlers.NewResumeHandler(analysisService, storageService, analysisRepo, cfg.Storage.MaxFileSize)
	guidelinesHandler := handlers.NewGuidelinesHandler(guidelineService, mailerService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Placement Predictor API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
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
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
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

	// API endpoints
	api.Get("/job-roles", rolesHandler.HandleList)
	api.Post("/predict", predictHandler.HandlePredict)
	api.Get("/predictions/:id", predictHandler.HandleGetPrediction)
	api.Get("/guidelines/:role", guidelinesHandler.HandleDownload)
	api.Post("/guidelines/email", guidelinesHandler.HandleEmail)
	api.Post("/resume/analyze", resumeHandler.HandleAnalyze)
	api.Get("/resume/analysis/:id", resumeHandler.HandleGetAnalysis)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Placement Predictor API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/job-roles",
				"POST /api/v1/predict",
				"GET /api/v1/guidelines/:role",
				"POST /api/v1/guidelines/email",
				"POST /api/v1/resume/analyze",
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
