package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/auth"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/database"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/handlers"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/listing"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/pipeline"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/services"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/store"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	// 2. Database Connection
	db := database.Connect()
	st := store.NewGorm(db)

	// 3. Initialize Core Components
	engine := pipeline.NewEngine(st)
	gateway := listing.NewGateway(st)
	jobService := services.NewJobService(st)
	candidateService := services.NewCandidateService(st)
	parserService := services.NewParserService()

	// 4. Initialize Gmail Integration (optional; nil client disables email)
	log.Println("Initializing Gmail Client...")
	var gmailService *gmail.Service
	if httpClient := auth.GetGmailClient(); httpClient != nil {
		svc, err := gmail.NewService(context.Background(), option.WithHTTPClient(httpClient))
		if err != nil {
			log.Printf("⚠️  Failed to create Gmail Service: %v", err)
		} else {
			log.Println("✅ Gmail Service connected successfully.")
			gmailService = svc
		}
	}

	// 5. Stage-change notifications feed off the pipeline engine's events
	notifyService := services.NewNotifyService(st, gmailService)
	notifyService.StartListener(engine.Events())

	// 6. Initialize Handlers
	jobHandler := handlers.NewJobHandler(jobService, engine, gateway)
	appHandler := handlers.NewApplicationHandler(engine)
	candidateHandler := handlers.NewCandidateHandler(parserService, candidateService)
	publicHandler := handlers.NewPublicHandler(gateway)

	// 7. Setup Router & CORS
	r := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // For development only
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// 8. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		// Job Routes
		api.POST("/jobs", jobHandler.CreateJob)
		api.GET("/jobs", jobHandler.ListJobs)
		api.GET("/jobs/:id", jobHandler.GetJob)
		api.PATCH("/jobs/:id/status", jobHandler.UpdateJobStatus)
		api.GET("/jobs/:id/stages", jobHandler.ListStages)
		api.GET("/jobs/:id/board", jobHandler.Board)
		api.POST("/jobs/:id/applications", jobHandler.CreateApplication)
		api.POST("/jobs/:id/publish", jobHandler.Publish)
		api.POST("/jobs/:id/unpublish", jobHandler.Unpublish)

		// Pipeline Routes
		api.PATCH("/applications/:id/stage", appHandler.MoveStage)

		// Candidate Routes (browser extension ingest)
		api.POST("/candidates/extract", candidateHandler.ExtractProfile)
		api.POST("/candidates", candidateHandler.CreateCandidate)
	}

	// Unauthenticated public job page
	public := r.Group("/public")
	{
		public.GET("/jobs/:slug", publicHandler.ResolveJob)
		public.POST("/jobs/:slug/view", publicHandler.RecordView)
		public.POST("/jobs/:slug/share", publicHandler.RecordShare)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server starting on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
