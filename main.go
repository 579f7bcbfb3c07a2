package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gonotes/config"
	"gonotes/handler"
	"gonotes/middleware"
	"gonotes/repository"
	"gonotes/usecase"
	"gonotes/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
}

func setupRouter(client *mongo.Client, userService *usecase.UserService, notesService *usecase.NotesService) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestSizeLimiter(utils.GetEnvAsInt64("MAX_REQUEST_BODY_BYTES", 1<<20)))
	router.Use(middleware.MetricsMiddleware())

	// Rate limiting caps request volume per client address. It sits
	// outside the authorization core and is only enabled when Redis is
	// configured.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisClient, err := middleware.NewRateLimiterClient(redisURL)
		if err != nil {
			log.Fatalf("Invalid REDIS_URL: %v", err)
		}
		limit := utils.GetEnvAsInt64("RATE_LIMIT_MAX_REQUESTS", 100)
		window := utils.GetEnvAsDuration("RATE_LIMIT_WINDOW", 15*time.Minute)
		router.Use(middleware.RateLimitMiddleware(redisClient, limit, window))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		handler.HealthHandler(c, client)
	})

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/signup", func(c *gin.Context) {
				handler.RegistrationHandler(c, userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userService)
			})
		}
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/search", func(c *gin.Context) {
			handler.SearchNotesHandler(c, notesService)
		})

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.GetUserNotesHandler(c, notesService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService)
			})
			notes.GET("/:id", func(c *gin.Context) {
				handler.GetNoteHandler(c, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notesService)
			})
			notes.POST("/:id/share", func(c *gin.Context) {
				handler.ShareNoteHandler(c, notesService)
			})
		}
	}

	return router
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := config.LoadDatabaseConfig()
	client, err := dbConfig.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	if err := repository.SetupIndexes(client.Database(dbConfig.DatabaseName)); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	userRepo := repository.GetUserRepo(client)
	notesRepo := repository.GetNotesRepo(client)

	userService := &usecase.UserService{UsersRepo: userRepo}
	notesService := &usecase.NotesService{
		NotesRepo: notesRepo,
		UsersRepo: userRepo,
	}

	metricsStop := make(chan struct{})
	defer close(metricsStop)
	utils.StartSystemMetrics(utils.GetEnvAsDuration("SYSTEM_METRICS_INTERVAL", 15*time.Second), metricsStop)

	router := setupRouter(client, userService, notesService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server shutdown complete")
}
