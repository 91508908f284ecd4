package main

import (
	"log"

	_ "mobility-service/docs"
	"mobility-service/internal/config"
	"mobility-service/internal/handlers"
	"mobility-service/internal/metrics"
	"mobility-service/internal/middleware"
	"mobility-service/internal/models"
	"mobility-service/internal/services"
	"mobility-service/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	cfg := InitConfig()
	db := ConnectDatabase(cfg)
	MigrateDatabase(db)
	minioClient := InitMinIOClient(cfg)
	otpStore := InitOTPStore(cfg)

	imageStore := storage.NewImageStore(minioClient, cfg.MinioBucket)

	employeeService := services.NewEmployeeService(db)
	projectService := services.NewProjectService(db)
	applicationService := services.NewApplicationService(db)
	cardService := services.NewCardService(db, imageStore)
	statsService := services.NewStatsService(db)
	authService := services.NewAuthService(db, otpStore, services.LogMailer{}, cfg.JWTSecret, cfg.TokenTTL, cfg.OTPTTL)

	auth := middleware.NewAuth(cfg.JWTSecret, db)
	requestMetrics := metrics.NewMetrics()

	app := fiber.New()
	app.Use(requestMetrics.Middleware())

	//Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	authHandler := handlers.NewAuthHandler(authService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	projectHandler := handlers.NewProjectHandler(projectService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	cardHandler := handlers.NewCardHandler(cardService)
	mobilityHandler := handlers.NewMobilityHandler(statsService)

	api := app.Group("/api")

	// Authentication routes
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/forgot-password", authHandler.ForgotPassword)
	api.Post("/auth/reset-password", authHandler.ResetPassword)

	// Employee routes
	api.Get("/employees/me", auth.Protected(), employeeHandler.GetProfile)
	api.Get("/employees/support", auth.Protected(), employeeHandler.ListSupportEmployees)
	api.Get("/employees/count", auth.Protected(), auth.AdminOnly(), employeeHandler.CountEmployees)
	api.Get("/employees", auth.Protected(), auth.AdminOnly(), employeeHandler.ListEmployees)
	api.Post("/employees", auth.Protected(), auth.AdminOnly(), employeeHandler.CreateEmployee)
	api.Get("/employees/:id", auth.Protected(), employeeHandler.GetEmployee)
	api.Put("/employees/:id", auth.Protected(), employeeHandler.UpdateProfile)
	api.Put("/employees/:id/professional-details", auth.Protected(), employeeHandler.UpdateProfessionalDetails)
	api.Delete("/employees/:id", auth.Protected(), auth.AdminOnly(), employeeHandler.DeleteEmployee)

	// Project routes
	api.Get("/projects", auth.Protected(), projectHandler.ListProjects)
	api.Get("/projects/:id", auth.Protected(), projectHandler.GetProject)
	api.Post("/projects", auth.Protected(), auth.AdminOnly(), projectHandler.CreateProject)
	api.Put("/projects/:id", auth.Protected(), auth.AdminOnly(), projectHandler.UpdateProject)
	api.Delete("/projects/:id", auth.Protected(), auth.AdminOnly(), projectHandler.DeleteProject)

	// Application routes; the caller-scoped paths must precede /:id
	api.Post("/applications/apply", auth.Protected(), applicationHandler.Apply)
	api.Get("/applications/my-applications", auth.Protected(), applicationHandler.ListOwn)
	api.Delete("/applications/my-applications/:id", auth.Protected(), applicationHandler.DeleteOwn)
	api.Get("/applications", auth.Protected(), auth.AdminOnly(), applicationHandler.ListApplications)
	api.Patch("/applications/approve/:id", auth.Protected(), auth.AdminOnly(), applicationHandler.Approve)
	api.Patch("/applications/reject/:id", auth.Protected(), auth.AdminOnly(), applicationHandler.Reject)
	api.Patch("/applications/drop/:id", auth.Protected(), auth.AdminOnly(), applicationHandler.Drop)
	api.Get("/applications/:id", auth.Protected(), auth.AdminOnly(), applicationHandler.GetApplication)

	// Card routes; count must precede /:id
	api.Get("/cards/count/:category", cardHandler.CountCards)
	api.Get("/cards", cardHandler.ListCards)
	api.Get("/cards/:id", cardHandler.GetCard)
	api.Post("/cards", auth.Protected(), auth.AdminOnly(), cardHandler.CreateCard)
	api.Put("/cards/:id", auth.Protected(), auth.AdminOnly(), cardHandler.UpdateCard)
	api.Delete("/cards/:id", auth.Protected(), auth.AdminOnly(), cardHandler.DeleteCard)

	// Mobility statistics routes
	api.Get("/mobility/overview", auth.Protected(), auth.AdminOnly(), mobilityHandler.Overview)
	api.Get("/mobility/application-stats", auth.Protected(), auth.AdminOnly(), mobilityHandler.ApplicationStats)
	api.Get("/mobility/datewise", auth.Protected(), auth.AdminOnly(), mobilityHandler.ApplicationsByDate)

	api.Get("/swagger/*", swagger.HandlerDefault)

	// Add Health check endpoint
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	routes := app.GetRoutes()
	log.Println("Registered routes:")
	for _, r := range routes {
		log.Printf("  %s %s\n", r.Method, r.Path)
	}

	// Start the Fiber server
	port := cfg.AppPort
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Printf("Server listening on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func MigrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(&models.Employee{}, &models.Project{}, &models.ProjectApplication{}, &models.Card{})
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
}

func InitMinIOClient(cfg *config.Config) *minio.Client {
	minioClient, err := storage.NewMinioClient(cfg)
	if err != nil {
		log.Fatalf("MinIO client initialization failed: %v", err)
	}
	return minioClient
}

func InitOTPStore(cfg *config.Config) *storage.OTPStore {
	otpStore, err := storage.NewOTPStore(cfg.RedisHost, cfg.RedisPort)
	if err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	return otpStore
}
