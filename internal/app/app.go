package app

import (
	"errors"
	"fmt"

	"namedesk_backend/internal/auth"
	"namedesk_backend/internal/config"
	"namedesk_backend/internal/email"
	"namedesk_backend/internal/handlers"
	"namedesk_backend/internal/logger"
	"namedesk_backend/internal/middleware"
	"namedesk_backend/internal/models"
	"namedesk_backend/internal/repositories"
	"namedesk_backend/internal/routes"
	"namedesk_backend/internal/services"
	"namedesk_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := SeedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Notification{},
		&models.NotificationRecipient{},
		&models.Customer{},
		&models.Task{},
		&models.LeaveRequest{},
		&models.BabyName{},
		&models.PDFRecord{},
	)
}

// SetupRouter builds the fully wired gin engine. Tests call this directly
// against their own database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	emailProvider, err := email.NewSMTPProvider(email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("Email provider misconfigured, outbound mail disabled", "error", err)
		emailProvider = email.NewMockProvider()
	}

	repos := repositories.NewRepositoryContainer(gormDB)
	return services.NewServiceContainer(repos, emailProvider)
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, services.UserService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
		CustomerHandler:     handlers.NewCustomerHandler(baseHandler, services.CustomerService, services.PDFService),
		TaskHandler:         handlers.NewTaskHandler(baseHandler, services.TaskService),
		LeaveHandler:        handlers.NewLeaveHandler(baseHandler, services.LeaveService),
		BabyNameHandler:     handlers.NewBabyNameHandler(baseHandler, services.BabyNameService),
		PDFHandler:          handlers.NewPDFHandler(baseHandler, services.PDFService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// SeedFirstAdmin creates the initial admin account when none exists.
// Credentials come from configuration; the password is stored hashed like
// every other account.
func SeedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	username := cfg.FirstAdminUsername
	password := cfg.FirstAdminPassword
	adminEmail := cfg.FirstAdminEmail

	if username == "" || password == "" {
		logger.Warn("FIRST_ADMIN_USERNAME or FIRST_ADMIN_PASSWORD not set. Skipping admin seeding.")
		return nil
	}

	var admin models.User
	result := db.Where("username = ?", username).First(&admin)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "username", username)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "username", username)

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Username:     username,
		PasswordHash: hash,
		Email:        adminEmail,
		Name:         "Administrator",
		Role:         models.UserRoleAdmin,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "username", username)
	return nil
}
