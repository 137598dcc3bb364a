package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/soyeon-dev/sns-backend/internal/auth"
	"github.com/soyeon-dev/sns-backend/internal/handlers"
	"github.com/soyeon-dev/sns-backend/internal/middleware"
	"github.com/soyeon-dev/sns-backend/internal/models"
	"github.com/soyeon-dev/sns-backend/internal/repositories"
	"github.com/soyeon-dev/sns-backend/internal/services"
	"github.com/soyeon-dev/sns-backend/pkg/config"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	logrus.Info("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	)
	if err != nil {
		logrus.Fatalf("Failed to auto migrate models: %v", err)
	}
	logrus.Info("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize repositories and core services ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeStore := repositories.NewPostgresLikeStore(db)
	likeService := services.NewLikeService(likeStore)

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	passwords := auth.VerifierFor(cfg.PasswordScheme)

	// --- Route groups: reads are public, writes resolve an identity ---
	public := e.Group("/api")
	protected := e.Group("/api")
	protected.Use(middleware.AuthMiddleware(issuer, userRepo))

	authHandler := handlers.NewAuthHandler(userRepo, issuer, passwords)
	authHandler.RegisterAuthRoutes(public)
	logrus.Info("Auth routes configured.")

	postHandler := handlers.NewPostHandler(postRepo)
	postHandler.RegisterPostRoutes(public, protected)
	logrus.Info("Post routes configured.")

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(public, protected)
	logrus.Info("Comment routes configured.")

	likeHandler := handlers.NewLikeHandler(likeService, postRepo)
	likeHandler.RegisterLikeRoutes(protected)
	logrus.Info("Like routes configured.")

	logrus.Info("All routes configured.")
}
