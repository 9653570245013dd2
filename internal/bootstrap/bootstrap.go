// Package bootstrap assembles the application from its parts.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/appderecho/backend/internal/app/controllers"
	"github.com/appderecho/backend/internal/app/migrations"
	"github.com/appderecho/backend/internal/app/repositories"
	"github.com/appderecho/backend/internal/app/routes"
	"github.com/appderecho/backend/internal/app/services"
	"github.com/appderecho/backend/internal/config"
	"github.com/appderecho/backend/internal/db"
	"github.com/appderecho/backend/internal/middleware"
	"github.com/appderecho/backend/internal/pkg/auth"
	"github.com/appderecho/backend/internal/pkg/email"
	"github.com/appderecho/backend/internal/pkg/logger"
	"github.com/appderecho/backend/internal/pkg/pdf"
	"github.com/appderecho/backend/internal/seed"
)

// App holds the assembled application.
type App struct {
	Config *config.Config
	DB     *db.PostgresDB
	Engine *gin.Engine
}

// New builds the application: database, migrations, seed, services and
// routes.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
	})

	database, err := db.NewPostgresDB(ctx, db.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
		MaxConns: cfg.Database.MaxConns,
	})
	if err != nil {
		return nil, err
	}

	migrator := migrations.NewMigrator(database, cfg.App.MigrationsDir)
	if err := migrator.Run(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	repos := repositories.NewRepositories(database)

	if cfg.App.SeedAdmin {
		if err := seed.EnsureCoordinator(ctx, repos.Users); err != nil {
			database.Close()
			return nil, fmt.Errorf("seeding coordinator: %w", err)
		}
	}

	jwtService := auth.NewJWTService(auth.Config{
		Secret:          cfg.JWT.Secret,
		Issuer:          cfg.JWT.Issuer,
		AccessTokenTTL:  time.Duration(cfg.JWT.AccessTokenHours) * time.Hour,
		RefreshTokenTTL: time.Duration(cfg.JWT.RefreshTokenHours) * time.Hour,
	})
	mailer := email.NewService(email.Config{
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
		From:     cfg.Email.From,
		Enabled:  cfg.Email.Enabled,
	})
	pdfGenerator := pdf.NewGenerator("assets/escudo.png")

	authService := services.NewAuthService(repos.Users, repos.PasswordReset, jwtService, mailer, cfg.App.Debug)
	registrationService := services.NewRegistrationService(repos.Roster, repos.Users, jwtService, mailer)
	rosterService := services.NewRosterService(repos.Roster)
	intakeService := services.NewIntakeService(repos.Intake, repos.Users, pdfGenerator)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authMW := middleware.NewAuthMiddleware(jwtService)
	routes.Register(engine, routes.Controllers{
		Auth:         controllers.NewAuthController(authService),
		Registration: controllers.NewRegistrationController(registrationService),
		Roster:       controllers.NewRosterController(rosterService),
		Intake:       controllers.NewIntakeController(intakeService),
	}, authMW)

	return &App{Config: cfg, DB: database, Engine: engine}, nil
}

// Close releases the application resources
func (a *App) Close() {
	a.DB.Close()
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("Request handled")
	}
}
