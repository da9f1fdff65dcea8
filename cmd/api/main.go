package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	diffUseCase "github.com/amirhossein-jamali/timespan-processor/internal/domain/usecase/diff"

	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(parseLogLevel(cfg.Logger.Level))

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	conn, err := database.NewConnection(dbConfig, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			appLogger.Error("Failed to close database connection", map[string]any{
				"error": closeErr.Error(),
			})
		}
	}()

	// Run migrations
	if err := database.Migrate(conn.DB, appLogger); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	computationRepo := repository.NewComputationRepository(conn.DB, tp, appLogger, cfg.Database.QueryTimeout)

	// Initialize use cases
	diffService := diffUseCase.NewDiffUseCase(computationRepo, tp, appLogger, cfg.History.DefaultLimit, cfg.History.MaxLimit)

	// Initialize API handlers
	diffHandler := handler.NewDiffHandler(diffService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, diffHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if err := appLogger.Flush(); err != nil {
		log.Printf("Failed to flush logger: %v", err)
	}

	appLogger.Info("Server exited gracefully", nil)
}

// parseLogLevel maps a config level string to a core log level
func parseLogLevel(level string) coreport.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return coreport.LogLevelDebug
	case "warn":
		return coreport.LogLevelWarn
	case "error":
		return coreport.LogLevelError
	default:
		return coreport.LogLevelInfo
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("TS_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or TS_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Port == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("TS_DB_PORT") == "" {
			missingConfigs = append(missingConfigs, "database.port (or TS_DB_PORT environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.port")
		}
	}

	if cfg.Database.Username == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("TS_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or TS_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("TS_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or TS_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("TS_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or TS_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate history configuration
	if cfg.History.DefaultLimit <= 0 {
		missingConfigs = append(missingConfigs, "history.defaultLimit")
	}

	if cfg.History.MaxLimit <= 0 {
		missingConfigs = append(missingConfigs, "history.maxLimit")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		if strings.ToLower(cfg.Database.SSLMode) != "require" && strings.ToLower(cfg.Database.SSLMode) != "verify-ca" && strings.ToLower(cfg.Database.SSLMode) != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
