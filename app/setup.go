package app

import (
	"fmt"
	"time"

	"github.com/gecampus/apply-api/api"
	"github.com/gecampus/apply-api/config"
	"github.com/gecampus/apply-api/database"
	"github.com/gecampus/apply-api/router"
	"github.com/gecampus/apply-api/services"
	"github.com/gecampus/apply-api/services/cron"
	"github.com/gecampus/apply-api/utils/middleware"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Provision the database itself before GORM connects to it
	if err := database.EnsureDatabase(); err != nil {
		print("Check whether Postgres is running and reachable\n")
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		print("Check whether Postgres is running and reachable\n")
		return err
	}

	// Schema must be in place before any request is served
	if err := store.Init(); err != nil {
		print("Failed to run schema migrations\n")
		return err
	}

	// Upload directory for resumes, created once at startup
	uploadService, err := services.NewUploadService(getEnv.UPLOAD_DIR)
	if err != nil {
		return err
	}

	// Orphaned upload sweeper (enabled unless CRON_ENABLED=false)
	var cronManager *cron.CronManager
	if getEnv.CRON_ENABLED != "false" {
		cronManager = cron.NewCronManager(store, uploadService.Dir())
		if err := cronManager.Start(); err != nil {
			print("Warning: Failed to start cron jobs\n")
			print("Error: ", err.Error(), "\n")
			// Don't fail the app, just log the warning
		}
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Attach Middleware
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    middleware.MergeAllowedOrigins(getEnv.ALLOWED_ORIGINS),
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	})

	// Stored resumes are public, read-only
	app.Static("/uploads", uploadService.Dir())

	// Setup Routes
	router.SetupRoutes(app, store, uploadService)

	// Get the PORT & Start the Server
	return server.Run()

}
