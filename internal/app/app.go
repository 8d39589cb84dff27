package app

import (
	"fmt"
	"os"

	"everbright-backend/internal/config"
	"everbright-backend/internal/health"
	"everbright-backend/internal/middleware"
	"everbright-backend/internal/render"
	"everbright-backend/internal/reports"

	"github.com/gofiber/fiber/v2"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration. Each report generation is synchronous and self-contained;
// concurrent requests are isolated by giving every upload its own file.
func CreateApp(cfg *config.Config) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
		BodyLimit:             cfg.MaxUploadMB * 1024 * 1024,
	})

	for _, dir := range []string{cfg.UploadDir, cfg.ReportsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	app.Use(middleware.CORS(cfg.FrontendURLEndsWith))
	app.Use(middleware.Tracing())

	healthService := health.NewService()
	app.Use(middleware.RouteLogger(healthService))

	healthHandlers := &health.Handlers{Service: healthService, AdminKey: cfg.HealthAdminKey}
	app.Get("/", healthHandlers.Dashboard)
	app.Get("/reset", healthHandlers.Reset)
	app.Get("/health/json", healthHandlers.JSON)

	renderer := &render.Renderer{
		TemplatePath: cfg.TemplatePath,
		LogoPath:     cfg.LogoPath,
	}
	reportService := &reports.Service{
		Renderer:   renderer,
		ReportsDir: cfg.ReportsDir,
	}
	reportHandlers := &reports.Handlers{
		Service:   reportService,
		UploadDir: cfg.UploadDir,
	}
	reportGroup := app.Group("/api/v1/reports")
	reportGroup.Post("/generate", reportHandlers.Generate)

	return app, nil
}
