package main

import (
	"fmt"
	"os"

	"everbright-backend/internal/app"
	"everbright-backend/internal/config"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config load: " + err.Error())
	}

	fiberApp, err := app.CreateApp(cfg)
	if err != nil {
		panic("app create: " + err.Error())
	}

	// The template is only fatal at generation time, but a missing file is
	// almost always a packaging mistake worth flagging at startup.
	if _, err := os.Stat(cfg.TemplatePath); err != nil {
		log.Warn().Str("path", cfg.TemplatePath).Msg("Report template not found; generation will fail until it exists")
	}

	fmt.Printf("Server running at http://localhost:%s\n", cfg.Port)
	fmt.Printf("Health check: http://localhost:%s/health/json\n", cfg.Port)
	fmt.Println("---")

	if err := fiberApp.Listen(":" + cfg.Port); err != nil {
		panic(err)
	}
}
