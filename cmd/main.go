// Package main is the entry point for the savings-service application.
//
// @title           Savings Calculator API
// @version         1.0.0
// @description     API for estimating annual savings from consolidating team tools.
//
//	The service owns the calculator view state: a headcount slider, a toggleable
//	tool catalog that never drops below three active tools, and the savings figure.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/savings-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Calculator
// @tag.description Savings estimates and the tool catalog
//
// @tag.name        Sessions
// @tag.description Calculator view sessions
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/savings-service/config"
	_ "github.com/guttosm/savings-service/docs" // swagger docs
	"github.com/guttosm/savings-service/internal/app"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithWriteTimeout(cfg.Server.RequestTimeout+5*time.Second),
		app.OnShutdown(application.Close),
	)

	if err := server.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
