package main

import (
	"io"
	"os"
	"strings"

	"github.com/dojo-ledger/backend/internal/config"
	v1 "github.com/dojo-ledger/backend/internal/controllers/v1"
	"github.com/dojo-ledger/backend/internal/models"
	"github.com/dojo-ledger/backend/internal/recurring"
	"github.com/dojo-ledger/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title						Dojo Ledger
// @description				The backend for Dojo Ledger. Schedules recurring income and expenses and records them in the ledger when they are due.
// @BasePath					/api
func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create data directory
	err = os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database
	err = models.Connect(cfg.DSN())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	co, err := v1.New(models.DB, cfg, recurring.SystemClock{})
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The API is served below the path of API_URL
	path := strings.TrimSuffix(cfg.APIURL.Path, "/")
	if path == "" {
		path = "/"
	}
	router.AttachRoutes(r.Group(path), co, cfg)

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
