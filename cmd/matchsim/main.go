package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/jimmy058910/replitballgame-sub010/internal/api"
	"github.com/jimmy058910/replitballgame-sub010/internal/commentary"
	"github.com/jimmy058910/replitballgame-sub010/internal/config"
	"github.com/jimmy058910/replitballgame-sub010/internal/constants"
	"github.com/jimmy058910/replitballgame-sub010/internal/logging"
	"github.com/jimmy058910/replitballgame-sub010/internal/storage"
)

func main() {
	// Configuration file path may be provided via MATCHSIM_CONFIG or
	// defaults to ./matchsim_config.json. A missing file falls back to
	// the built-in defaults; an invalid file is fatal.
	cfg := config.Defaults()
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./matchsim_config.json"
	}
	if _, err := os.Stat(configPath); err == nil {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			logging.Fatal("Invalid matchsim configuration", err, logging.Fields{"config_path": configPath})
		}
		cfg = loaded
	}

	// Allow the DB path to be overridden via MATCHSIM_DB.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	commentator := commentary.NewGenerator(cfg.Bank)
	handler := api.NewMatchHandler(repo, cfg.Tuning, commentator, cfg.MatchDuration)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.GetVersion)
		apiRoutes.GET(constants.RouteMatches, handler.ListMatches)
		apiRoutes.POST(constants.RouteMatches, handler.SimulateMatch)
		apiRoutes.GET(constants.RouteMatchByID, handler.GetMatch)
		apiRoutes.GET(constants.RouteMatchEvents, handler.GetMatchEvents)
		apiRoutes.GET(constants.RouteMatchStats, handler.GetMatchStats)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
