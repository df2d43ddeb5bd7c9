package main

import (
	"log"

	"lello/internal/config"
	"lello/internal/logger"
	"lello/internal/server"

	"go.uber.org/zap"
)

// @title           Lello API
// @version         1.0
// @description     Boards, lists, cards and labels with an audit trail, owner notifications and board calendars.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	logg.Info("Configuration loaded",
		zap.Strings("sources", cfg.Sources),
		zap.String("db_driver", cfg.DBDriver),
		zap.String("log_level", cfg.LogLevel),
	)

	s, err := server.Init(cfg, logg)
	if err != nil {
		logg.Fatal("Server initialization failed", zap.Error(err))
	}

	s.Run()
}
