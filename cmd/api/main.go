package main

import (
	"time"

	"go-schoolfee/internal/app"
	"go-schoolfee/internal/bootstrap"
	"go-schoolfee/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	cfg, err := app.LoadConfig()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	r := gin.Default()
	if err := app.BuildApp(r, cfg); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	// Cron sweeps answer only after every school is processed, hence the
	// long write timeout.
	serverCfg := bootstrap.ServerConfig{
		Port:         cfg.Port,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}
	if err := bootstrap.StartHTTPServer(r, serverCfg, bootstrap.NewStdoutAuditLogger()); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
