package main

import (
	"os"

	"construct-erp/internal/cli"
	"construct-erp/internal/shared/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := cli.NewRootCommand(&cli.RootOptions{Config: cfg}).Execute(); err != nil {
		logger.Error("erpctl failed", zap.Error(err))
		os.Exit(1)
	}
}
