package config

import (
	"log"

	"go.uber.org/zap"
)

// Log is a no-op until InitLogger runs, so packages can log unconditionally.
var Log = zap.NewNop()

func InitLogger() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Log = logger
}
