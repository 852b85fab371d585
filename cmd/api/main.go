package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Jawwad-codes/BizTrackr-sub001/pkg/config"
	"github.com/Jawwad-codes/BizTrackr-sub001/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.Load()
	appLogger := logger.NewLogger()

	app, err := NewApp(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	app.SetupRoutes()

	if err := app.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
