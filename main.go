package main

import (
	"log"

	"github.com/joho/godotenv"

	"strandkin/internal/config"
	"strandkin/internal/container"
	"strandkin/internal/logging"
	"strandkin/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logging.Init(logging.ParseLevel(appConfig.Logging.Level), appConfig.Logging.Format)

	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}

	app, err := ui.NewApp(ui.Config{
		Port:     appConfig.Server.Port,
		Params:   appContainer.Energy,
		Profiler: appContainer.RateProfiler,
		Workers:  appConfig.Tally.Workers,
	})
	if err != nil {
		log.Fatalf("Failed to create diagnostics server: %v", err)
	}

	if err := app.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
