package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/kchelvan55/customer-admin-app-sub000/cmd"
	"github.com/kchelvan55/customer-admin-app-sub000/pkg/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Parse()

	// A missing .env file is fine; config falls back to defaults.
	_ = godotenv.Load()

	app, err := cmd.NewApp(configPath)
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
	defer logger.Sync()

	if err := app.Run(); err != nil {
		log.Fatalf("Application exited with error: %v", err)
	}
}
