package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/flizwph/clothing-brand-sub001/internal/app"
	"github.com/flizwph/clothing-brand-sub001/internal/config"
)

func main() {
	// Local development convenience; deployed environments set real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
