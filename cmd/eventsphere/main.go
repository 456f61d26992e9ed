package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/vivekmohanraj/EventSphere/internal/app"
	"github.com/vivekmohanraj/EventSphere/internal/config"
)

func main() {
	// Missing .env is fine, the environment may be set by the runtime.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
