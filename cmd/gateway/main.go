package main

import (
	"log"

	"github.com/Khaled152/tutor-kashier-integration/config"
	"github.com/Khaled152/tutor-kashier-integration/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}
	app.Run(cfg)
}
