package main

import (
	"log"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/successxx/punctual/internal/app"
	"github.com/successxx/punctual/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
