package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/rxlens/rxlens/internal/config"
	"github.com/rxlens/rxlens/internal/server"
)

func main() {
	configPath := flag.String("config", "config/config.toml", "path to the TOML config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfg := config.Default()
	if _, err := os.Stat(*configPath); err == nil {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", *configPath, err)
		}
		cfg = loaded
	} else {
		log.Printf("Config file %s not found, using defaults", *configPath)
	}
	cfg.ApplyEnv()

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if srv.Store != nil {
		defer srv.Store.Close()
	}

	r := srv.SetupRouter()

	log.Printf("Starting server on port %s (provider=%s model=%s)", cfg.Server.Port, cfg.LLM.Provider, cfg.LLM.Model)
	if err := r.Run(fmt.Sprintf(":%s", cfg.Server.Port)); err != nil {
		log.Fatal(err)
	}
}
