package main

import (
	"flag"
	"log"
)

func main() {
	cfg := LoadConfig()

	// Command line flags override environment defaults
	port := flag.String("port", cfg.Port, "Web server port")
	dbPath := flag.String("db", cfg.DBPath, "Database file path")
	flag.Parse()

	cfg.Port = *port
	cfg.DBPath = *dbPath

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Println("=== Stock Favorites Bot ===")
	log.Printf("Database: %s", cfg.DBPath)
	log.Printf("Host URL: %s", cfg.HostURL)
	log.Printf("Server will start on http://localhost:%s", cfg.Port)

	server, err := NewWebServer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize web server: %v", err)
	}
	defer server.Close()

	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start web server: %v", err)
	}
}
