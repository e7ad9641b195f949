package main

import (
	"embed"
	"flag"
	"log"
	"os"

	"coffee-wifi-server/db"
	"coffee-wifi-server/handlers"
	"github.com/joho/godotenv"
)

//go:embed templates/*
var templateFS embed.FS

func main() {
	// retrieve execution mode
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	testMode := os.Getenv("TEST_MODE")

	// get port from flag
	port := flag.String("port", "80", "Port on which the server listens")
	flag.Parse()

	// init db
	database, err := db.InitDB(testMode)
	if err != nil || database == nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer db.CloseDBConnection()

	// parse the embedded page templates
	handlers.InitTemplates(templateFS)

	// setup routes
	SetupRoutes(*port)
}
