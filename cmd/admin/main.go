package main

import (
	"log"
	"os"

	"github.com/Lviers/NutriGabay/admin"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, reading configuration from the environment")
	}

	db, err := admin.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	r := admin.SetupRouter(db)

	port := os.Getenv("ADMIN_PORT")
	if port == "" {
		port = "5000"
	}
	r.Run(":" + port)
}
