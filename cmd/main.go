package main

import (
	"os"

	"github.com/Lviers/NutriGabay/config"
	"github.com/Lviers/NutriGabay/routes"
)

func main() {
	config.InitLogger()
	config.InitDB()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	r.Run(":" + port)
}
