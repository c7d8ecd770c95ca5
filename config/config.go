package config

import (
	"fmt"
	"log"
	"os"

	"github.com/Lviers/NutriGabay/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, reading configuration from the environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Recommendation{},
		&models.BMIRecord{},
		&models.Food{},
		&models.FilteredFood{},
		&models.Record{},
		&models.Progress{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	if err := SeedRecommendations(DB); err != nil {
		log.Fatalf("Seeding recommendations failed: %v", err)
	}
}

// SeedRecommendations inserts the three fixed tiers when missing. The tier
// ids are load-bearing: BMI tiering resolves directly to ids 1..3.
func SeedRecommendations(db *gorm.DB) error {
	tiers := []models.Recommendation{
		{ID: 1, Plan: "Underweight: focus on gaining weight", DailyCalories: 2800},
		{ID: 2, Plan: "Normal: aim to maintain your weight", DailyCalories: 2000},
		{ID: 3, Plan: "Overweight: consider losing weight", DailyCalories: 1500},
	}
	for _, tier := range tiers {
		if err := db.FirstOrCreate(&tier, models.Recommendation{ID: tier.ID}).Error; err != nil {
			return err
		}
	}
	return nil
}
