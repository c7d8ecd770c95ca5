package services

import (
	"testing"

	"github.com/Lviers/NutriGabay/config"
	"github.com/Lviers/NutriGabay/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package-global config.DB at a fresh in-memory
// database with the schema migrated and the recommendation tiers seeded.
// Tests sharing the global must not run in parallel.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Recommendation{},
		&models.BMIRecord{},
		&models.Food{},
		&models.FilteredFood{},
		&models.Record{},
		&models.Progress{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	if err := config.SeedRecommendations(db); err != nil {
		t.Fatalf("failed to seed recommendations: %v", err)
	}

	config.DB = db
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := RegisterUser(username, "secret123", "Maria", "Santos", 28)
	if err != nil {
		t.Fatalf("RegisterUser(%q) failed: %v", username, err)
	}
	return user
}

func seedCatalog(t *testing.T, foods ...models.Food) {
	t.Helper()
	for i := range foods {
		if err := config.DB.Create(&foods[i]).Error; err != nil {
			t.Fatalf("failed to seed food %q: %v", foods[i].FoodName, err)
		}
	}
}

// testCatalog covers every excludable type plus a vegetable entry that no
// flag can exclude.
func testCatalog() []models.Food {
	return []models.Food{
		{FoodName: "Pork Adobo", Type: "Pork", Carbs: 10, Protein: 30, Fats: 20, Calorie: 350, Grams: 250, MealType: "Lunch", Category: "Main"},
		{FoodName: "Fresh Milk", Type: "Milk", Carbs: 12, Protein: 8, Fats: 8, Calorie: 150, Grams: 240, MealType: "Breakfast", Category: "Drink"},
		{FoodName: "Grilled Bangus", Type: "Fish", Carbs: 0, Protein: 25, Fats: 10, Calorie: 200, Grams: 180, MealType: "Dinner", Category: "Main"},
		{FoodName: "Tofu Sisig", Type: "Soy", Carbs: 8, Protein: 18, Fats: 12, Calorie: 220, Grams: 200, MealType: "Dinner", Category: "Main"},
		{FoodName: "Chicken Tinola", Type: "Chicken", Carbs: 6, Protein: 28, Fats: 9, Calorie: 240, Grams: 300, MealType: "Lunch", Category: "Soup"},
		{FoodName: "Baked Tahong", Type: "Mussels", Carbs: 5, Protein: 15, Fats: 6, Calorie: 140, Grams: 150, MealType: "Dinner", Category: "Appetizer"},
		{FoodName: "Beef Tapa", Type: "Beef", Carbs: 4, Protein: 26, Fats: 15, Calorie: 280, Grams: 200, MealType: "Breakfast", Category: "Main"},
		{FoodName: "Pinakbet", Type: "Vegetable", Carbs: 14, Protein: 4, Fats: 5, Calorie: 120, Grams: 220, MealType: "Lunch", Category: "Main"},
	}
}
