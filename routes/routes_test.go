package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Lviers/NutriGabay/config"
	"github.com/Lviers/NutriGabay/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	food := models.Food{
		FoodName: "Grilled Bangus", Type: "Fish", Carbs: 0, Protein: 25, Fats: 10,
		Calorie: 500, Grams: 180, MealType: "Dinner", Category: "Main",
	}
	if err := db.Create(&food).Error; err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}

	return SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{") {
		_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	}
	return w, decoded
}

func TestRegisterLoginConsumeFlow(t *testing.T) {
	r := setupAPI(t)

	// Register; the response carries the identity and never the hash.
	w, body := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"username": "maria", "password": "secret123",
		"firstname": "Maria", "lastname": "Santos", "age": 28,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "password") || strings.Contains(w.Body.String(), "hash") {
		t.Errorf("register response leaks credential fields: %s", w.Body.String())
	}
	userID := uint(body["user_id"].(float64))

	// Duplicate registration conflicts.
	w, _ = doJSON(t, r, http.MethodPost, "/register", gin.H{
		"username": "maria", "password": "other",
		"firstname": "Other", "lastname": "User", "age": 30,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate register status = %d, want 400", w.Code)
	}

	// No BMI yet: login routes to the calculator.
	w, body = doJSON(t, r, http.MethodPost, "/login", gin.H{"username": "maria", "password": "secret123"})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}
	if body["redirect_to"] != "BMICalculator" {
		t.Errorf("redirect_to = %v, want BMICalculator", body["redirect_to"])
	}

	// Wrong password and unknown user respond identically.
	wBad, bodyBad := doJSON(t, r, http.MethodPost, "/login", gin.H{"username": "maria", "password": "nope"})
	wUnknown, bodyUnknown := doJSON(t, r, http.MethodPost, "/login", gin.H{"username": "ghost", "password": "secret123"})
	if wBad.Code != http.StatusUnauthorized || wUnknown.Code != http.StatusUnauthorized {
		t.Errorf("bad-credential statuses = %d/%d, want 401/401", wBad.Code, wUnknown.Code)
	}
	if bodyBad["detail"] != bodyUnknown["detail"] {
		t.Errorf("credential errors differ: %v vs %v", bodyBad["detail"], bodyUnknown["detail"])
	}

	// Create the BMI record; login now routes home.
	w, body = doJSON(t, r, http.MethodPost, "/bmi", gin.H{"height": 1.75, "weight": 68, "user_id": userID})
	if w.Code != http.StatusOK {
		t.Fatalf("bmi status = %d, body %s", w.Code, w.Body.String())
	}
	if body["recommendation"].(map[string]any)["daily_calories"].(float64) != 2000 {
		t.Errorf("expected Normal-tier 2000 kcal target, got %v", body["recommendation"])
	}
	w, body = doJSON(t, r, http.MethodPost, "/login", gin.H{"username": "maria", "password": "secret123"})
	if body["redirect_to"] != "HomeScreen" {
		t.Errorf("redirect_to = %v, want HomeScreen", body["redirect_to"])
	}

	// Filter the catalog into a personal snapshot.
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/filter-foods/%d", userID),
		bytes.NewReader([]byte(`{"pork":false,"allergic_to_milk":false,"allergic_to_fish":false,"allergic_to_soy":false,"allergic_to_chicken":false,"allergic_to_mussels":false,"allergic_to_beef":false}`)))
	req.Header.Set("Content-Type", "application/json")
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("filter-foods status = %d, body %s", w2.Code, w2.Body.String())
	}
	var snapshot []map[string]any
	if err := json.Unmarshal(w2.Body.Bytes(), &snapshot); err != nil || len(snapshot) == 0 {
		t.Fatalf("filter-foods returned no snapshot: %s", w2.Body.String())
	}
	filteredID := uint(snapshot[0]["filtered_id"].(float64))

	// Nothing consumed yet.
	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/progress/%d/today", userID), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("today before consumption status = %d, want 404", w.Code)
	}

	// Consume a 500-calorie food; record and progress move together.
	w, body = doJSON(t, r, http.MethodPost, "/record-consumption", gin.H{"user_id": userID, "filtered_id": filteredID})
	if w.Code != http.StatusOK {
		t.Fatalf("record-consumption status = %d, body %s", w.Code, w.Body.String())
	}
	if body["calorie"].(float64) != 500 {
		t.Errorf("record calorie = %v, want 500", body["calorie"])
	}

	w, body = doJSON(t, r, http.MethodGet, fmt.Sprintf("/progress/%d/today", userID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("today status = %d, body %s", w.Code, w.Body.String())
	}
	if body["total_calories"].(float64) != 500 {
		t.Errorf("total_calories = %v, want 500", body["total_calories"])
	}
	if body["bmi"].(map[string]any)["daily_calories"].(float64) != 2000 {
		t.Errorf("daily_calories = %v, want 2000", body["bmi"])
	}
}

func TestBmiValidation(t *testing.T) {
	r := setupAPI(t)

	w, _ := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"username": "jose", "password": "secret123",
		"firstname": "Jose", "lastname": "Cruz", "age": 35,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register status = %d", w.Code)
	}

	// Non-positive height is a validation error, not a 500.
	w, _ = doJSON(t, r, http.MethodPost, "/bmi", gin.H{"height": 0, "weight": 68, "user_id": 1})
	if w.Code != http.StatusBadRequest {
		t.Errorf("zero height status = %d, want 400", w.Code)
	}

	// Weight update without a BMI record.
	w, _ = doJSON(t, r, http.MethodPut, "/bmi/user/1/update-weight", gin.H{"weight": 50})
	if w.Code != http.StatusNotFound {
		t.Errorf("update-weight without record status = %d, want 404", w.Code)
	}
}

func TestRecommendationPreview(t *testing.T) {
	r := setupAPI(t)

	w, body := doJSON(t, r, http.MethodPost, "/recommendation", gin.H{"bmi": 17.2})
	if w.Code != http.StatusOK {
		t.Fatalf("recommendation status = %d, body %s", w.Code, w.Body.String())
	}
	if plan, _ := body["plan"].(string); !strings.Contains(strings.ToLower(plan), "gain") {
		t.Errorf("plan = %v, want the Underweight plan", body["plan"])
	}
}
