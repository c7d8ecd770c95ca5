package services

import (
	"errors"
	"math"
	"testing"

	"github.com/Lviers/NutriGabay/utils"
)

func TestCreateBmiRecord(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "maria")

	detail, err := CreateBmiRecord(user.UserID, 1.75, 56.7)
	if err != nil {
		t.Fatalf("CreateBmiRecord failed: %v", err)
	}
	if math.Abs(detail.Record.Bmi-18.51) > 0.01 {
		t.Errorf("bmi = %v, want ~18.51", detail.Record.Bmi)
	}
	if detail.Recommendation.ID != 2 {
		t.Errorf("tier = %d, want 2 (Normal)", detail.Recommendation.ID)
	}
	if detail.Recommendation.DailyCalories == 0 {
		t.Error("expected a resolved daily-calorie target")
	}
	if detail.User.Firstname != "Maria" {
		t.Errorf("firstname = %q, want Maria", detail.User.Firstname)
	}

	if _, err := CreateBmiRecord(9999, 1.75, 56.7); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user: got %v, want ErrUserNotFound", err)
	}
	if _, err := CreateBmiRecord(user.UserID, 0, 56.7); !errors.Is(err, utils.ErrInvalidHeight) {
		t.Errorf("zero height: got %v, want ErrInvalidHeight", err)
	}
}

func TestUpdateWeight(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "maria")

	if _, err := UpdateWeight(user.UserID, 50); !errors.Is(err, ErrBmiNotFound) {
		t.Fatalf("update without record: got %v, want ErrBmiNotFound", err)
	}

	if _, err := CreateBmiRecord(user.UserID, 1.75, 56.7); err != nil {
		t.Fatalf("CreateBmiRecord failed: %v", err)
	}

	// Dropping to 50kg with the stored 1.75m height re-tiers to Underweight.
	detail, err := UpdateWeight(user.UserID, 50)
	if err != nil {
		t.Fatalf("UpdateWeight failed: %v", err)
	}
	if math.Abs(detail.Record.Bmi-16.33) > 0.01 {
		t.Errorf("bmi = %v, want ~16.33", detail.Record.Bmi)
	}
	if detail.Recommendation.ID != 1 {
		t.Errorf("tier = %d, want 1 (Underweight)", detail.Recommendation.ID)
	}

	// The record is overwritten in place, not appended.
	latest, err := LatestBmiForUser(user.UserID)
	if err != nil {
		t.Fatalf("LatestBmiForUser failed: %v", err)
	}
	if latest.Record.Weight != 50 {
		t.Errorf("stored weight = %v, want 50", latest.Record.Weight)
	}
	if latest.Record.Height != 1.75 {
		t.Errorf("stored height = %v, want 1.75 (unchanged)", latest.Record.Height)
	}
}

func TestRecommendationForBMI(t *testing.T) {
	setupTestDB(t)

	tests := []struct {
		bmi      float64
		wantTier uint
	}{
		{17.0, 1},
		{18.5, 2},
		{24.9, 2},
		{27.3, 3},
	}
	for _, tt := range tests {
		rec, err := RecommendationForBMI(tt.bmi)
		if err != nil {
			t.Fatalf("RecommendationForBMI(%v) failed: %v", tt.bmi, err)
		}
		if rec.ID != tt.wantTier {
			t.Errorf("RecommendationForBMI(%v) tier = %d, want %d", tt.bmi, rec.ID, tt.wantTier)
		}
		if rec.Plan == "" {
			t.Errorf("RecommendationForBMI(%v) returned empty plan", tt.bmi)
		}
	}
}
