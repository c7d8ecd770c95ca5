package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Lviers/NutriGabay/models"
	"github.com/Lviers/NutriGabay/services"

	"github.com/gin-gonic/gin"
)

type RecordInput struct {
	UserID     uint `json:"user_id" binding:"required"`
	FilteredID uint `json:"filtered_id" binding:"required"`
}

type NewRecordInput struct {
	UserID     uint       `json:"user_id" binding:"required"`
	FoodName   string     `json:"food_name" binding:"required"`
	Type       string     `json:"type" binding:"required"`
	Carbs      int        `json:"carbs"`
	Protein    int        `json:"protein"`
	Fats       int        `json:"fats"`
	Calorie    int        `json:"calorie" binding:"required"`
	Grams      int        `json:"grams" binding:"required"`
	MealType   string     `json:"meal_type" binding:"required"`
	Category   string     `json:"category" binding:"required"`
	ConsumedAt *time.Time `json:"consumed_at"`
}

// RecordConsumption is the snapshot variant of the unified consumption
// operation: it writes the record and today's progress together.
func RecordConsumption(c *gin.Context) {
	var input RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	record, progress, err := services.ConsumeFromSnapshot(input.UserID, input.FilteredID)
	if !respondConsumption(c, err) {
		return
	}
	pushProgress(input.UserID, progress)
	c.JSON(http.StatusOK, record)
}

// AddRecord is the ad-hoc variant: the food facts come from the request body
// and no snapshot back-reference is stored.
func AddRecord(c *gin.Context) {
	var input NewRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	record, progress, err := services.ConsumeAdHoc(input.UserID, services.AdHocFood{
		FoodName:   input.FoodName,
		Type:       input.Type,
		Carbs:      input.Carbs,
		Protein:    input.Protein,
		Fats:       input.Fats,
		Calorie:    input.Calorie,
		Grams:      input.Grams,
		MealType:   input.MealType,
		Category:   input.Category,
		ConsumedAt: input.ConsumedAt,
	})
	if !respondConsumption(c, err) {
		return
	}
	pushProgress(input.UserID, progress)
	c.JSON(http.StatusOK, record)
}

func GetRecords(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	records, err := services.RecordsForUser(userID)
	switch {
	case errors.Is(err, services.ErrNoRecords):
		c.JSON(http.StatusNotFound, gin.H{"detail": "No records found for the given user ID."})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusOK, records)
	}
}

// respondConsumption maps consumption errors to responses; true means the
// caller may write its success payload.
func respondConsumption(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
	case errors.Is(err, services.ErrFilteredFoodNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Filtered food not found"})
	case errors.Is(err, services.ErrRecommendationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "No BMI record or recommendation found for the user."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	}
	return false
}

func pushProgress(userID uint, progress *models.Progress) {
	if progress == nil {
		return
	}
	services.Hub.BroadcastProgress(userID, progressResponse(progress, progress.DailyCalories))
}
