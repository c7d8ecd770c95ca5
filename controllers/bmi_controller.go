package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Lviers/NutriGabay/services"
	"github.com/Lviers/NutriGabay/utils"

	"github.com/gin-gonic/gin"
)

type BMIInput struct {
	Height float64 `json:"height" binding:"required,gt=0"`
	Weight float64 `json:"weight" binding:"required,gt=0"`
	UserID uint    `json:"user_id" binding:"required"`
}

type UpdateWeightInput struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
}

type RecommendationInput struct {
	Bmi float64 `json:"bmi" binding:"required,gt=0"`
}

func CreateBmi(c *gin.Context) {
	var input BMIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	detail, err := services.CreateBmiRecord(input.UserID, input.Height, input.Weight)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
	case errors.Is(err, utils.ErrInvalidHeight):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Height must be greater than zero"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusOK, bmiResponse(detail))
	}
}

func GetBmiByUser(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	detail, err := services.LatestBmiForUser(userID)
	switch {
	case errors.Is(err, services.ErrBmiNotFound), errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "BMI record not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusOK, bmiResponse(detail))
	}
}

func UpdateWeight(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var input UpdateWeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	detail, err := services.UpdateWeight(userID, input.Weight)
	switch {
	case errors.Is(err, services.ErrBmiNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "BMI record not found"})
	case errors.Is(err, utils.ErrInvalidHeight):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Height must be greater than zero"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusOK, bmiResponse(detail))
	}
}

// GetRecommendation is the stateless what-if lookup: tier a BMI value without
// reading or writing any record.
func GetRecommendation(c *gin.Context) {
	var input RecommendationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	rec, err := services.RecommendationForBMI(input.Bmi)
	switch {
	case errors.Is(err, services.ErrRecommendationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Recommendation not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"plan": rec.Plan})
	}
}

func bmiResponse(d *services.BmiDetail) gin.H {
	return gin.H{
		"bmi_id": d.Record.BmiID,
		"height": d.Record.Height,
		"weight": d.Record.Weight,
		"bmi":    d.Record.Bmi,
		"user":   gin.H{"firstname": d.User.Firstname},
		"recommendation": gin.H{
			"daily_calories": d.Recommendation.DailyCalories,
			"plan":           d.Recommendation.Plan,
		},
	}
}

// userIDParam parses the :user_id path segment, writing the 400 itself.
func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user id"})
		return 0, false
	}
	return uint(id), true
}
