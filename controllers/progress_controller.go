package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Lviers/NutriGabay/models"
	"github.com/Lviers/NutriGabay/services"

	"github.com/gin-gonic/gin"
)

type ProgressUpdateInput struct {
	FilteredID uint `json:"filtered_id" binding:"required"`
}

// UpdateProgress performs the unified consumption operation for a snapshot
// food and returns the resulting daily row.
func UpdateProgress(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var input ProgressUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	progress, err := services.UpdateProgress(userID, input.FilteredID)
	if !respondConsumption(c, err) {
		return
	}
	pushProgress(userID, progress)
	c.JSON(http.StatusOK, progressResponse(progress, progress.DailyCalories))
}

func GetTodayProgress(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	progress, displayTarget, err := services.TodayProgress(userID)
	switch {
	case errors.Is(err, services.ErrNoProgressToday):
		c.JSON(http.StatusNotFound, gin.H{"detail": "No progress found for today."})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	default:
		// Displayed target is the user's current recommendation; the
		// stored frozen target may differ.
		c.JSON(http.StatusOK, progressResponse(progress, displayTarget))
	}
}

func GetCaloriesPerDay(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	start, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "start_date must be YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "end_date must be YYYY-MM-DD"})
		return
	}

	rows, err := services.ProgressRange(userID, start, end)
	switch {
	case errors.Is(err, services.ErrNoProgressInRange):
		c.JSON(http.StatusNotFound, gin.H{"detail": "No progress records found for the specified date range."})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	default:
		out := make([]gin.H, 0, len(rows))
		for i := range rows {
			out = append(out, progressResponse(&rows[i], rows[i].DailyCalories))
		}
		c.JSON(http.StatusOK, out)
	}
}

func progressResponse(p *models.Progress, dailyCalories int) gin.H {
	return gin.H{
		"progress_id":    p.ProgressID,
		"user_id":        p.UserID,
		"filtered_id":    p.FilteredID,
		"total_calories": p.TotalCalories,
		"date":           p.Date.Format("2006-01-02"),
		"bmi":            gin.H{"daily_calories": dailyCalories},
	}
}
