package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Lviers/NutriGabay/models"
	"github.com/Lviers/NutriGabay/services"

	"github.com/gin-gonic/gin"
)

func FilterFoods(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var filter services.FoodFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	snapshot, err := services.FilterFoods(userID, filter)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("User with ID %d not found.", userID)})
	case errors.Is(err, services.ErrNoMatchingFoods):
		c.JSON(http.StatusNotFound, gin.H{"detail": "No foods found matching the criteria."})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusOK, filteredFoodList(snapshot))
	}
}

func GetFilteredFoods(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	snapshot, err := services.GetFilteredFoods(userID)
	switch {
	case errors.Is(err, services.ErrNoFilteredFoods):
		c.JSON(http.StatusNotFound, gin.H{"detail": "No filtered foods found for the given user ID."})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusOK, filteredFoodList(snapshot))
	}
}

func ListFoods(c *gin.Context) {
	foods, err := services.ListFoods()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

// The filtered-food shape keeps the mobile client's historical field names
// (calories/categories/mealtype rather than the column names).
func filteredFoodList(snapshot []models.FilteredFood) []gin.H {
	out := make([]gin.H, 0, len(snapshot))
	for _, f := range snapshot {
		out = append(out, gin.H{
			"filtered_id": f.FilteredID,
			"food_name":   f.FoodName,
			"calories":    f.Calorie,
			"type":        f.Type,
			"grams":       f.Grams,
			"categories":  f.Category,
			"mealtype":    f.MealType,
			"carbs":       f.Carbs,
			"protein":     f.Protein,
			"fats":        f.Fats,
			"recipe_link": f.RecipeLink,
		})
	}
	return out
}
