package admin

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// FoodRow and UserRow are the admin's own mappings over the shared tables.
type FoodRow struct {
	FoodID     int     `db:"food_id"`
	FoodName   string  `db:"food_name"`
	Type       string  `db:"type"`
	Carbs      int     `db:"carbs"`
	Protein    int     `db:"protein"`
	Fats       int     `db:"fats"`
	Calorie    int     `db:"calorie"`
	Grams      int     `db:"grams"`
	MealType   string  `db:"meal_type"`
	Category   string  `db:"category"`
	RecipeLink *string `db:"recipe_link"`
}

type UserRow struct {
	UserID    int    `db:"user_id"`
	Username  string `db:"username"`
	Firstname string `db:"firstname"`
	Lastname  string `db:"lastname"`
	Age       int    `db:"age"`
}

type Handlers struct {
	db *sqlx.DB
}

func (h *Handlers) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "main.html", gin.H{"flashes": takeFlashes(c)})
}

func (h *Handlers) ListFoods(c *gin.Context) {
	var foods []FoodRow
	if err := h.db.Select(&foods, "SELECT * FROM foods ORDER BY food_id"); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.HTML(http.StatusOK, "food.html", gin.H{"foods": foods, "flashes": takeFlashes(c)})
}

func (h *Handlers) AddFoodForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_food.html", gin.H{"flashes": takeFlashes(c)})
}

func (h *Handlers) AddFood(c *gin.Context) {
	food, err := foodFromForm(c)
	if err != nil {
		flash(c, err.Error())
		c.Redirect(http.StatusFound, "/food/add")
		return
	}

	query := h.db.Rebind(`INSERT INTO foods (food_name, type, carbs, protein, fats, calorie, grams, meal_type, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err = h.db.Exec(query, food.FoodName, food.Type, food.Carbs, food.Protein,
		food.Fats, food.Calorie, food.Grams, food.MealType, food.Category)
	if err != nil {
		flash(c, "Failed to add food: "+err.Error())
		c.Redirect(http.StatusFound, "/food/add")
		return
	}

	flash(c, "Food added successfully!")
	c.Redirect(http.StatusFound, "/food")
}

func (h *Handlers) UpdateFoodForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("food_id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/food")
		return
	}

	var food FoodRow
	if err := h.db.Get(&food, h.db.Rebind("SELECT * FROM foods WHERE food_id = ?"), id); err != nil {
		flash(c, "Food not found!")
		c.Redirect(http.StatusFound, "/food")
		return
	}
	c.HTML(http.StatusOK, "update_food.html", gin.H{"food": food, "flashes": takeFlashes(c)})
}

func (h *Handlers) UpdateFood(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("food_id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/food")
		return
	}

	food, err := foodFromForm(c)
	if err != nil {
		flash(c, err.Error())
		c.Redirect(http.StatusFound, fmt.Sprintf("/food/update/%d", id))
		return
	}

	query := h.db.Rebind(`UPDATE foods SET food_name = ?, type = ?, carbs = ?, protein = ?, fats = ?,
		calorie = ?, grams = ?, meal_type = ?, category = ? WHERE food_id = ?`)
	_, err = h.db.Exec(query, food.FoodName, food.Type, food.Carbs, food.Protein,
		food.Fats, food.Calorie, food.Grams, food.MealType, food.Category, id)
	if err != nil {
		flash(c, "Failed to update food: "+err.Error())
		c.Redirect(http.StatusFound, fmt.Sprintf("/food/update/%d", id))
		return
	}

	flash(c, "Food updated successfully!")
	c.Redirect(http.StatusFound, "/food")
}

func (h *Handlers) DeleteFood(c *gin.Context) {
	if id, err := strconv.Atoi(c.Param("food_id")); err == nil {
		if _, err := h.db.Exec(h.db.Rebind("DELETE FROM foods WHERE food_id = ?"), id); err == nil {
			flash(c, "Food deleted successfully!")
		}
	}
	c.Redirect(http.StatusFound, "/food")
}

func (h *Handlers) ListUsers(c *gin.Context) {
	var users []UserRow
	query := "SELECT user_id, username, firstname, lastname, age FROM tbl_users ORDER BY user_id"
	if err := h.db.Select(&users, query); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.HTML(http.StatusOK, "user.html", gin.H{"users": users, "flashes": takeFlashes(c)})
}

func (h *Handlers) DeleteUser(c *gin.Context) {
	if id, err := strconv.Atoi(c.Param("user_id")); err == nil {
		if _, err := h.db.Exec(h.db.Rebind("DELETE FROM tbl_users WHERE user_id = ?"), id); err == nil {
			flash(c, "User deleted successfully!")
		}
	}
	c.Redirect(http.StatusFound, "/user")
}

// foodFromForm validates that every field is present and normalizes macro
// inputs that arrive with a gram suffix ("12g"); the suffix is never stored.
func foodFromForm(c *gin.Context) (*FoodRow, error) {
	food := FoodRow{
		FoodName: strings.TrimSpace(c.PostForm("food_name")),
		Type:     strings.TrimSpace(c.PostForm("type")),
		MealType: strings.TrimSpace(c.PostForm("meal_type")),
		Category: strings.TrimSpace(c.PostForm("category")),
	}

	numbers := map[string]*int{
		"carbs":   &food.Carbs,
		"protein": &food.Protein,
		"fats":    &food.Fats,
		"calorie": &food.Calorie,
		"grams":   &food.Grams,
	}
	for field, dst := range numbers {
		v, err := parseAmount(c.PostForm(field))
		if err != nil {
			return nil, fmt.Errorf("Please fill out all fields.")
		}
		*dst = v
	}

	if food.FoodName == "" || food.Type == "" || food.MealType == "" || food.Category == "" {
		return nil, fmt.Errorf("Please fill out all fields.")
	}
	return &food, nil
}

func parseAmount(raw string) (int, error) {
	s := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(raw), "gG"))
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(math.Round(f)), nil
}

func flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	_ = session.Save()
}

func takeFlashes(c *gin.Context) []interface{} {
	session := sessions.Default(c)
	flashes := session.Flashes()
	_ = session.Save()
	return flashes
}
