package admin

import (
	"embed"
	"html/template"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

//go:embed templates/*.html
var templateFS embed.FS

func SetupRouter(db *sqlx.DB) *gin.Engine {
	r := gin.Default()

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "nutrigabay-admin"
	}
	r.Use(sessions.Sessions("nutrigabay_admin", cookie.NewStore([]byte(secret))))

	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	h := &Handlers{db: db}

	r.GET("/", h.Dashboard)
	r.GET("/food", h.ListFoods)
	r.GET("/food/add", h.AddFoodForm)
	r.POST("/food/add", h.AddFood)
	r.GET("/food/update/:food_id", h.UpdateFoodForm)
	r.POST("/food/update/:food_id", h.UpdateFood)
	r.POST("/food/delete/:food_id", h.DeleteFood)
	r.GET("/user", h.ListUsers)
	r.POST("/delete_user/:user_id", h.DeleteUser)

	return r
}
