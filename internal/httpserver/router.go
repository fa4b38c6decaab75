package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcastros/clothing_store/internal/middleware"
)

// APIMeta is what GET / reports about the running service.
type APIMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

type Deps struct {
	Meta           APIMeta
	Auth           *middleware.BearerAuth
	UserHandler    *UserHTTP
	ProductHandler *ProductHTTP
	SearchHandler  *SearchHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error { return c.JSON(http.StatusOK, d.Meta) })
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	users := e.Group("/users")
	users.POST("/register_user", d.UserHandler.Register)
	users.POST("/login_user", d.UserHandler.Login)
	users.PUT("/update_user", d.UserHandler.Update, d.Auth.RequireAuth)

	products := e.Group("/products", d.Auth.RequireAuth)
	products.POST("/register_product", d.ProductHandler.Register)
	products.GET("/get_products_by_category", d.ProductHandler.ByCategory)
	products.PUT("/update_product", d.ProductHandler.Update)
	products.DELETE("/delete_product", d.ProductHandler.Delete)
	products.GET("/fetch_top_10_products_by_category", d.ProductHandler.TopByCategory)
	products.GET("/search", d.SearchHandler.Search)
}
