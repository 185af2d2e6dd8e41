package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/zamtimber/shop/internal/handlers"
)

type Deps struct {
	CartHandler    *handlers.CartHandler
	CatalogHandler *handlers.CatalogHandler
	ContactHandler *handlers.ContactHandler
	EcoHandler     *handlers.EcoHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	// Legacy surface kept compatible with the original storefront.
	e.POST("/api/contact", d.ContactHandler.SubmitContact)
	e.GET("/api/products", d.CatalogHandler.LegacyProducts)

	v1 := e.Group("/api/v1")

	v1.GET("/catalog", d.CatalogHandler.GetCatalog)
	v1.GET("/catalog/:id", d.CatalogHandler.GetProduct)

	v1.GET("/eco/impact", d.EcoHandler.GetImpact)

	cart := v1.Group("/cart")

	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PATCH("/:id", d.CartHandler.UpdateQuantity)
	cart.DELETE("/:id", d.CartHandler.RemoveFromCart)
	cart.DELETE("", d.CartHandler.ClearCart)

	v1.POST("/checkout", d.CartHandler.Checkout)
}
