package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zamtimber/shop/internal/catalog"
	"github.com/zamtimber/shop/internal/eco"
)

type EcoHandler struct {
	Catalog *catalog.Catalog
}

type ecoResponse struct {
	ProductID int              `json:"product_id"`
	Product   string           `json:"product"`
	Quantity  float64          `json:"quantity"`
	Distance  float64          `json:"distance"`
	Report    eco.ImpactReport `json:"report"`
	Rating    string           `json:"rating"`
	Color     string           `json:"color"`
}

// GetImpact computes the environmental impact report for a catalog product
// at a given quantity and shipping distance. Quantity defaults to 1 and
// distance to 100 km, matching the calculator's defaults in the storefront.
func (h *EcoHandler) GetImpact(c echo.Context) error {
	id, err := strconv.Atoi(c.QueryParam("product_id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "product_id required")
	}

	quantity, err := parseFloatDefault(c.QueryParam("quantity"), 1)
	if err != nil || quantity < 0 {
		return errorResponse(c, http.StatusBadRequest, "quantity must be a non-negative number")
	}
	distance, err := parseFloatDefault(c.QueryParam("distance"), 100)
	if err != nil || distance < 0 {
		return errorResponse(c, http.StatusBadRequest, "distance must be a non-negative number")
	}

	product, err := h.Catalog.Product(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return errorResponse(c, http.StatusNotFound, "product not found")
		}
		return errorResponse(c, http.StatusInternalServerError, "internal error")
	}

	report := eco.CalculateImpactScore(product, quantity, distance)

	return c.JSON(http.StatusOK, ecoResponse{
		ProductID: product.ID,
		Product:   product.Name,
		Quantity:  quantity,
		Distance:  distance,
		Report:    report,
		Rating:    eco.Rating(report.TotalScore),
		Color:     eco.RatingColor(report.TotalScore),
	})
}

func parseFloatDefault(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}
