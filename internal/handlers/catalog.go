package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zamtimber/shop/internal/catalog"
	"github.com/zamtimber/shop/internal/models"
	"github.com/zamtimber/shop/internal/util"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid id")
	}

	product, err := h.Catalog.Product(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return errorResponse(c, http.StatusNotFound, "product not found")
		}
		return errorResponse(c, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, product)
}

// GetCatalog lists products with optional type/category filters and
// page/size pagination.
func (h *CatalogHandler) GetCatalog(c echo.Context) error {
	woodType := c.QueryParam("type")
	category := c.QueryParam("category")

	if woodType != "" && woodType != models.TypeHardwood && woodType != models.TypeSoftwood {
		return errorResponse(c, http.StatusBadRequest, "invalid type")
	}
	if category != "" && category != models.CategoryZambian && category != models.CategoryAfrican {
		return errorResponse(c, http.StatusBadRequest, "invalid category")
	}

	filtered := h.Catalog.Filter(woodType, category)

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total := len(filtered)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	items := filtered[offset:end]

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + limit - 1) / limit,
			"has_prev":    page > 1,
			"has_next":    end < total,
		},
	})
}

// LegacyProducts preserves the original storefront's stub endpoint: the
// real catalog was shipped with the client, so this always returned an
// empty payload.
func (h *CatalogHandler) LegacyProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Products retrieved successfully",
		"data":    []models.Product{},
	})
}
