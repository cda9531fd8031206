package api

import (
	"net/http"

	resdto "github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/handler/dto/response"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/handler/httperr"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q usecase.CatalogQueries
}

func NewCatalogHandler(q usecase.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

func (h *CatalogHandler) Product(c *gin.Context) {
	product, err := h.q.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, httperr.StatusOf(err), err, "Failed to load product", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProduct(product))
}

func (h *CatalogHandler) Images(c *gin.Context) {
	images, err := h.q.ProductImages(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, httperr.StatusOf(err), err, "Failed to load product images", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductImages(images))
}

func (h *CatalogHandler) Detail(c *gin.Context) {
	detail, err := h.q.ProductDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, httperr.StatusOf(err), err, "Failed to load product detail", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductDetail(detail))
}
