package api

import (
	"errors"
	"net/http"

	dombasket "github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/basket"
	reqdto "github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/handler/dto/request"
	resdto "github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/handler/dto/response"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/handler/httperr"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/pkg/errs"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BasketHandler is the view controller for the basket screen. It consumes
// the store strictly through its public contract: every mutation goes back
// through a store operation, never through the projection.
type BasketHandler struct {
	store    usecase.BasketStore
	discount usecase.DiscountApplier
	catalog  usecase.CatalogQueries
}

func NewBasketHandler(store usecase.BasketStore, discount usecase.DiscountApplier, catalog usecase.CatalogQueries) *BasketHandler {
	return &BasketHandler{store: store, discount: discount, catalog: catalog}
}

func (h *BasketHandler) Get(c *gin.Context) {
	snap, err := h.store.Load(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, httperr.StatusOf(err), err, "Failed to load basket", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBasket(snap))
}

// AddItem snapshots the product's catalog fields and the pending quantity at
// submit time, mirroring how the product page builds a basket line.
func (h *BasketHandler) AddItem(c *gin.Context) {
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	product, err := h.catalog.Product(c.Request.Context(), req.ProductID)
	if err != nil {
		httperr.AbortWithError(c, httperr.StatusOf(err), err, "Failed to load product", nil)
		return
	}

	item := dombasket.Item{
		ProductID:   product.ID,
		ProductName: product.Name,
		ImageURL:    product.ImageURL,
		Price:       product.Price,
		Quantity:    h.store.PendingQuantity(product.ID),
	}
	snap, err := h.store.AddItem(c.Request.Context(), item)
	if err != nil {
		httperr.AbortWithError(c, httperr.StatusOf(err), err, "Failed to add item to basket", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBasket(snap))
}

func (h *BasketHandler) Remove(c *gin.Context) {
	productID := c.Param("productId")
	if err := h.store.RemoveItem(c.Request.Context(), productID); err != nil {
		if errors.Is(err, usecase.ErrRemovalInFlight) {
			// The first removal is still pending; its reload will land.
			httperr.AbortWithError(c, http.StatusConflict, err, "Removal already in progress", nil)
			return
		}
		httperr.AbortWithError(c, httperr.StatusOf(err), err, "Failed to remove item", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBasket(h.store.Snapshot()))
}

func (h *BasketHandler) ApplyDiscount(c *gin.Context) {
	var req reqdto.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	outcome, err := h.discount.Apply(c.Request.Context(), req.Code)
	if err != nil && errors.Is(err, errs.ErrTransport) {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Discount service unavailable", nil)
		return
	}
	// Local rejection (empty code) and server rejection are both ordinary
	// outcomes the view renders, not HTTP errors.
	c.JSON(http.StatusOK, resdto.DiscountResponse{Outcome: string(outcome)})
}

func (h *BasketHandler) IncrementQuantity(c *gin.Context) {
	productID := c.Param("productId")
	c.JSON(http.StatusOK, resdto.PendingQuantityResponse{
		ProductID:       productID,
		PendingQuantity: h.store.IncrementQuantity(productID),
	})
}

func (h *BasketHandler) DecrementQuantity(c *gin.Context) {
	productID := c.Param("productId")
	c.JSON(http.StatusOK, resdto.PendingQuantityResponse{
		ProductID:       productID,
		PendingQuantity: h.store.DecrementQuantity(productID),
	})
}
