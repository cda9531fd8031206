package api

import (
	"io"
	"net/http"

	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/comment"
	reqdto "github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/handler/dto/request"
	resdto "github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/handler/dto/response"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/handler/httperr"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/pkg/clock"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/pkg/errs"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	live  usecase.LiveCommentChannel
	clock clock.Clock
}

func NewCommentHandler(live usecase.LiveCommentChannel, clk clock.Clock) *CommentHandler {
	return &CommentHandler{live: live, clock: clk}
}

func (h *CommentHandler) List(c *gin.Context) {
	productID := c.Query("productId")
	if productID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("productId query parameter is required"), "Missing productId", nil)
		return
	}
	list, err := h.live.CommentsByProduct(c.Request.Context(), productID)
	if err != nil {
		httperr.AbortWithError(c, httperr.StatusOf(err), err, "Failed to load comments", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromComments(list))
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	uc, err := comment.New(req.NameSurname, req.Email, req.ImageURL, req.CommentDetail, req.Rating, req.ProductID, h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid comment", nil)
		return
	}

	if err := h.live.AddComment(c.Request.Context(), uc); err != nil {
		httperr.AbortWithError(c, httperr.StatusOf(err), err, "Failed to submit comment", nil)
		return
	}
	// No counter bump here: the push event for this comment moves it.
	c.JSON(http.StatusCreated, resdto.FromComment(uc))
}

// CountStream streams reconciled counter values as server-sent events for
// the lifetime of the request. Closing the request tears down only this
// subscription; the shared push connection stays up.
func (h *CommentHandler) CountStream(c *gin.Context) {
	productID := c.Param("productId")

	sub, err := h.live.Subscribe(c.Request.Context(), productID)
	if err != nil {
		httperr.AbortWithError(c, httperr.StatusOf(err), err, "Failed to subscribe to comment counter", nil)
		return
	}
	defer sub.Unsubscribe()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(_ io.Writer) bool {
		select {
		case v, ok := <-sub.Updates():
			if !ok {
				return false
			}
			c.SSEvent("count", v)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
