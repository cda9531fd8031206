// Package gateway is the outbound boundary of the synchronization core.
// Every endpoint has an explicit result type; nothing dynamic crosses this
// line. Errors returned here are marked errs.ErrTransport so callers can
// classify failures without parsing messages.
package gateway

import (
	"context"

	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/basket"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/catalog"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/comment"
)

type BasketGateway interface {
	// FetchBasket returns the current server-side basket snapshot.
	FetchBasket(ctx context.Context) (basket.Basket, error)

	// SubmitItem adds an item and returns the updated snapshot the server
	// confirms, so the store can replace local state wholesale.
	SubmitItem(ctx context.Context, item basket.Item) (basket.Basket, error)

	// DeleteItem removes one product line. Confirmation only; the store
	// reloads afterwards rather than patching locally.
	DeleteItem(ctx context.Context, productID string) error

	// SubmitDiscount reports whether the server accepted the code.
	SubmitDiscount(ctx context.Context, code string) (bool, error)
}

type CommentGateway interface {
	FetchComments(ctx context.Context, productID string) ([]comment.UserComment, error)

	// FetchCommentCount is the authoritative seed for the live counter.
	FetchCommentCount(ctx context.Context, productID string) (int, error)

	SubmitComment(ctx context.Context, c comment.UserComment) error
}

type CatalogGateway interface {
	FetchProduct(ctx context.Context, productID string) (catalog.Product, error)
	FetchProductImages(ctx context.Context, productID string) ([]catalog.ProductImage, error)
	FetchProductDetail(ctx context.Context, productID string) (catalog.ProductDetail, error)
}
