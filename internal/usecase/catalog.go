package usecase

import (
	"context"

	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/catalog"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/gateway"
)

// CatalogQueries are the read operations a product view needs. Catalog data
// is never cached or mutated client-side.
type CatalogQueries interface {
	Product(ctx context.Context, productID string) (catalog.Product, error)
	ProductImages(ctx context.Context, productID string) ([]catalog.ProductImage, error)
	ProductDetail(ctx context.Context, productID string) (catalog.ProductDetail, error)
}

type catalogQueriesImpl struct {
	gw gateway.CatalogGateway
}

func NewCatalogQueries(gw gateway.CatalogGateway) CatalogQueries {
	return &catalogQueriesImpl{gw: gw}
}

func (q *catalogQueriesImpl) Product(ctx context.Context, productID string) (catalog.Product, error) {
	return q.gw.FetchProduct(ctx, productID)
}

func (q *catalogQueriesImpl) ProductImages(ctx context.Context, productID string) ([]catalog.ProductImage, error) {
	return q.gw.FetchProductImages(ctx, productID)
}

func (q *catalogQueriesImpl) ProductDetail(ctx context.Context, productID string) (catalog.ProductDetail, error) {
	return q.gw.FetchProductDetail(ctx, productID)
}
