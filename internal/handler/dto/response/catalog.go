package response

import (
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/catalog"
)

type ProductResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL string  `json:"imageUrl"`
	Price    float64 `json:"price"`
}

func FromProduct(p catalog.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, ImageURL: p.ImageURL, Price: p.Price}
}

type ProductImageResponse struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
}

func FromProductImages(images []catalog.ProductImage) []ProductImageResponse {
	out := make([]ProductImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, ProductImageResponse{ID: img.ID, ImageURL: img.ImageURL})
	}
	return out
}

type ProductDetailResponse struct {
	ProductID   string `json:"productId"`
	Description string `json:"description"`
}

func FromProductDetail(d catalog.ProductDetail) ProductDetailResponse {
	return ProductDetailResponse{ProductID: d.ProductID, Description: d.Description}
}
