// Package catalog holds the catalog read models. The catalog service owns
// these; the client never mutates them.
package catalog

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL string  `json:"imageUrl"`
	Price    float64 `json:"price"`
}

type ProductImage struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	ImageURL  string `json:"imageUrl"`
}

type ProductDetail struct {
	ProductID   string `json:"productId"`
	Description string `json:"description"`
}
