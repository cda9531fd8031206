package response

import (
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/basket"
)

type BasketItemResponse struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	ImageURL    string  `json:"imageUrl"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type BasketResponse struct {
	Items           []BasketItemResponse `json:"basketItems"`
	DiscountApplied bool                 `json:"discountApplied"`
	Total           float64              `json:"total"`
}

func FromBasket(b basket.Basket) BasketResponse {
	items := make([]BasketItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BasketItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ImageURL:    it.ImageURL,
			Price:       it.Price,
			Quantity:    it.Quantity,
		})
	}
	return BasketResponse{
		Items:           items,
		DiscountApplied: b.DiscountApplied,
		Total:           b.Total(),
	}
}

type DiscountResponse struct {
	Outcome string `json:"outcome"`
}

type PendingQuantityResponse struct {
	ProductID       string `json:"productId"`
	PendingQuantity int    `json:"pendingQuantity"`
}
