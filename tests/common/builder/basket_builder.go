//go:build unit

package builder

import (
	dombasket "github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/basket"
)

type BasketBuilder struct {
	Items           []dombasket.Item
	DiscountApplied bool
}

func NewBasketBuilder() *BasketBuilder {
	return &BasketBuilder{
		Items: []dombasket.Item{
			{ProductID: "p1", ProductName: "Keyboard", ImageURL: "/img/p1.png", Price: 49.90, Quantity: 1},
			{ProductID: "p2", ProductName: "Mouse", ImageURL: "/img/p2.png", Price: 19.90, Quantity: 2},
		},
	}
}

func (b *BasketBuilder) WithItems(items ...dombasket.Item) *BasketBuilder {
	b.Items = items
	return b
}

func (b *BasketBuilder) WithoutProduct(productID string) *BasketBuilder {
	kept := make([]dombasket.Item, 0, len(b.Items))
	for _, it := range b.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	b.Items = kept
	return b
}

func (b *BasketBuilder) WithDiscountApplied() *BasketBuilder {
	b.DiscountApplied = true
	return b
}

func (b *BasketBuilder) Build() dombasket.Basket {
	return dombasket.Basket{Items: b.Items, DiscountApplied: b.DiscountApplied}
}
