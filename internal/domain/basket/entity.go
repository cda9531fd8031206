package basket

import (
	"strings"

	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/pkg/errs"
)

var (
	ErrDuplicateProduct = errs.New("product appears more than once in basket")
	ErrInvalidQuantity  = errs.New("quantity must be at least one")
	ErrMissingProductID = errs.New("product id is required")
)

// Item is one line of the basket. Product fields are snapshotted at add time;
// the server remains authoritative for the stored copy.
type Item struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	ImageURL    string  `json:"imageUrl"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.ProductID) == "" {
		return ErrMissingProductID
	}
	if i.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// Basket is the server snapshot of the user's in-progress order. The store
// replaces it wholesale on every confirmed change; nothing edits it in place.
type Basket struct {
	Items           []Item `json:"basketItems"`
	DiscountApplied bool   `json:"discountApplied"`
}

func Empty() Basket {
	return Basket{Items: []Item{}}
}

// Validate enforces the snapshot invariants: each productId occurs once and
// every line carries a positive quantity.
func (b Basket) Validate() error {
	seen := make(map[string]struct{}, len(b.Items))
	for _, it := range b.Items {
		if err := it.Validate(); err != nil {
			return err
		}
		if _, dup := seen[it.ProductID]; dup {
			return ErrDuplicateProduct
		}
		seen[it.ProductID] = struct{}{}
	}
	return nil
}

func (b Basket) Contains(productID string) bool {
	for _, it := range b.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// Total is derived locally for display; the server never ships it.
func (b Basket) Total() float64 {
	var sum float64
	for _, it := range b.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// Clone returns a copy whose item slice is detached from the original, so a
// projection handed to a view cannot alias store state.
func (b Basket) Clone() Basket {
	items := make([]Item, len(b.Items))
	copy(items, b.Items)
	return Basket{Items: items, DiscountApplied: b.DiscountApplied}
}
