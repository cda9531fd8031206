package request

// AddItemRequest names the product to add; the handler snapshots the catalog
// fields and the pending quantity before submitting.
type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type ApplyDiscountRequest struct {
	// No binding:"required": an empty code is a defined outcome (local
	// rejection), not a malformed request.
	Code string `json:"code"`
}
