package basket

// PendingQuantity is the "quantity to add" counter a product view holds
// before an item is submitted. It is local-only state, decoupled from any
// server-confirmed quantity, and never goes below one.
type PendingQuantity struct {
	value int
}

func NewPendingQuantity() PendingQuantity {
	return PendingQuantity{value: 1}
}

func (q PendingQuantity) Value() int {
	if q.value < 1 {
		// zero value of the type still reads as one
		return 1
	}
	return q.value
}

func (q PendingQuantity) Increment() PendingQuantity {
	return PendingQuantity{value: q.Value() + 1}
}

// Decrement floors at one; decrementing below that is a no-op.
func (q PendingQuantity) Decrement() PendingQuantity {
	if q.Value() <= 1 {
		return PendingQuantity{value: 1}
	}
	return PendingQuantity{value: q.Value() - 1}
}
