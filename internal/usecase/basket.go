package usecase

import (
	"context"
	"log/slog"
	"sync"

	dombasket "github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/basket"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/gateway"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/pkg/errs"
)

var (
	ErrLoadFailed      = errs.New("basket load failed")
	ErrMutationFailed  = errs.New("basket mutation failed")
	ErrRemovalInFlight = errs.New("removal already in flight for product")
)

// BasketStore owns the canonical local copy of the basket. The server is the
// source of truth: mutations are confirmed remotely first and local state is
// then replaced wholesale, never patched optimistically. Views receive
// detached projections and route every change back through these operations.
type BasketStore interface {
	// Load fetches the current basket. On transport failure the store falls
	// back to an empty basket and returns ErrLoadFailed; it does not retry.
	Load(ctx context.Context) (dombasket.Basket, error)

	// AddItem submits an item and replaces local state with the confirmed
	// snapshot. On failure local state is untouched and ErrMutationFailed is
	// returned.
	AddItem(ctx context.Context, item dombasket.Item) (dombasket.Basket, error)

	// RemoveItem submits a removal and reloads on confirmation. A second
	// removal for the same product while one is pending returns
	// ErrRemovalInFlight without issuing a call.
	RemoveItem(ctx context.Context, productID string) error

	// IncrementQuantity and DecrementQuantity adjust the local-only
	// "quantity to add" counter for a product. The floor is one. Both return
	// the resulting pending value.
	IncrementQuantity(productID string) int
	DecrementQuantity(productID string) int
	PendingQuantity(productID string) int

	// MarkDiscountApplied flips the applied-discount flag on the local
	// snapshot without a reload; totals are re-derived on the next Load.
	MarkDiscountApplied()

	// Snapshot returns a read-only projection of the current basket.
	Snapshot() dombasket.Basket
}

type basketStoreImpl struct {
	gw  gateway.BasketGateway
	log *slog.Logger

	mu      sync.Mutex
	current dombasket.Basket
	pending map[string]dombasket.PendingQuantity
	// loadSeq orders snapshot replacements: a load that resolves after a
	// newer load or a confirmed mutation is stale and gets dropped.
	loadSeq  uint64
	removals map[string]struct{}
}

func NewBasketStore(gw gateway.BasketGateway, log *slog.Logger) BasketStore {
	return &basketStoreImpl{
		gw:       gw,
		log:      log,
		current:  dombasket.Empty(),
		pending:  make(map[string]dombasket.PendingQuantity),
		removals: make(map[string]struct{}),
	}
}

func (s *basketStoreImpl) Load(ctx context.Context) (dombasket.Basket, error) {
	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.mu.Unlock()

	snap, err := s.gw.FetchBasket(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.loadSeq {
		// Superseded while in flight. Expected, not an error.
		s.log.Debug("dropping stale basket load", "seq", seq, "latest", s.loadSeq)
		return s.current.Clone(), nil
	}
	if err != nil {
		s.current = dombasket.Empty()
		return s.current.Clone(), errs.Mark(err, ErrLoadFailed)
	}
	s.current = snap
	return s.current.Clone(), nil
}

func (s *basketStoreImpl) AddItem(ctx context.Context, item dombasket.Item) (dombasket.Basket, error) {
	if err := item.Validate(); err != nil {
		return s.Snapshot(), errs.Mark(err, errs.ErrValidation)
	}

	snap, err := s.gw.SubmitItem(ctx, item)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// No optimistic insert happened, so there is nothing to roll back.
		return s.current.Clone(), errs.Mark(err, ErrMutationFailed)
	}
	s.loadSeq++ // the confirmed snapshot outranks any load still in flight
	s.current = snap
	delete(s.pending, item.ProductID)
	return s.current.Clone(), nil
}

func (s *basketStoreImpl) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	if _, inFlight := s.removals[productID]; inFlight {
		s.mu.Unlock()
		s.log.Debug("duplicate removal rejected", "product_id", productID)
		return ErrRemovalInFlight
	}
	s.removals[productID] = struct{}{}
	s.mu.Unlock()

	err := s.gw.DeleteItem(ctx, productID)

	s.mu.Lock()
	delete(s.removals, productID)
	s.mu.Unlock()

	if err != nil {
		return errs.Mark(err, ErrMutationFailed)
	}

	// Full reload after a confirmed removal: a concurrent server-side change
	// (an expired discount, another device) may have invalidated more than
	// the removed line.
	if _, err := s.Load(ctx); err != nil {
		return err
	}
	return nil
}

func (s *basketStoreImpl) IncrementQuantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.pendingOf(productID).Increment()
	s.pending[productID] = q
	return q.Value()
}

func (s *basketStoreImpl) DecrementQuantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.pendingOf(productID).Decrement()
	s.pending[productID] = q
	return q.Value()
}

func (s *basketStoreImpl) PendingQuantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingOf(productID).Value()
}

func (s *basketStoreImpl) MarkDiscountApplied() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.DiscountApplied = true
}

func (s *basketStoreImpl) Snapshot() dombasket.Basket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// callers hold s.mu
func (s *basketStoreImpl) pendingOf(productID string) dombasket.PendingQuantity {
	if q, ok := s.pending[productID]; ok {
		return q
	}
	return dombasket.NewPendingQuantity()
}
