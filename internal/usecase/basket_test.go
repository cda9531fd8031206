//go:build unit

package usecase_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	dombasket "github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/basket"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/pkg/errs"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/usecase"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBasketGateway scripts each endpoint with a function and counts calls.
type fakeBasketGateway struct {
	mu            sync.Mutex
	fetchFn       func(ctx context.Context) (dombasket.Basket, error)
	submitFn      func(ctx context.Context, item dombasket.Item) (dombasket.Basket, error)
	deleteFn      func(ctx context.Context, productID string) error
	discountFn    func(ctx context.Context, code string) (bool, error)
	fetchCalls    int
	submitCalls   int
	deleteCalls   int
	discountCalls int
}

func (g *fakeBasketGateway) FetchBasket(ctx context.Context) (dombasket.Basket, error) {
	g.mu.Lock()
	g.fetchCalls++
	fn := g.fetchFn
	g.mu.Unlock()
	if fn == nil {
		return dombasket.Empty(), nil
	}
	return fn(ctx)
}

func (g *fakeBasketGateway) SubmitItem(ctx context.Context, item dombasket.Item) (dombasket.Basket, error) {
	g.mu.Lock()
	g.submitCalls++
	fn := g.submitFn
	g.mu.Unlock()
	if fn == nil {
		return dombasket.Empty(), nil
	}
	return fn(ctx, item)
}

func (g *fakeBasketGateway) DeleteItem(ctx context.Context, productID string) error {
	g.mu.Lock()
	g.deleteCalls++
	fn := g.deleteFn
	g.mu.Unlock()
	if fn == nil {
		return nil
	}
	return fn(ctx, productID)
}

func (g *fakeBasketGateway) SubmitDiscount(ctx context.Context, code string) (bool, error) {
	g.mu.Lock()
	g.discountCalls++
	fn := g.discountFn
	g.mu.Unlock()
	if fn == nil {
		return false, nil
	}
	return fn(ctx, code)
}

func (g *fakeBasketGateway) calls() (fetch, submit, del, discount int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fetchCalls, g.submitCalls, g.deleteCalls, g.discountCalls
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestBasketStoreLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces local state with server snapshot", func(t *testing.T) {
		want := builder.NewBasketBuilder().Build()
		gw := &fakeBasketGateway{
			fetchFn: func(context.Context) (dombasket.Basket, error) { return want, nil },
		}
		store := usecase.NewBasketStore(gw, discardLogger())

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(want, got))
		assert.Empty(t, cmp.Diff(want, store.Snapshot()))
	})

	t.Run("transport failure falls back to empty basket", func(t *testing.T) {
		seeded := builder.NewBasketBuilder().Build()
		gw := &fakeBasketGateway{
			fetchFn: func(context.Context) (dombasket.Basket, error) { return seeded, nil },
		}
		store := usecase.NewBasketStore(gw, discardLogger())
		_, err := store.Load(ctx)
		require.NoError(t, err)

		gw.mu.Lock()
		gw.fetchFn = func(context.Context) (dombasket.Basket, error) {
			return dombasket.Basket{}, errs.New("boom")
		}
		gw.mu.Unlock()

		got, err := store.Load(ctx)
		require.ErrorIs(t, err, usecase.ErrLoadFailed)
		assert.Empty(t, got.Items)
		assert.Empty(t, store.Snapshot().Items, "prior state is replaced by the empty fallback")
	})

	t.Run("stale load result is dropped after a confirmed mutation", func(t *testing.T) {
		stale := builder.NewBasketBuilder().WithItems(
			dombasket.Item{ProductID: "old", ProductName: "Old", Quantity: 1, Price: 1},
		).Build()
		confirmed := builder.NewBasketBuilder().Build()

		fetchStarted := make(chan struct{})
		releaseFetch := make(chan struct{})
		gw := &fakeBasketGateway{
			fetchFn: func(context.Context) (dombasket.Basket, error) {
				close(fetchStarted)
				<-releaseFetch
				return stale, nil
			},
			submitFn: func(context.Context, dombasket.Item) (dombasket.Basket, error) {
				return confirmed, nil
			},
		}
		store := usecase.NewBasketStore(gw, discardLogger())

		loadDone := make(chan dombasket.Basket, 1)
		go func() {
			got, _ := store.Load(ctx)
			loadDone <- got
		}()
		<-fetchStarted

		// The add confirms while the load is still in flight.
		_, err := store.AddItem(ctx, dombasket.Item{ProductID: "p9", ProductName: "New", Quantity: 1, Price: 2})
		require.NoError(t, err)

		close(releaseFetch)
		got := <-loadDone

		assert.Empty(t, cmp.Diff(confirmed, got), "superseded load returns the newer confirmed state")
		assert.Empty(t, cmp.Diff(confirmed, store.Snapshot()), "stale snapshot never lands")
	})
}

func TestBasketStoreAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed add replaces state and resets pending quantity", func(t *testing.T) {
		confirmed := builder.NewBasketBuilder().Build()
		gw := &fakeBasketGateway{
			submitFn: func(context.Context, dombasket.Item) (dombasket.Basket, error) {
				return confirmed, nil
			},
		}
		store := usecase.NewBasketStore(gw, discardLogger())

		store.IncrementQuantity("p1")
		store.IncrementQuantity("p1")
		require.Equal(t, 3, store.PendingQuantity("p1"))

		got, err := store.AddItem(ctx, dombasket.Item{ProductID: "p1", ProductName: "Keyboard", Price: 49.90, Quantity: 3})
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(confirmed, got))
		assert.Equal(t, 1, store.PendingQuantity("p1"), "pending counter resets after a confirmed add")
	})

	t.Run("failed add leaves the last confirmed snapshot untouched", func(t *testing.T) {
		confirmed := builder.NewBasketBuilder().Build()
		gw := &fakeBasketGateway{
			fetchFn: func(context.Context) (dombasket.Basket, error) { return confirmed, nil },
			submitFn: func(context.Context, dombasket.Item) (dombasket.Basket, error) {
				return dombasket.Basket{}, errs.New("boom")
			},
		}
		store := usecase.NewBasketStore(gw, discardLogger())
		_, err := store.Load(ctx)
		require.NoError(t, err)

		_, err = store.AddItem(ctx, dombasket.Item{ProductID: "p9", ProductName: "X", Quantity: 1, Price: 1})
		require.ErrorIs(t, err, usecase.ErrMutationFailed)
		assert.Empty(t, cmp.Diff(confirmed, store.Snapshot()), "no optimistic insert to roll back")
	})

	t.Run("invalid item is rejected without a network call", func(t *testing.T) {
		gw := &fakeBasketGateway{}
		store := usecase.NewBasketStore(gw, discardLogger())

		_, err := store.AddItem(ctx, dombasket.Item{ProductID: "p1", Quantity: 0})
		require.ErrorIs(t, err, errs.ErrValidation)

		_, submit, _, _ := gw.calls()
		assert.Zero(t, submit)
	})
}

func TestBasketStoreRemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate removal while pending sends a single DELETE and one reload", func(t *testing.T) {
		deleteStarted := make(chan struct{})
		releaseDelete := make(chan struct{})
		gw := &fakeBasketGateway{
			deleteFn: func(context.Context, string) error {
				close(deleteStarted)
				<-releaseDelete
				return nil
			},
		}
		store := usecase.NewBasketStore(gw, discardLogger())

		firstDone := make(chan error, 1)
		go func() {
			firstDone <- store.RemoveItem(ctx, "p1")
		}()
		<-deleteStarted

		err := store.RemoveItem(ctx, "p1")
		require.ErrorIs(t, err, usecase.ErrRemovalInFlight)

		close(releaseDelete)
		require.NoError(t, <-firstDone)

		fetch, _, del, _ := gw.calls()
		assert.Equal(t, 1, del, "only one DELETE for the product")
		assert.Equal(t, 1, fetch, "exactly one reload after the single confirmation")
	})

	t.Run("removal for another product is not blocked", func(t *testing.T) {
		deleteStarted := make(chan struct{})
		releaseDelete := make(chan struct{})
		gw := &fakeBasketGateway{
			deleteFn: func(_ context.Context, productID string) error {
				if productID == "p1" {
					close(deleteStarted)
					<-releaseDelete
				}
				return nil
			},
		}
		store := usecase.NewBasketStore(gw, discardLogger())

		firstDone := make(chan error, 1)
		go func() {
			firstDone <- store.RemoveItem(ctx, "p1")
		}()
		<-deleteStarted

		require.NoError(t, store.RemoveItem(ctx, "p2"))

		close(releaseDelete)
		require.NoError(t, <-firstDone)

		_, _, del, _ := gw.calls()
		assert.Equal(t, 2, del)
	})

	t.Run("failed removal leaves state unchanged and skips the reload", func(t *testing.T) {
		confirmed := builder.NewBasketBuilder().Build()
		gw := &fakeBasketGateway{
			fetchFn:  func(context.Context) (dombasket.Basket, error) { return confirmed, nil },
			deleteFn: func(context.Context, string) error { return errs.New("boom") },
		}
		store := usecase.NewBasketStore(gw, discardLogger())
		_, err := store.Load(ctx)
		require.NoError(t, err)

		err = store.RemoveItem(ctx, "p1")
		require.ErrorIs(t, err, usecase.ErrMutationFailed)

		fetch, _, _, _ := gw.calls()
		assert.Equal(t, 1, fetch, "no reload after a failed removal")
		assert.Empty(t, cmp.Diff(confirmed, store.Snapshot()))
	})

	t.Run("removal can be retried after the previous one resolves", func(t *testing.T) {
		gw := &fakeBasketGateway{}
		store := usecase.NewBasketStore(gw, discardLogger())

		require.NoError(t, store.RemoveItem(ctx, "p1"))
		require.NoError(t, store.RemoveItem(ctx, "p1"))

		_, _, del, _ := gw.calls()
		assert.Equal(t, 2, del)
	})
}

func TestBasketStoreQuantities(t *testing.T) {
	t.Run("decrement floors at one", func(t *testing.T) {
		store := usecase.NewBasketStore(&fakeBasketGateway{}, discardLogger())

		assert.Equal(t, 1, store.PendingQuantity("p1"))
		store.DecrementQuantity("p1")
		store.DecrementQuantity("p1")
		store.DecrementQuantity("p1")
		assert.Equal(t, 1, store.PendingQuantity("p1"))
	})

	t.Run("counters are independent per product", func(t *testing.T) {
		store := usecase.NewBasketStore(&fakeBasketGateway{}, discardLogger())

		assert.Equal(t, 2, store.IncrementQuantity("p1"))
		assert.Equal(t, 3, store.IncrementQuantity("p1"))
		assert.Equal(t, 1, store.PendingQuantity("p2"))
	})
}

func TestBasketStoreMarkDiscountApplied(t *testing.T) {
	store := usecase.NewBasketStore(&fakeBasketGateway{}, discardLogger())

	require.False(t, store.Snapshot().DiscountApplied)
	store.MarkDiscountApplied()
	assert.True(t, store.Snapshot().DiscountApplied)
}
