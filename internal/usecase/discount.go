package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/gateway"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/pkg/errs"
)

var ErrEmptyDiscountCode = errs.New("discount code is empty")

type DiscountOutcome string

const (
	OutcomePending  DiscountOutcome = "pending"
	OutcomeApplied  DiscountOutcome = "applied"
	OutcomeRejected DiscountOutcome = "rejected"
)

// DiscountApplier submits discount codes against the basket. At most one
// attempt is live at a time: a new submission supersedes the previous one,
// whose late result is ignored when it eventually resolves.
type DiscountApplier interface {
	// Apply submits a code. Empty or whitespace-only codes are rejected
	// locally without a network call. A server error surfaces as a
	// transport-marked error alongside the rejected outcome.
	Apply(ctx context.Context, code string) (DiscountOutcome, error)

	// Outcome reports the latest known outcome.
	Outcome() DiscountOutcome
}

type discountApplierImpl struct {
	gw    gateway.BasketGateway
	store BasketStore
	log   *slog.Logger

	mu      sync.Mutex
	seq     uint64
	outcome DiscountOutcome
}

func NewDiscountApplier(gw gateway.BasketGateway, store BasketStore, log *slog.Logger) DiscountApplier {
	return &discountApplierImpl{gw: gw, store: store, log: log, outcome: OutcomePending}
}

func (d *discountApplierImpl) Apply(ctx context.Context, code string) (DiscountOutcome, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		d.mu.Lock()
		d.seq++ // an empty submission still supersedes any pending attempt
		d.outcome = OutcomeRejected
		d.mu.Unlock()
		return OutcomeRejected, errs.Mark(ErrEmptyDiscountCode, errs.ErrValidation)
	}

	d.mu.Lock()
	d.seq++
	seq := d.seq
	d.outcome = OutcomePending
	d.mu.Unlock()

	accepted, err := d.gw.SubmitDiscount(ctx, code)

	d.mu.Lock()
	defer d.mu.Unlock()
	if seq != d.seq {
		// A newer submission took over; this result no longer matters.
		d.log.Debug("dropping superseded discount result", "seq", seq, "latest", d.seq)
		return d.outcome, nil
	}
	if err != nil {
		d.outcome = OutcomeRejected
		return OutcomeRejected, err
	}
	if !accepted {
		d.outcome = OutcomeRejected
		return OutcomeRejected, nil
	}

	d.outcome = OutcomeApplied
	// Flag only; totals are re-derived on the next basket load.
	d.store.MarkDiscountApplied()
	return OutcomeApplied, nil
}

func (d *discountApplierImpl) Outcome() DiscountOutcome {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.outcome
}
