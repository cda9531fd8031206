package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/domain/comment"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/gateway"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/gateway/push"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/pkg/errs"
)

// LiveCommentChannel presents one authoritative, monotonic comment count per
// product, fed by an initial REST seed and a continuous push subscription.
// The displayed value never regresses: every incoming count is merged with
// max(current, incoming), which also absorbs out-of-order and duplicate
// deliveries from the at-least-once channel.
type LiveCommentChannel interface {
	// Start connects the shared push channel. Idempotent; the connection
	// lives for the rest of the process, one connection serves all product
	// subscriptions.
	Start(ctx context.Context) error

	// Subscribe returns a live counter stream scoped to the caller's view.
	// Until a product's counter has been seeded successfully, each new
	// subscription fetches the server's count; once seeded, subscribers
	// reuse it. Callers unsubscribe on view teardown; that detaches the
	// stream, never the connection.
	Subscribe(ctx context.Context, productID string) (*CounterSubscription, error)

	// CommentsByProduct fetches the full comment list for initial render.
	// It is independent of the live counter and not reconciled against it.
	CommentsByProduct(ctx context.Context, productID string) ([]comment.UserComment, error)

	// AddComment submits a comment. The counter is not bumped locally; the
	// push event for the new comment is the only thing that moves it.
	// Field validation is the caller's precondition (comment.New).
	AddComment(ctx context.Context, c comment.UserComment) error
}

// CounterSubscription delivers reconciled counter values with a
// latest-value-wins policy: a slow reader only ever misses intermediate
// values, never the newest one.
type CounterSubscription struct {
	ch     chan int
	cancel func()
	once   sync.Once
}

// Updates yields the current value on subscription and every raised value
// afterwards.
func (s *CounterSubscription) Updates() <-chan int {
	return s.ch
}

func (s *CounterSubscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

func (s *CounterSubscription) deliver(v int) {
	for {
		select {
		case s.ch <- v:
			return
		default:
			// Drop the stale buffered value and retry.
			select {
			case <-s.ch:
			default:
			}
		}
	}
}

type liveCommentChannelImpl struct {
	gw  gateway.CommentGateway
	src push.Source
	log *slog.Logger

	mu       sync.Mutex
	started  bool
	counters map[string]int
	seeded   map[string]bool
	subs     map[string]map[*CounterSubscription]struct{}
}

func NewLiveCommentChannel(gw gateway.CommentGateway, src push.Source, log *slog.Logger) LiveCommentChannel {
	return &liveCommentChannelImpl{
		gw:       gw,
		src:      src,
		log:      log,
		counters: make(map[string]int),
		seeded:   make(map[string]bool),
		subs:     make(map[string]map[*CounterSubscription]struct{}),
	}
}

func (l *liveCommentChannelImpl) Start(ctx context.Context) error {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return nil
	}
	l.started = true
	l.mu.Unlock()

	// The source may begin delivering before Start returns, so the handler
	// must not be called under l.mu.
	if err := l.src.Start(ctx, l.handleEvent); err != nil {
		l.mu.Lock()
		l.started = false
		l.mu.Unlock()
		return errs.Mark(errs.Wrap(err, "connect push channel"), errs.ErrTransport)
	}
	return nil
}

func (l *liveCommentChannelImpl) handleEvent(_ context.Context, ev push.CountEvent) {
	l.reconcile(ev.ProductID, ev.Count)
}

// reconcile merges an incoming authoritative count. Only a raise is applied
// and fanned out; stale counts leave the displayed value untouched.
func (l *liveCommentChannelImpl) reconcile(productID string, incoming int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	current := l.counters[productID]
	if incoming <= current {
		return
	}
	l.counters[productID] = incoming
	for sub := range l.subs[productID] {
		sub.deliver(incoming)
	}
}

func (l *liveCommentChannelImpl) Subscribe(ctx context.Context, productID string) (*CounterSubscription, error) {
	sub := &CounterSubscription{ch: make(chan int, 1)}
	sub.cancel = func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.subs[productID], sub)
	}

	l.mu.Lock()
	// Seeding is keyed on completion, not on subscriber presence: until a
	// seed fetch has succeeded, every new subscription fetches its own.
	needSeed := !l.seeded[productID]
	if l.subs[productID] == nil {
		l.subs[productID] = make(map[*CounterSubscription]struct{})
	}
	l.subs[productID][sub] = struct{}{}
	l.mu.Unlock()

	if needSeed {
		count, err := l.gw.FetchCommentCount(ctx, productID)
		if err != nil {
			sub.Unsubscribe()
			return nil, errs.Wrap(err, "seed comment counter")
		}
		l.mu.Lock()
		l.seeded[productID] = true
		l.mu.Unlock()
		// max-merged like any push event: a count that raced in over the
		// channel while we were fetching wins if it is newer.
		l.reconcile(productID, count)
	}

	// Delivered under the lock so the initial value is totally ordered with
	// concurrent reconciles; deliver on the 1-buffered channel never blocks.
	l.mu.Lock()
	sub.deliver(l.counters[productID])
	l.mu.Unlock()

	return sub, nil
}

func (l *liveCommentChannelImpl) CommentsByProduct(ctx context.Context, productID string) ([]comment.UserComment, error) {
	return l.gw.FetchComments(ctx, productID)
}

func (l *liveCommentChannelImpl) AddComment(ctx context.Context, c comment.UserComment) error {
	return l.gw.SubmitComment(ctx, c)
}
