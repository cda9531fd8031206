// Package push defines the push-channel contract: a server-initiated stream
// of comment-count events. Transports deliver at-least-once with no ordering
// guarantee, so consumers must reconcile rather than assume freshness.
package push

import "context"

// CountEvent is published by the comment service whenever a product's
// comment count changes.
type CountEvent struct {
	ProductID string `json:"productId"`
	Count     int    `json:"count"`
}

// Handler processes one delivered event. It must not block: transports call
// it inline from their receive loop.
type Handler func(ctx context.Context, ev CountEvent)

// Source is a push-channel transport. Start is idempotent; the connection it
// opens is shared process-wide and lives until ctx is cancelled. There is no
// per-view teardown.
type Source interface {
	Start(ctx context.Context, h Handler) error
}
