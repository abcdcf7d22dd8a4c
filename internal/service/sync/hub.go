package sync

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Notice tells a subscriber that some row of Table changed for them. It
// carries no row data: the subscriber refetches the full snapshot.
type Notice struct {
	Table string `json:"table"`
}

// Subscription is one subscriber's feed of change notices.
type Subscription struct {
	// C delivers at most one pending notice. A burst of changes while the
	// subscriber is busy collapses into a single notice, which is enough
	// because every notice triggers the same full refetch.
	C <-chan Notice

	userID uuid.UUID
	ch     chan Notice
}

// Hub fans change notices out to per-user subscribers.
type Hub struct {
	log *slog.Logger

	mu   sync.RWMutex
	subs map[uuid.UUID]map[*Subscription]struct{}
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		log:  logger.With("service", "sync_hub"),
		subs: make(map[uuid.UUID]map[*Subscription]struct{}),
	}
}

// Subscribe registers a new subscriber for the user's change notices.
// The caller must Unsubscribe when done.
func (h *Hub) Subscribe(userID uuid.UUID) *Subscription {
	ch := make(chan Notice, 1)
	sub := &Subscription{C: ch, userID: userID, ch: ch}

	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[*Subscription]struct{})
	}
	h.subs[userID][sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

// Unsubscribe removes a subscriber. Safe to call more than once.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.subs[sub.userID]
	if set == nil {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(h.subs, sub.userID)
	}
}

// Publish delivers a notice to every subscriber of the user. Delivery never
// blocks: a subscriber with a notice already pending keeps just that one,
// so any burst of events coalesces into a single refetch per subscriber.
func (h *Hub) Publish(userID uuid.UUID, table string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[userID] {
		select {
		case sub.ch <- Notice{Table: table}:
		default:
		}
	}
}

// SubscriberCount reports how many subscriptions the user currently holds.
func (h *Hub) SubscriberCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[userID])
}
