// Package pubsub implements the subscribe/notify contract used to push alarm
// snapshots and ring events to presentation layers.
package pubsub

import (
	"context"
	"sync"
)

// DefaultBuffer is the channel capacity of every subscription.
const DefaultBuffer = 8

// Hub fans published values out to subscribers. A subscriber that cannot keep
// up is dropped and its channel closed; it has to subscribe again.
type Hub[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan T
	last   *T
	retain bool
}

// NewHub creates an empty hub that replays the latest value to new subscribers.
func NewHub[T any]() *Hub[T] {
	return &Hub[T]{
		subs:   make(map[int]chan T),
		retain: true,
	}
}

// NewFeed creates an empty hub that only delivers values published after subscription.
func NewFeed[T any]() *Hub[T] {
	return &Hub[T]{
		subs: make(map[int]chan T),
	}
}

// Subscribe registers a subscriber until ctx is done. The latest published
// value, if any, is delivered first.
func (h *Hub[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, DefaultBuffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	if h.last != nil {
		ch <- *h.last
	}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.drop(id)
	}()

	return ch
}

// Publish delivers v to every subscriber without blocking.
func (h *Hub[T]) Publish(v T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.retain {
		h.last = &v
	}

	for id, ch := range h.subs {
		select {
		case ch <- v:
		default:
			delete(h.subs, id)
			close(ch)
		}
	}
}

// Len returns the number of live subscribers.
func (h *Hub[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs)
}

func (h *Hub[T]) drop(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}
