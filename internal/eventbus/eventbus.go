// Package eventbus provides an in-memory publish-subscribe bus for domain events.
package eventbus

import (
	"context"
	"log/slog"
	"sync"
)

// Handler receives published events.
type Handler[T any] func(ctx context.Context, event T)

// Bus delivers events of one type to every subscriber, in subscription order, on the publishing goroutine.
type Bus[T any] struct {
	name   string
	logger *slog.Logger

	mu       sync.RWMutex
	nextID   uint64
	handlers map[uint64]Handler[T]
	order    []uint64
}

func New[T any](name string, logger *slog.Logger) *Bus[T] {
	if logger == nil {
		logger = slog.Default()
	}

	return &Bus[T]{
		name:     name,
		logger:   logger,
		handlers: make(map[uint64]Handler[T]),
	}
}

// Subscribe registers h and returns a function that removes it.
func (b *Bus[T]) Subscribe(h Handler[T]) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[id] = h
	b.order = append(b.order, id)

	var once sync.Once

	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus[T]) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.handlers, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)

			break
		}
	}
}

// Publish calls each handler in turn. A panicking handler is logged and skipped.
func (b *Bus[T]) Publish(ctx context.Context, event T) {
	b.mu.RLock()
	handlers := make([]Handler[T], 0, len(b.order))
	for _, id := range b.order {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		b.deliver(ctx, h, event)
	}
}

func (b *Bus[T]) deliver(ctx context.Context, h Handler[T], event T) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.ErrorContext(ctx, "event handler panicked",
				slog.String("bus", b.name),
				slog.Any("panic", r),
			)
		}
	}()

	h(ctx, event)
}

// HandlerCount returns the number of active subscribers.
func (b *Bus[T]) HandlerCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.handlers)
}
