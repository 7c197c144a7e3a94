// ABOUTME: Typed event bus that also retains the most recent event
// ABOUTME: Carries viewport resize notifications to open overlays; unsubscribe is idempotent

package eventbus

import "sync"

// Handler is a callback function for events.
type Handler[T any] func(T)

// Bus is a typed event bus that delivers events to registered handlers and
// remembers the last published value, so late subscribers can read the
// current state without waiting for the next event.
type Bus[T any] struct {
	mu       sync.RWMutex
	handlers map[int]Handler[T]
	nextID   int
	last     T
	hasLast  bool
}

// New creates a new event bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{
		handlers: make(map[int]Handler[T]),
	}
}

// Subscribe registers a handler and returns an unsubscribe function.
// Calling the unsubscribe function more than once is a no-op.
func (b *Bus[T]) Subscribe(handler Handler[T]) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}
}

// Publish records event as the latest value and sends it to all registered
// handlers. Handlers are called synchronously in arbitrary order, outside the
// lock, so a handler may unsubscribe itself.
func (b *Bus[T]) Publish(event T) {
	b.mu.Lock()
	b.last = event
	b.hasLast = true
	snapshot := make([]Handler[T], 0, len(b.handlers))
	for _, h := range b.handlers {
		snapshot = append(snapshot, h)
	}
	b.mu.Unlock()

	for _, h := range snapshot {
		h(event)
	}
}

// Last returns the most recently published event.
func (b *Bus[T]) Last() (T, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.last, b.hasLast
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}
