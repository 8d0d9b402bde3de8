package event

import (
	"reflect"
	"sync"
)

// Bus carries round-lifecycle notifications between the simulation and
// its observers (log subscribers, the round repository). It is double
// buffered: events published during tick N are held in the back buffer
// and delivered at the start of tick N+1, so a handler never runs in the
// middle of the update that produced the event.
type Bus struct {
	mu       sync.Mutex // guards handler registration only
	front    map[reflect.Type][]any
	back     map[reflect.Type][]any
	handlers map[reflect.Type][]any
}

func NewBus() *Bus {
	return &Bus{
		front:    make(map[reflect.Type][]any),
		back:     make(map[reflect.Type][]any),
		handlers: make(map[reflect.Type][]any),
	}
}

// Publish queues ev for delivery next tick. Called only from the
// simulation goroutine, so the back buffer needs no locking.
func Publish[T any](b *Bus, ev T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.back[t] = append(b.back[t], ev)
}

// Subscribe registers fn for every published T. Subscriptions are made
// once during host setup and live for the match session; there is no
// unsubscribe.
func Subscribe[T any](b *Bus, fn func(T)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], fn)
}

// SwapBuffers rotates back to front and clears the new back buffer.
// Called once at tick start, before DispatchAll.
func (b *Bus) SwapBuffers() {
	b.front, b.back = b.back, b.front
	for k := range b.back {
		b.back[k] = b.back[k][:0]
	}
}

// DispatchAll delivers every front-buffer event to its handlers. A
// handler that publishes in response feeds the back buffer and runs the
// following tick.
func (b *Bus) DispatchAll() {
	for t, events := range b.front {
		for _, ev := range events {
			b.dispatch(t, ev)
		}
	}
}

func (b *Bus) dispatch(t reflect.Type, ev any) {
	args := []reflect.Value{reflect.ValueOf(ev)}
	for _, h := range b.handlers[t] {
		// Subscribe and Publish key on the same type, so the call
		// signature always matches.
		reflect.ValueOf(h).Call(args)
	}
}
