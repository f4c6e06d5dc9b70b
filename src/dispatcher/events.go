package dispatcher

import (
	"sync"
	"sync/atomic"

	"elevdispatch/src/types"
)

// broadcaster fans car events out to subscribers. Publishing never blocks:
// a full subscriber buffer drops the event and bumps the dropped counter.
type broadcaster struct {
	mu      sync.Mutex
	subs    map[int]chan types.Event
	nextID  int
	closed  bool
	dropped atomic.Uint64
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[int]chan types.Event)}
}

func (b *broadcaster) publish(e types.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
			b.dropped.Add(1)
		}
	}
}

func (b *broadcaster) subscribe(buffer int) (<-chan types.Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan types.Event, buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
}

func (b *broadcaster) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
