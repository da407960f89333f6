package events

import (
	"fmt"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/kre8/kre8/pkg/metrics"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrClosed = errors.New("event channel is closed")

func NewBus() *Bus {
	return &Bus{
		queues:    make(map[string]*queue),
		listeners: make(map[string][]*Subscription),
		sequences: make(map[string]uint64),
	}
}

// Send stamps the next sequence of name and enqueues the event in one critical section, so
// events of one name are queued in sequence order. Listeners run later on the dispatcher of
// that name.
func (b *Bus) Send(name string, payload interface{}) error {
	event, err := New(name, 0, payload)

	if err != nil {
		return err
	}

	b.lock.Lock()
	defer b.lock.Unlock()

	if b.closed {
		return ErrClosed
	}

	b.sequences[name]++
	event.Sequence = b.sequences[name]

	b.enqueue(event)
	metrics.EventsSent.Increment(name)

	return nil
}

// Deliver enqueues an already built event, keeping its sequence. Used by links that carry
// events from another process.
func (b *Bus) Deliver(event Event) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	if b.closed {
		return ErrClosed
	}

	b.enqueue(event)

	return nil
}

// enqueue must be called with b.lock held.
func (b *Bus) enqueue(event Event) {
	q, ok := b.queues[event.Name]

	if !ok {
		q = &queue{
			signal: make(chan struct{}, 1),
			done:   make(chan struct{}),
		}

		b.queues[event.Name] = q
		b.wg.Add(1)

		go b.dispatch(event.Name, q)
	}

	q.push(event)
}

func (b *Bus) On(name string, handler Handler) *Subscription {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.nextID++

	subscription := &Subscription{
		id:      b.nextID,
		name:    name,
		handler: handler,
		off:     b.remove,
	}

	b.listeners[name] = append(b.listeners[name], subscription)

	return subscription
}

func (b *Bus) Off(subscription *Subscription) {
	subscription.Unsubscribe()
}

// Listeners reports how many handlers are attached to name.
func (b *Bus) Listeners(name string) int {
	b.lock.Lock()
	defer b.lock.Unlock()

	return len(b.listeners[name])
}

// Close stops accepting events, lets every dispatcher drain its queue and waits for them.
func (b *Bus) Close() {
	b.lock.Lock()

	if b.closed {
		b.lock.Unlock()
		return
	}

	b.closed = true

	for _, q := range b.queues {
		close(q.done)
	}

	b.lock.Unlock()

	b.wg.Wait()
}

func (b *Bus) remove(subscription *Subscription) {
	b.lock.Lock()
	defer b.lock.Unlock()

	listeners := b.listeners[subscription.name]

	for i, s := range listeners {
		if s.id == subscription.id {
			b.listeners[subscription.name] = append(listeners[:i:i], listeners[i+1:]...)
			break
		}
	}

	if len(b.listeners[subscription.name]) == 0 {
		delete(b.listeners, subscription.name)
	}
}

func (b *Bus) snapshot(name string) []*Subscription {
	b.lock.Lock()
	defer b.lock.Unlock()

	listeners := make([]*Subscription, len(b.listeners[name]))
	copy(listeners, b.listeners[name])

	return listeners
}

func (b *Bus) dispatch(name string, q *queue) {
	defer b.wg.Done()

	for {
		select {
		case <-q.signal:
			b.drain(name, q)
		case <-q.done:
			b.drain(name, q)
			return
		}
	}
}

func (b *Bus) drain(name string, q *queue) {
	for _, event := range q.popAll() {
		for _, subscription := range b.snapshot(name) {
			call(subscription, event)
		}

		metrics.EventsDelivered.Increment(name)
	}
}

func call(subscription *Subscription, event Event) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("event listener panicked",
				zap.String("event", event.Name),
				zap.Uint64("sequence", event.Sequence),
				zap.String("panic", fmt.Sprintf("%v", r)),
			)
		}
	}()

	subscription.handler(event)
}

func (q *queue) push(event Event) {
	q.lock.Lock()
	q.pending = append(q.pending, event)
	q.lock.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *queue) popAll() []Event {
	q.lock.Lock()
	defer q.lock.Unlock()

	events := q.pending
	q.pending = nil

	return events
}
