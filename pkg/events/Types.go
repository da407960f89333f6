package events

import (
	"encoding/json"
	"sync"
)

// Event is one message on the channel. Sequence increases per event name on the sending
// side; it is not a correlation id and nothing acknowledges it.
type Event struct {
	Name     string          `json:"name"`
	Sequence uint64          `json:"sequence"`
	Data     json.RawMessage `json:"data,omitempty"`
}

type Handler func(event Event)

// Channel is the addressed, fire-and-forget message facility between the form controller
// and the backend. Send never blocks on slow listeners.
type Channel interface {
	Send(name string, payload interface{}) error
	On(name string, handler Handler) *Subscription
	Off(subscription *Subscription)
}

type Subscription struct {
	id      uint64
	name    string
	handler Handler
	off     func(*Subscription)
	once    sync.Once
}

type Bus struct {
	lock      sync.Mutex
	queues    map[string]*queue
	listeners map[string][]*Subscription
	sequences map[string]uint64
	nextID    uint64
	closed    bool
	wg        sync.WaitGroup
}

type queue struct {
	lock    sync.Mutex
	pending []Event
	signal  chan struct{}
	done    chan struct{}
}

type Sent struct {
	Name    string
	Payload interface{}
}

// Recorder is a synchronous Channel: sends are recorded in call order and Emit runs
// listeners on the calling goroutine.
type Recorder struct {
	lock      sync.Mutex
	sent      []Sent
	listeners map[string][]*Subscription
	nextID    uint64
}
