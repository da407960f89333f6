package wss

import (
	"github.com/gorilla/websocket"
	"github.com/kre8/kre8/pkg/events"
	"sync"
	"time"
)

// Link joins a local bus to one websocket peer. Names in forward are written to the peer;
// every other inbound frame is delivered to the local bus.
type Link struct {
	ID            string
	conn          *websocket.Conn
	bus           *events.Bus
	forward       map[string]bool
	subscriptions []*events.Subscription
	pingInterval  time.Duration
	writeLock     sync.Mutex
	lock          sync.Mutex
	closeOnce     sync.Once
	done          chan struct{}
}

// Hub tracks the links served by one backend.
type Hub struct {
	links map[string]*Link
	lock  sync.RWMutex
}
