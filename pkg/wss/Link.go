package wss

import (
	"context"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/kre8/kre8/pkg/events"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/kre8/kre8/pkg/metrics"
	"go.uber.org/zap"
	"time"
)

const (
	DirectionOut = "out"
	DirectionIn  = "in"
)

const (
	DefaultPingInterval = 30 * time.Second
	writeWait           = 10 * time.Second
)

func NewLink(conn *websocket.Conn, bus *events.Bus, forward []string) *Link {
	names := make(map[string]bool, len(forward))

	for _, name := range forward {
		names[name] = true
	}

	return &Link{
		ID:           uuid.New().String(),
		conn:         conn,
		bus:          bus,
		forward:      names,
		pingInterval: DefaultPingInterval,
		done:         make(chan struct{}),
	}
}

// Run pumps events both ways until the peer disconnects or ctx is cancelled.
func (l *Link) Run(ctx context.Context) error {
	return <-l.Start(ctx)
}

// Start attaches the forwarding listeners before returning, so events sent afterwards reach
// the peer, and pumps in the background. The channel yields the result once the link closes.
func (l *Link) Start(ctx context.Context) <-chan error {
	l.lock.Lock()
	for name := range l.forward {
		l.subscriptions = append(l.subscriptions, l.bus.On(name, l.write))
	}
	l.lock.Unlock()

	result := make(chan error, 1)

	go func() {
		result <- l.pump(ctx)
	}()

	return result
}

func (l *Link) pump(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer l.Close()

	go func() {
		select {
		case <-ctx.Done():
			l.Close()
		case <-l.done:
		}
	}()

	go l.ping(ctx)

	pongWait := 2 * l.pingInterval

	l.conn.SetReadDeadline(time.Now().Add(pongWait))
	l.conn.SetPongHandler(func(string) error {
		return l.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	logger.Log.Info("event link established", zap.String("link", l.ID))

	for {
		_, message, err := l.conn.ReadMessage()

		if err != nil {
			select {
			case <-l.done:
				return nil
			default:
			}

			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Log.Info("event link closed by peer", zap.String("link", l.ID))
				return nil
			}

			return err
		}

		// Any frame proves the peer is alive.
		l.conn.SetReadDeadline(time.Now().Add(pongWait))

		event, err := events.FromJson(message)

		if err != nil {
			logger.Log.Warn("dropping malformed frame", zap.String("link", l.ID), zap.Error(err))
			continue
		}

		if l.forward[event.Name] {
			logger.Log.Warn("dropping echoed event", zap.String("link", l.ID), zap.String("event", event.Name))
			continue
		}

		metrics.EventsForwarded.Increment(event.Name, DirectionIn)

		err = l.bus.Deliver(event)

		if err != nil {
			return err
		}
	}
}

func (l *Link) Close() {
	l.closeOnce.Do(func() {
		l.lock.Lock()
		subscriptions := l.subscriptions
		l.subscriptions = nil
		l.lock.Unlock()

		for _, subscription := range subscriptions {
			l.bus.Off(subscription)
		}

		l.writeLock.Lock()
		l.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
		l.writeLock.Unlock()

		l.conn.Close()
		close(l.done)

		logger.Log.Info("event link closed", zap.String("link", l.ID))
	})
}

func (l *Link) Done() <-chan struct{} {
	return l.done
}

// write runs on the bus dispatcher of event.Name, which keeps frames of one name in order.
func (l *Link) write(event events.Event) {
	bytes, err := event.ToJson()

	if err != nil {
		logger.Log.Error("failed to serialize event", zap.String("event", event.Name), zap.Error(err))
		return
	}

	l.writeLock.Lock()
	l.conn.SetWriteDeadline(time.Now().Add(writeWait))
	err = l.conn.WriteMessage(websocket.TextMessage, bytes)
	l.writeLock.Unlock()

	if err != nil {
		if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
			logger.Log.Warn("event link write error", zap.String("link", l.ID), zap.Error(err))
		}

		return
	}

	metrics.EventsForwarded.Increment(event.Name, DirectionOut)
}

func (l *Link) ping(ctx context.Context) {
	ticker := time.NewTicker(l.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.writeLock.Lock()
			err := l.conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeWait))
			l.writeLock.Unlock()

			if err != nil {
				logger.Log.Warn("failed to send ping", zap.String("link", l.ID), zap.Error(err))
				l.Close()
				return
			}
		case <-ctx.Done():
			return
		case <-l.done:
			return
		}
	}
}
