package wss

import (
	"context"
	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"github.com/kre8/kre8/internal/helpers"
	"github.com/kre8/kre8/pkg/events"
	"github.com/kre8/kre8/pkg/logger"
	"go.uber.org/zap"
	"net/http"
	"time"
)

const EventsPath = "/events"

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Dial connects to the backend events endpoint, retrying with exponential backoff until
// timeout passes or ctx is cancelled.
func Dial(ctx context.Context, endpoint string, timeout time.Duration, bus *events.Bus, forward []string) (*Link, error) {
	target, err := helpers.EnforceWebsocket(endpoint, EventsPath)

	if err != nil {
		return nil, err
	}

	var conn *websocket.Conn

	operation := func() error {
		c, _, err := websocket.DefaultDialer.DialContext(ctx, target.String(), nil)

		if err != nil {
			logger.Log.Debug("backend not reachable yet", zap.String("url", target.String()), zap.Error(err))
			return err
		}

		conn = c
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = timeout

	err = backoff.Retry(operation, backoff.WithContext(policy, ctx))

	if err != nil {
		return nil, err
	}

	return NewLink(conn, bus, forward), nil
}

// Accept upgrades an HTTP request into a link.
func Accept(w http.ResponseWriter, r *http.Request, bus *events.Bus, forward []string) (*Link, error) {
	conn, err := Upgrader.Upgrade(w, r, nil)

	if err != nil {
		return nil, err
	}

	return NewLink(conn, bus, forward), nil
}
