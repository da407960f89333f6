package wss

import (
	"context"
	"github.com/gorilla/websocket"
	"github.com/kre8/kre8/pkg/events"
	"github.com/kre8/kre8/pkg/static"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newBackend(t *testing.T, forward []string) (*httptest.Server, *events.Bus, *Hub) {
	bus := events.NewBus()
	hub := NewHub()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		link, err := Accept(w, r, bus, forward)

		if err != nil {
			return
		}

		hub.Add(link)
		defer hub.Remove(link)

		link.Run(context.Background())
	}))

	t.Cleanup(func() {
		hub.CloseAll()
		server.Close()
		bus.Close()
	})

	return server, bus, hub
}

func receive(t *testing.T, ch chan events.Event) events.Event {
	select {
	case event := <-ch:
		return event
	case <-time.After(5 * time.Second):
		t.Fatal("event not received")
	}

	return events.Event{}
}

func TestLinkBothDirections(t *testing.T) {
	server, backendBus, hub := newBackend(t, []string{static.HANDLE_NEW_POD})

	created := make(chan events.Event, 2)
	backendBus.On(static.CREATE_POD, func(event events.Event) {
		created <- event
	})

	clientBus := events.NewBus()
	defer clientBus.Close()

	handled := make(chan events.Event, 1)
	clientBus.On(static.HANDLE_NEW_POD, func(event events.Event) {
		handled <- event
	})

	link, err := Dial(context.Background(), server.URL, 5*time.Second, clientBus, []string{static.CREATE_POD})
	require.NoError(t, err)

	result := link.Start(context.Background())

	require.NoError(t, clientBus.Send(static.CREATE_POD, map[string]string{"podName": "web"}))
	require.NoError(t, clientBus.Send(static.CREATE_POD, map[string]string{"podName": "api"}))

	first := receive(t, created)
	second := receive(t, created)

	assert.Equal(t, uint64(1), first.Sequence)
	assert.Equal(t, uint64(2), second.Sequence)
	assert.JSONEq(t, `{"podName":"web"}`, string(first.Data))

	assert.Eventually(t, func() bool {
		return hub.Count() == 1 && backendBus.Listeners(static.HANDLE_NEW_POD) == 1
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, backendBus.Send(static.HANDLE_NEW_POD, map[string]string{"status": "created"}))
	assert.Equal(t, static.HANDLE_NEW_POD, receive(t, handled).Name)

	link.Close()

	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("link did not stop")
	}

	assert.Equal(t, 0, clientBus.Listeners(static.CREATE_POD))
	assert.Eventually(t, func() bool {
		return hub.Count() == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestLinkDropsEchoAndMalformedFrames(t *testing.T) {
	server, backendBus, _ := newBackend(t, []string{static.HANDLE_NEW_POD})

	received := make(chan events.Event, 3)
	backendBus.On(static.HANDLE_NEW_POD, func(event events.Event) {
		received <- event
	})
	backendBus.On(static.CREATE_SERVICE, func(event events.Event) {
		received <- event
	})

	url := "ws" + strings.TrimPrefix(server.URL, "http") + EventsPath

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	echo, err := events.New(static.HANDLE_NEW_POD, 1, nil)
	require.NoError(t, err)
	echoBytes, err := echo.ToJson()
	require.NoError(t, err)

	valid, err := events.New(static.CREATE_SERVICE, 9, map[string]string{"serviceName": "front"})
	require.NoError(t, err)
	validBytes, err := valid.ToJson()
	require.NoError(t, err)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, echoBytes))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, validBytes))

	event := receive(t, received)
	assert.Equal(t, static.CREATE_SERVICE, event.Name)
	assert.Equal(t, uint64(9), event.Sequence)

	select {
	case extra := <-received:
		t.Fatalf("unexpected event %s", extra.Name)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDialGivesUp(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()

	_, err := Dial(context.Background(), "ws://127.0.0.1:1/events", 200*time.Millisecond, bus, nil)
	assert.Error(t, err)

	_, err = Dial(context.Background(), "ftp://127.0.0.1:1", time.Second, bus, nil)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Dial(ctx, "ws://127.0.0.1:1/events", time.Minute, bus, nil)
	assert.Error(t, err)
}
