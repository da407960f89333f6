package backend

import (
	"context"
	"github.com/kre8/kre8/pkg/events"
	"github.com/kre8/kre8/pkg/kinds"
	"github.com/kre8/kre8/pkg/provisioner"
	"github.com/kre8/kre8/pkg/store"
	"github.com/kre8/kre8/pkg/validation"
	"sync"
	"sync/atomic"
)

type Directory interface {
	EnsureDirectory(name string) (string, error)
}

// LoadingIndicator follows START_LOADING_ICON modes.
type LoadingIndicator interface {
	Set(mode string)
	IsOpen() bool
}

type DocsOpener interface {
	Open(url string) error
}

type Handler struct {
	channel       events.Channel
	directory     Directory
	ledger        store.Ledger
	applier       provisioner.Applier
	engine        *validation.Engine
	loading       LoadingIndicator
	docs          DocsOpener
	namespace     string
	requests      chan events.Event
	subscriptions []*events.Subscription
	cancel        context.CancelFunc
	started       bool
	wg            sync.WaitGroup
	lock          sync.Mutex
	loadingState  loadingState
}

// loadingState pairs deployment completions with the START_LOADING_ICON "open" signals that
// may arrive before or after them, since events of different names are not ordered.
type loadingState struct {
	lock    sync.Mutex
	pending int
	opens   int
	owed    int
}

type Option func(h *Handler)

// Response is the payload of HANDLE_NEW_* events.
type Response struct {
	Kind     kinds.Kind          `json:"kind"`
	Name     string              `json:"name"`
	Key      string              `json:"key"`
	Message  string              `json:"message"`
	Recorded bool                `json:"recorded"`
	Manifest string              `json:"manifest,omitempty"`
	Result   *provisioner.Result `json:"result,omitempty"`
}

type GaugeIndicator struct {
	open atomic.Bool
}

type LogOpener struct{}

type Browser struct {
	command string
}
