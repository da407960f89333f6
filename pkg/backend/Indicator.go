package backend

import (
	"github.com/kre8/kre8/pkg/events"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/kre8/kre8/pkg/metrics"
	"github.com/kre8/kre8/pkg/static"
	"go.uber.org/zap"
)

func NewGaugeIndicator() *GaugeIndicator {
	return &GaugeIndicator{}
}

func (g *GaugeIndicator) Set(mode string) {
	switch mode {
	case static.LOADING_OPEN:
		g.open.Store(true)
		metrics.LoadingIndicator.Set(1)
	case static.LOADING_CLOSE:
		g.open.Store(false)
		metrics.LoadingIndicator.Set(0)
	default:
		logger.Log.Warn("unknown loading indicator mode", zap.String("mode", mode))
	}
}

func (g *GaugeIndicator) IsOpen() bool {
	return g.open.Load()
}

// setLoading applies a START_LOADING_ICON mode. An "open" whose deployment already completed
// is dropped.
func (h *Handler) setLoading(event events.Event) {
	state := &h.loadingState

	state.lock.Lock()
	defer state.lock.Unlock()

	switch mode := event.Mode(); mode {
	case static.LOADING_OPEN:
		if state.owed > 0 {
			state.owed--
			logger.Log.Debug("dropping loading signal of a completed deployment", zap.Uint64("sequence", event.Sequence))
			return
		}

		state.opens++
		h.loading.Set(static.LOADING_OPEN)
	case static.LOADING_CLOSE:
		state.opens = 0

		if state.pending == 0 {
			h.loading.Set(static.LOADING_CLOSE)
		}
	default:
		h.loading.Set(mode)
	}
}

// beginDeployment opens the indicator for a deployment taken off the queue.
func (h *Handler) beginDeployment() {
	state := &h.loadingState

	state.lock.Lock()
	defer state.lock.Unlock()

	state.pending++
	h.loading.Set(static.LOADING_OPEN)
}

// finishDeployment consumes the "open" signal of the deployment, or records it as owed when
// it has not arrived yet, and closes the indicator once nothing is left in flight.
func (h *Handler) finishDeployment() {
	state := &h.loadingState

	state.lock.Lock()
	defer state.lock.Unlock()

	state.pending--

	if state.opens > 0 {
		state.opens--
	} else {
		state.owed++
	}

	h.settle()
}

// closeOnFailure closes the indicator after a failed request unless a deployment still needs it.
func (h *Handler) closeOnFailure() {
	state := &h.loadingState

	state.lock.Lock()
	defer state.lock.Unlock()

	h.settle()
}

// settle must be called with loadingState.lock held.
func (h *Handler) settle() {
	if h.loadingState.pending == 0 && h.loadingState.opens == 0 {
		h.loading.Set(static.LOADING_CLOSE)
	}
}
