package backend

import (
	"context"
	"fmt"
	"github.com/kre8/kre8/pkg/events"
	"github.com/kre8/kre8/pkg/kinds"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/kre8/kre8/pkg/metrics"
	"github.com/kre8/kre8/pkg/provisioner"
	"github.com/kre8/kre8/pkg/static"
	"github.com/kre8/kre8/pkg/store"
	"github.com/kre8/kre8/pkg/validation"
	"go.uber.org/zap"
	"path/filepath"
	"time"
)

const queueSize = 64

// Inbound lists the events the backend consumes; Outbound the ones it produces.
var (
	Inbound = []string{
		static.CREATE_POD,
		static.CREATE_DEPLOYMENT,
		static.CREATE_SERVICE,
		static.START_LOADING_ICON,
		static.SHOW_KUBE_DOCS_POD,
		static.SHOW_KUBE_DOCS_DEPLOYMENT,
		static.SHOW_KUBE_DOCS_SERVICE,
	}
	Outbound = []string{
		static.HANDLE_NEW_POD,
		static.HANDLE_NEW_DEPLOYMENT,
		static.HANDLE_NEW_SERVICE,
	}
)

func WithLoadingIndicator(loading LoadingIndicator) Option {
	return func(h *Handler) {
		h.loading = loading
	}
}

func WithDocsOpener(docs DocsOpener) Option {
	return func(h *Handler) {
		h.docs = docs
	}
}

func WithNamespace(namespace string) Option {
	return func(h *Handler) {
		h.namespace = namespace
	}
}

func New(channel events.Channel, directory Directory, ledger store.Ledger, applier provisioner.Applier, opts ...Option) *Handler {
	handler := &Handler{
		channel:   channel,
		directory: directory,
		ledger:    ledger,
		applier:   applier,
		engine:    validation.New(),
		loading:   NewGaugeIndicator(),
		docs:      LogOpener{},
		namespace: static.DEFAULT_NAMESPACE,
		requests:  make(chan events.Event, queueSize),
	}

	for _, opt := range opts {
		opt(handler)
	}

	return handler
}

// Start subscribes to the inbound events and runs the single provisioning worker.
func (h *Handler) Start(ctx context.Context) {
	h.lock.Lock()
	defer h.lock.Unlock()

	if h.started {
		return
	}

	ctx, h.cancel = context.WithCancel(ctx)

	for _, kind := range kinds.All {
		h.subscriptions = append(h.subscriptions,
			h.channel.On(kind.CreateEvent(), h.enqueue(ctx)),
			h.channel.On(kind.DocsEvent(), h.showDocs),
		)
	}

	h.subscriptions = append(h.subscriptions, h.channel.On(static.START_LOADING_ICON, h.setLoading))

	h.wg.Add(1)
	go h.work(ctx)

	h.started = true
}

// Stop detaches the listeners and waits for the request in flight. Queued requests are dropped.
func (h *Handler) Stop() {
	h.lock.Lock()

	if !h.started {
		h.lock.Unlock()
		return
	}

	subscriptions := h.subscriptions
	h.subscriptions = nil
	h.started = false
	h.cancel()
	h.lock.Unlock()

	for _, subscription := range subscriptions {
		h.channel.Off(subscription)
	}

	h.wg.Wait()
}

func (h *Handler) Loading() LoadingIndicator {
	return h.loading
}

func (h *Handler) enqueue(ctx context.Context) events.Handler {
	return func(event events.Event) {
		select {
		case h.requests <- event:
		case <-ctx.Done():
		}
	}
}

func (h *Handler) work(ctx context.Context) {
	defer h.wg.Done()

	for {
		select {
		case event := <-h.requests:
			_, err := h.Provision(ctx, event)

			if err != nil {
				logger.Log.Error("provisioning failed", zap.String("event", event.Name), zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}

// Provision handles one creation event and sends the completion event on success. On failure
// the loading indicator is closed unless another deployment still needs it, and no completion
// event is sent.
func (h *Handler) Provision(ctx context.Context, event events.Event) (*Response, error) {
	kind, ok := kinds.FromEvent(event.Name)

	if !ok || event.Name != kind.CreateEvent() {
		return nil, fmt.Errorf("%s is not a creation event", event.Name)
	}

	start := time.Now()
	defer func() {
		metrics.ProvisionDuration.Observe(time.Since(start).Seconds(), kind.String())
	}()

	if kind == kinds.Deployment {
		h.beginDeployment()
	}

	response, err := h.provision(ctx, kind, event)

	if kind == kinds.Deployment {
		h.finishDeployment()
	}

	if err != nil {
		metrics.Provisioned.Increment(kind.String(), "failed")
		h.closeOnFailure()

		return nil, err
	}

	metrics.Provisioned.Increment(kind.String(), outcome(response))

	err = h.channel.Send(kind.HandleEvent(), response)

	if err != nil {
		return nil, err
	}

	logger.Log.Info(response.Message, zap.String("key", response.Key))

	return response, nil
}

func (h *Handler) provision(ctx context.Context, kind kinds.Kind, event events.Event) (*Response, error) {
	dir, err := h.directory.EnsureDirectory(filepath.Join(static.ROOTDIR, static.MANIFESTDIR))

	if err != nil {
		return nil, err
	}

	payload, err := h.engine.NewPayload(kind)

	if err != nil {
		return nil, err
	}

	err = event.Decode(payload)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", static.RESPONSE_INVALID, err)
	}

	if fieldErrors := h.engine.Check(payload); fieldErrors != nil {
		return nil, fmt.Errorf("%s: %w", static.RESPONSE_INVALID, fieldErrors)
	}

	response := &Response{
		Kind: kind,
		Name: payload.GetName(),
		Key:  fmt.Sprintf("%s/%s", kind, payload.GetName()),
	}

	recorded, err := h.ledger.CheckOrCreate(response.Key, payload)

	if err != nil {
		return nil, err
	}

	if recorded {
		response.Recorded = true
		response.Message = static.RESPONSE_EXISTS

		return response, nil
	}

	manifest, err := provisioner.Render(payload, h.namespace)

	if err != nil {
		return nil, err
	}

	response.Manifest, err = provisioner.Save(manifest, dir)

	if err != nil {
		return nil, err
	}

	response.Result, err = h.applier.Apply(ctx, manifest)

	if err != nil {
		return nil, err
	}

	if response.Result.DryRun {
		response.Message = static.RESPONSE_DRY_RUN

		return response, nil
	}

	_, err = h.ledger.AppendFacts(map[string]interface{}{response.Key: payload})

	if err != nil {
		return nil, err
	}

	response.Recorded = true
	response.Message = static.RESPONSE_CREATED

	return response, nil
}

func (h *Handler) showDocs(event events.Event) {
	kind, ok := kinds.FromEvent(event.Name)

	if !ok {
		return
	}

	err := h.docs.Open(kind.DocsURL())

	if err != nil {
		logger.Log.Error("failed to open documentation", zap.String("url", kind.DocsURL()), zap.Error(err))
	}
}

func outcome(response *Response) string {
	switch response.Message {
	case static.RESPONSE_EXISTS:
		return "exists"
	case static.RESPONSE_DRY_RUN:
		return "dry-run"
	default:
		return "created"
	}
}
