package form

import (
	"fmt"
	"github.com/kre8/kre8/pkg/drafts"
	"github.com/kre8/kre8/pkg/events"
	"github.com/kre8/kre8/pkg/kinds"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/kre8/kre8/pkg/static"
	"github.com/kre8/kre8/pkg/validation"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"strings"
)

var ErrNoForm = errors.New("no form is selected")

var infoText = map[kinds.Kind]string{
	kinds.Pod:        "Pods, hosts to containers via images, are the smallest deployable units of computing that can be created in Kubernetes. A pod's contents are always co-located and co-scheduled, and run in a shared context. Rather than deploying a single pod (which is not rescheduled in the event of a failure), Kubernetes recommends launching a Replica Set via a Deployment.",
	kinds.Deployment: "A Deployment is a controller that maintains the number of Pod replicas the user declares.",
	kinds.Service:    "A Service is an abstraction which defines a set of Pods and a policy by which to access them.",
}

func New(channel events.Channel, navigator Navigator) *Controller {
	return &Controller{
		channel:   channel,
		navigator: navigator,
		engine:    validation.New(),
		input:     drafts.New(),
		errors: map[kinds.Kind]validation.FieldErrors{
			kinds.Pod:        {},
			kinds.Deployment: {},
			kinds.Service:    {},
		},
	}
}

// Start attaches the completion listeners for every kind. Calling it twice is a no-op.
func (c *Controller) Start() {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.started {
		return
	}

	for _, kind := range kinds.All {
		c.subscriptions = append(c.subscriptions, c.channel.On(kind.HandleEvent(), c.handleNew))
	}

	c.started = true
}

// Stop detaches every listener attached by Start exactly once.
func (c *Controller) Stop() {
	c.lock.Lock()
	subscriptions := c.subscriptions
	c.subscriptions = nil
	c.started = false
	c.lock.Unlock()

	for _, subscription := range subscriptions {
		c.channel.Off(subscription)
	}
}

func (c *Controller) OnFieldChange(kind kinds.Kind, field string, value string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.input.Set(kind, field, value)
}

// OnInputChange accepts a renderer input id of the form <kind>_<field>.
func (c *Controller) OnInputChange(id string, value string) error {
	parts := strings.SplitN(id, "_", 2)

	if len(parts) != 2 {
		return fmt.Errorf("input id %s is not <kind>_<field>", id)
	}

	return c.OnFieldChange(kinds.Kind(parts[0]), parts[1], value)
}

// OnSubmit validates the draft of kind. On success the errors of kind are cleared and the
// creation event is sent; on failure the errors are replaced and the draft is kept.
func (c *Controller) OnSubmit(kind kinds.Kind) (validation.FieldErrors, error) {
	c.lock.Lock()

	draft, err := c.input.Get(kind)

	if err != nil {
		c.lock.Unlock()
		return nil, err
	}

	payload, fieldErrors := c.engine.Validate(kind, draft.Values())

	if fieldErrors != nil {
		c.errors[kind] = fieldErrors
		c.lock.Unlock()

		logger.Log.Debug("form is invalid", zap.String("kind", kind.String()), zap.Strings("fields", fieldErrors.Fields()))

		return copyErrors(fieldErrors), nil
	}

	c.lock.Unlock()

	// Nothing is committed when the creation event could not be sent.
	err = c.channel.Send(kind.CreateEvent(), payload)

	if err != nil {
		return nil, err
	}

	c.lock.Lock()
	c.errors[kind] = validation.FieldErrors{}
	c.lock.Unlock()

	if kind == kinds.Deployment {
		c.navigator.ToggleCreateMenuFormItem()

		err = c.channel.Send(static.START_LOADING_ICON, static.LOADING_OPEN)

		if err != nil {
			return nil, err
		}
	}

	logger.Log.Info("creation requested", zap.String("kind", kind.String()), zap.String("name", payload.GetName()))

	return nil, nil
}

// Submit submits the form currently selected by the navigator.
func (c *Controller) Submit() (validation.FieldErrors, error) {
	kind := c.navigator.MenuItemToShow()

	if !kind.Valid() {
		return nil, ErrNoForm
	}

	return c.OnSubmit(kind)
}

// OnResourceCreated empties the draft of kind. Its errors are kept.
func (c *Controller) OnResourceCreated(kind kinds.Kind) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.input.Reset(kind)
}

func (c *Controller) OnOutsideInteraction() {
	c.navigator.ToggleCreateMenuFormItem()
}

func (c *Controller) OnFormClose() {
	c.navigator.ToggleCreateMenuFormItem()
	c.navigator.ToggleCreateMenuDropdown(false)
}

func (c *Controller) ShowDocs(kind kinds.Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("%s kind does not exist", kind)
	}

	return c.channel.Send(kind.DocsEvent(), nil)
}

func (c *Controller) InfoText(kind kinds.Kind) string {
	return infoText[kind]
}

func (c *Controller) Draft(kind kinds.Kind) (map[string]string, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	draft, err := c.input.Get(kind)

	if err != nil {
		return nil, err
	}

	return draft.Values(), nil
}

func (c *Controller) Errors(kind kinds.Kind) validation.FieldErrors {
	c.lock.Lock()
	defer c.lock.Unlock()

	return copyErrors(c.errors[kind])
}

// View describes the form selected by the navigator.
func (c *Controller) View() (*View, error) {
	kind := c.navigator.MenuItemToShow()

	schema, ok := c.engine.Schema(kind)

	if !ok {
		return nil, ErrNoForm
	}

	values, err := c.Draft(kind)

	if err != nil {
		return nil, err
	}

	return &View{
		Kind:     kind,
		Fields:   schema.FieldNames(),
		Values:   values,
		Errors:   c.Errors(kind),
		InfoText: c.InfoText(kind),
	}, nil
}

func (c *Controller) handleNew(event events.Event) {
	kind, ok := kinds.FromEvent(event.Name)

	if !ok {
		return
	}

	err := c.OnResourceCreated(kind)

	if err != nil {
		logger.Log.Error("failed to reset form", zap.String("event", event.Name), zap.Error(err))
		return
	}

	logger.Log.Info("resource created, form reset", zap.String("kind", kind.String()), zap.Uint64("sequence", event.Sequence))
}

func copyErrors(fieldErrors validation.FieldErrors) validation.FieldErrors {
	copied := make(validation.FieldErrors, len(fieldErrors))

	for field, message := range fieldErrors {
		copied[field] = message
	}

	return copied
}
