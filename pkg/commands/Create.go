package commands

import (
	"context"
	"errors"
	"fmt"
	"github.com/kre8/kre8/internal/helpers"
	"github.com/kre8/kre8/pkg/backend"
	"github.com/kre8/kre8/pkg/command"
	"github.com/kre8/kre8/pkg/events"
	"github.com/kre8/kre8/pkg/form"
	"github.com/kre8/kre8/pkg/kinds"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/kre8/kre8/pkg/static"
	"github.com/kre8/kre8/pkg/validation"
	"github.com/kre8/kre8/pkg/wss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
	"sort"
	"time"
)

var ErrTimeout = errors.New(static.RESPONSE_TIMEOUT)

type request struct {
	kind    kinds.Kind
	values  map[string]string
	prompt  bool
	docs    bool
	timeout time.Duration
}

func Create() {
	Commands = append(Commands,
		command.Engine{
			Parent:    "kre8",
			Name:      "create",
			Short:     "Create a pod, deployment or service through the backend",
			Condition: command.EmptyCondition,
			Args: func(cmd *cobra.Command, args []string) error {
				if err := cobra.ExactArgs(1)(cmd, args); err != nil {
					return err
				}

				_, err := kinds.New(args[0])
				return err
			},
			Functions: []func(*command.Context, []string){
				func(ctx *command.Context, args []string) {
					req, err := newRequest(ctx, args[0])

					if err != nil {
						helpers.PrintAndExit(err, 1)
					}

					response, err := create(context.Background(), ctx, req)

					var fieldErrors validation.FieldErrors

					if errors.As(err, &fieldErrors) {
						printFieldErrors(os.Stderr, fieldErrors)
						os.Exit(1)
					}

					if err != nil {
						helpers.PrintAndExit(err, 1)
					}

					printResponse(ctx.Out, response)
				},
			},
			DependsOn: WithConfig,
			Flags: func(cmd *cobra.Command) {
				cmd.Flags().StringToString("set", map[string]string{}, "Field values, e.g. --set podName=web,imageName=nginx")
				cmd.Flags().Bool("no-prompt", false, "Do not prompt for fields missing from --set")
				cmd.Flags().Bool("docs", false, "Ask the backend to open the documentation for the kind")
				cmd.Flags().Duration("timeout", defaultTimeout, "How long to wait for the backend")
			},
		},
	)
}

func newRequest(ctx *command.Context, kind string) (request, error) {
	req := request{}

	var err error

	if req.kind, err = kinds.New(kind); err != nil {
		return req, err
	}

	if req.values, err = ctx.Flags.GetStringToString("set"); err != nil {
		return req, err
	}

	noPrompt, err := ctx.Flags.GetBool("no-prompt")

	if err != nil {
		return req, err
	}

	req.prompt = !noPrompt

	if req.docs, err = ctx.Flags.GetBool("docs"); err != nil {
		return req, err
	}

	if req.timeout, err = ctx.Flags.GetDuration("timeout"); err != nil {
		return req, err
	}

	return req, nil
}

// create fills the form for req.kind, submits it over an event link to the backend and waits
// for the completion event. Validation failures are returned as validation.FieldErrors.
func create(parent context.Context, ctx *command.Context, req request) (*backend.Response, error) {
	bus := events.NewBus()
	defer bus.Close()

	menu := form.NewMenu(req.kind)
	controller := form.New(bus, menu)

	controller.Start()
	defer controller.Stop()

	err := fill(controller, req)

	if err != nil {
		return nil, err
	}

	completed := make(chan backend.Response, 1)

	subscription := bus.On(req.kind.HandleEvent(), func(event events.Event) {
		var response backend.Response

		if err := event.Decode(&response); err != nil {
			logger.Log.Warn("malformed completion event", zap.String("event", event.Name), zap.Error(err))
			return
		}

		select {
		case completed <- response:
		default:
		}
	})
	defer subscription.Unsubscribe()

	timeout, cancel := context.WithTimeout(parent, req.timeout)
	defer cancel()

	link, err := wss.Dial(timeout, ctx.Config.Backend, req.timeout, bus, backend.Inbound)

	if err != nil {
		return nil, fmt.Errorf("backend %s is not reachable: %w", ctx.Config.Backend, err)
	}

	defer link.Close()

	closed := link.Start(timeout)

	if req.docs {
		if err = controller.ShowDocs(req.kind); err != nil {
			return nil, err
		}
	}

	fieldErrors, err := controller.Submit()

	if err != nil {
		return nil, err
	}

	if fieldErrors != nil {
		return nil, fieldErrors
	}

	select {
	case response := <-completed:
		return &response, nil
	case err = <-closed:
		if err == nil {
			err = errors.New("event link closed")
		}

		return nil, fmt.Errorf("%s: %w", static.RESPONSE_FAILED, err)
	case <-timeout.Done():
		return nil, ErrTimeout
	}
}

// fill applies the --set values, then prompts for the fields still missing.
func fill(controller *form.Controller, req request) error {
	fields := make([]string, 0, len(req.values))

	for field := range req.values {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	for _, field := range fields {
		if err := controller.OnFieldChange(req.kind, field, req.values[field]); err != nil {
			return err
		}
	}

	if !req.prompt {
		return nil
	}

	view, err := controller.View()

	if err != nil {
		return err
	}

	for _, field := range view.Fields {
		if _, set := req.values[field]; set {
			continue
		}

		value, err := helpers.Prompt(field, view.Values[field])

		if err != nil {
			return err
		}

		if err = controller.OnFieldChange(req.kind, field, value); err != nil {
			return err
		}
	}

	return nil
}
