package commands

import (
	"context"
	"fmt"
	"github.com/kre8/kre8/internal/helpers"
	"github.com/kre8/kre8/pkg/api"
	"github.com/kre8/kre8/pkg/backend"
	"github.com/kre8/kre8/pkg/command"
	"github.com/kre8/kre8/pkg/configuration"
	"github.com/kre8/kre8/pkg/events"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/kre8/kre8/pkg/provisioner"
	"github.com/kre8/kre8/pkg/startup"
	"github.com/kre8/kre8/pkg/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
	"os/signal"
	"syscall"
)

func Backend() {
	Commands = append(Commands,
		command.Engine{
			Parent:    "kre8",
			Name:      "backend",
			Short:     "Run the backend that provisions resources sent over the event channel",
			Condition: command.EmptyCondition,
			Args:      cobra.NoArgs,
			Functions: []func(*command.Context, []string){
				func(ctx *command.Context, args []string) {
					browser, _ := ctx.Flags.GetBool("browser")

					signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
					defer stop()

					if err := serve(signalCtx, ctx.Config, ctx.Version, browser); err != nil {
						helpers.PrintAndExit(err, 1)
					}
				},
			},
			DependsOn: WithConfig,
			Flags: func(cmd *cobra.Command) {
				cmd.Flags().Bool("browser", false, "Open documentation pages in the default browser")
			},
		},
		command.NewBuilder().
			Parent("kre8").
			Name("init").
			Short("Write the resolved configuration and create the local stores").
			DependsOn(LoadConfig).
			Function(func(ctx *command.Context, args []string) {
				if _, err := prepare(ctx.Config); err != nil {
					helpers.PrintAndExit(err, 1)
				}

				if err := startup.Save(ctx.Config); err != nil {
					helpers.PrintAndExit(err, 1)
				}

				fmt.Fprintf(ctx.Out, "configuration written to %s\n", ctx.Config.ConfigPath())
			}).
			Build(),
	)
}

// prepare provisions the configured folders and makes sure both stores exist on disk.
func prepare(configObj *configuration.Configuration) (*store.Stores, error) {
	stores := store.New(configObj, store.WithLock())

	for _, folder := range configObj.Folders {
		if _, err := stores.Directory.EnsureDirectory(folder); err != nil {
			return nil, err
		}
	}

	if err := stores.Credentials.Init(); err != nil {
		return nil, err
	}

	// An existing master file is only read here.
	if _, err := stores.Master.CheckOrCreate(configObj.ClusterName, nil); err != nil {
		return nil, err
	}

	return stores, nil
}

// serve holds the backend lock for the whole run so a second backend on the same storage fails fast.
func serve(ctx context.Context, configObj *configuration.Configuration, version string, browser bool) error {
	err := helpers.AcquireLock(configObj.LockPath())

	if err != nil {
		return fmt.Errorf("another backend is running: %w", err)
	}

	// Also drops locks taken during the run, so a restarted backend is not blocked by this process.
	defer helpers.ReleaseAllLocks()

	stores, err := prepare(configObj)

	if err != nil {
		return err
	}

	applier, err := newApplier(configObj)

	if err != nil {
		return err
	}

	opts := []backend.Option{backend.WithNamespace(configObj.Namespace)}

	if browser {
		opts = append(opts, backend.WithDocsOpener(backend.NewBrowser()))
	}

	bus := events.NewBus()
	defer bus.Close()

	handler := backend.New(bus, stores.Directory, stores.Master, applier, opts...)
	handler.Start(ctx)
	defer handler.Stop()

	logger.Log.Info("backend started",
		zap.String("master", stores.Master.Path()),
		zap.String("credentials", stores.Credentials.Path()),
		zap.Bool("dry-run", configObj.DryRun),
	)

	return api.NewApi(configObj, bus, handler, version).Serve(ctx)
}

func newApplier(configObj *configuration.Configuration) (provisioner.Applier, error) {
	if configObj.DryRun {
		return provisioner.NewDryRun(), nil
	}

	kubectl, err := provisioner.NewKubectl(configObj.Kubectl)

	if err != nil {
		return nil, err
	}

	return kubectl, nil
}
