package commands

import (
	"errors"
	"fmt"
	"github.com/kre8/kre8/internal/helpers"
	"github.com/kre8/kre8/pkg/command"
	"github.com/kre8/kre8/pkg/store"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Facts() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent("kre8").
			Name("facts").
			Short("Inspect and edit the cluster master file").
			Build(),
		command.NewBuilder().
			Parent("facts").
			Name("list").
			Short("List every recorded fact").
			DependsOn(LoadConfig).
			Function(func(ctx *command.Context, args []string) {
				facts, err := store.NewMaster(ctx.Config).Facts()

				if err != nil {
					helpers.PrintAndExit(err, 1)
				}

				values, err := encodeValues(facts)

				if err != nil {
					helpers.PrintAndExit(err, 1)
				}

				printValues(ctx.Out, values)
			}).
			Build(),
		command.NewBuilder().
			Parent("facts").
			Name("check").
			Short("Report whether key is recorded with value, creating the master file when missing").
			Args(cobra.ExactArgs(2)).
			DependsOn(LoadConfig).
			Function(func(ctx *command.Context, args []string) {
				recorded, err := store.NewMaster(ctx.Config, store.WithLock()).CheckOrCreate(args[0], parseValue(args[1]))

				if err != nil {
					helpers.PrintAndExit(err, 1)
				}

				if recorded {
					fmt.Fprintf(ctx.Out, "%s is recorded\n", args[0])
				} else {
					fmt.Fprintf(ctx.Out, "%s is not recorded\n", args[0])
				}
			}).
			Build(),
		command.NewBuilder().
			Parent("facts").
			Name("set").
			Short("Record value under key in the master file").
			Args(cobra.ExactArgs(2)).
			DependsOn(LoadConfig).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().BoolP("yes", "y", false, "Write even when a backend is running")
			}).
			Function(func(ctx *command.Context, args []string) {
				force, _ := ctx.Flags.GetBool("yes")

				if !force && backendRunning(ctx) && !helpers.Confirm("A backend is running on this storage, write the master file anyway?") {
					return
				}

				_, err := store.NewMaster(ctx.Config, store.WithLock()).AppendFacts(map[string]interface{}{
					args[0]: parseValue(args[1]),
				})

				if errors.Is(err, store.ErrNotInitialized) {
					helpers.PrintAndExit(fmt.Errorf("%w, run kre8 init first", err), 1)
				}

				if err != nil {
					helpers.PrintAndExit(err, 1)
				}

				fmt.Fprintf(ctx.Out, "%s recorded\n", args[0])
			}).
			Build(),
	)
}

func backendRunning(ctx *command.Context) bool {
	status, err := helpers.CheckLock(ctx.Config.LockPath())

	if err != nil {
		helpers.LogIfError(err)
		return false
	}

	return status.Locked && !status.Stale
}

// parseValue reads raw as JSON and falls back to the plain string.
func parseValue(raw string) interface{} {
	var value interface{}

	if err := json.UnmarshalFromString(raw, &value); err != nil {
		return raw
	}

	return value
}

func encodeValues(values map[string]interface{}) (map[string]string, error) {
	encoded := make(map[string]string, len(values))

	for key, value := range values {
		bytes, err := json.Marshal(value)

		if err != nil {
			return nil, err
		}

		encoded[key] = string(bytes)
	}

	return encoded, nil
}
