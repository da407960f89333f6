package commands

import (
	"fmt"
	"github.com/kre8/kre8/internal/helpers"
	"github.com/kre8/kre8/pkg/command"
	"github.com/kre8/kre8/pkg/store"
	"github.com/spf13/cobra"
)

func Credentials() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent("kre8").
			Name("credentials").
			Short("Manage the stored AWS credentials").
			Build(),
		command.NewBuilder().
			Parent("credentials").
			Name("set").
			Short("Store value under key").
			Args(cobra.ExactArgs(2)).
			DependsOn(LoadConfig).
			Function(func(ctx *command.Context, args []string) {
				credentials := store.NewCredentials(ctx.Config)

				if err := credentials.Init(); err != nil {
					helpers.PrintAndExit(err, 1)
				}

				if err := credentials.Upsert(args[0], parseValue(args[1])); err != nil {
					helpers.PrintAndExit(err, 1)
				}

				fmt.Fprintf(ctx.Out, "%s stored in %s\n", args[0], credentials.Path())
			}).
			Build(),
		command.NewBuilder().
			Parent("credentials").
			Name("get").
			Short("Print the value stored under key").
			Args(cobra.ExactArgs(1)).
			DependsOn(LoadConfig).
			Function(func(ctx *command.Context, args []string) {
				value, ok, err := store.NewCredentials(ctx.Config).Get(args[0])

				if err != nil {
					helpers.PrintAndExit(err, 1)
				}

				if !ok {
					helpers.PrintAndExit(fmt.Errorf("%s is not stored", args[0]), 1)
				}

				bytes, err := json.Marshal(value)

				if err != nil {
					helpers.PrintAndExit(err, 1)
				}

				fmt.Fprintln(ctx.Out, string(bytes))
			}).
			Build(),
		command.NewBuilder().
			Parent("credentials").
			Name("list").
			Short("List stored keys with masked values").
			DependsOn(LoadConfig).
			Function(func(ctx *command.Context, args []string) {
				all, err := store.NewCredentials(ctx.Config).All()

				if err != nil {
					helpers.PrintAndExit(err, 1)
				}

				values, err := encodeValues(all)

				if err != nil {
					helpers.PrintAndExit(err, 1)
				}

				for key, value := range values {
					values[key] = masked(value)
				}

				printValues(ctx.Out, values)
			}).
			Build(),
	)
}
