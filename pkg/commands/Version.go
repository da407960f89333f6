package commands

import (
	"fmt"
	"github.com/kre8/kre8/pkg/command"
	"github.com/spf13/cobra"
)

func Version() {
	Commands = append(Commands,
		command.Engine{
			Parent:    "kre8",
			Name:      "version",
			Short:     "Print the kre8 version",
			Condition: command.EmptyCondition,
			Args:      cobra.NoArgs,
			Functions: []func(*command.Context, []string){
				func(ctx *command.Context, args []string) {
					fmt.Fprintln(ctx.Out, ctx.Version)
				},
			},
			DependsOn: EmptyDepend,
			Flags:     command.EmptyFlag,
		},
	)
}
