package commands

import (
	"fmt"
	"github.com/kre8/kre8/pkg/command"
	"github.com/kre8/kre8/pkg/startup"
	"github.com/spf13/cobra"
	"os"
	"strings"
)

var Commands []command.Engine

func PreloadCommands() {
	Commands = nil

	Version()
	Backend()
	Create()
	Facts()
	Credentials()
}

func Run(ctx *command.Context, c *cobra.Command) error {
	Build(ctx, c)
	c.SetArgs(os.Args[1:])

	return c.Execute()
}

// Build attaches every preloaded command to c, nesting each under its parent.
func Build(ctx *command.Context, c *cobra.Command) {
	c.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
	})

	c.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		_ = c.Usage()
		return err
	})

	c.Run = func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "unknown command: %s\n", strings.Join(args, " "))
		}
		_ = cmd.Usage()
	}

	for _, cmd := range Commands {
		cobraCmd := &cobra.Command{
			Use:   cmd.Name,
			Short: cmd.Short,
			Args:  cmd.Args,
			PreRunE: func(c *cobra.Command, args []string) error {
				ctx.Flags = c.Flags()
				ctx.Out = c.OutOrStdout()

				if !cmd.GetCondition(ctx) {
					return fmt.Errorf("condition failed for command %s", c.Use)
				}

				for _, dep := range cmd.GetDependsOn() {
					dep(ctx, args)
				}

				return nil
			},
			Run: func(c *cobra.Command, args []string) {
				for _, fn := range cmd.GetFunctions() {
					fn(ctx, args)
				}
			},
		}

		if cmd.Short == "" {
			cobraCmd.Short = fmt.Sprintf("%s %s", cmd.Parent, cmd.Name)
		}

		cmd.SetFlags(cobraCmd)

		if cmd.Parent == c.Use || cmd.Parent == "" {
			c.AddCommand(cobraCmd)
		} else {
			parent := findCommand(c, cmd.Parent)

			if parent != nil {
				parent.AddCommand(cobraCmd)
			} else {
				fmt.Fprintf(c.ErrOrStderr(), "warning: parent command '%s' not found for '%s'\n", cmd.Parent, cmd.Name)
			}
		}
	}
}

func SetupGlobalFlags(rootCmd *cobra.Command) {
	startup.SetFlags(rootCmd.PersistentFlags())
}

func findCommand(cmd *cobra.Command, name string) *cobra.Command {
	if cmd.Use == name {
		return cmd
	}
	for _, c := range cmd.Commands() {
		if result := findCommand(c, name); result != nil {
			return result
		}
	}
	return nil
}
