package command

import (
	"github.com/spf13/cobra"
	"os"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:           "kre8",
		Short:         "kre8 resource creation CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func NewContext(version string) *Context {
	return &Context{
		Version: version,
		Out:     os.Stdout,
	}
}

func (command Engine) GetName() string {
	return command.Name
}

func (command Engine) GetParent() string {
	return command.Parent
}

func (command Engine) GetCondition(ctx *Context) bool {
	if command.Condition == nil {
		return true
	}

	return command.Condition(ctx)
}

func (command Engine) GetFunctions() []func(*Context, []string) {
	return command.Functions
}

func (command Engine) GetDependsOn() []func(*Context, []string) {
	return command.DependsOn
}

func (command Engine) SetFlags(cmd *cobra.Command) {
	if command.Flags != nil {
		command.Flags(cmd)
	}
}
