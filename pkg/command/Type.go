package command

import (
	"github.com/kre8/kre8/pkg/configuration"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"io"
)

type Engine struct {
	Parent    string
	Name      string
	Short     string
	Args      func(*cobra.Command, []string) error
	Condition func(*Context) bool
	Functions []func(*Context, []string)
	DependsOn []func(*Context, []string)
	Flags     func(command *cobra.Command)
}

// Context is shared by every command of one invocation. Config is nil until a dependency loads it.
type Context struct {
	Config  *configuration.Configuration
	Version string
	Flags   *pflag.FlagSet
	Out     io.Writer
}

type Builder struct {
	parent    string
	name      string
	short     string
	flags     func(cmd *cobra.Command)
	args      func(*cobra.Command, []string) error
	condition func(*Context) bool
	functions []func(*Context, []string)
	dependsOn []func(*Context, []string)
}
