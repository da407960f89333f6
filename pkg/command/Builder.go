package command

import (
	"github.com/spf13/cobra"
)

var (
	EmptyCondition = func(*Context) bool { return true }
	EmptyFunction  = func(*Context, []string) {}
	EmptyFlag      = func(cmd *cobra.Command) {}
)

func NewBuilder() *Builder {
	return &Builder{
		args:      cobra.NoArgs,
		flags:     EmptyFlag,
		condition: EmptyCondition,
	}
}

func (cb *Builder) Parent(parent string) *Builder {
	cb.parent = parent
	return cb
}

func (cb *Builder) Name(name string) *Builder {
	cb.name = name
	return cb
}

func (cb *Builder) Short(short string) *Builder {
	cb.short = short
	return cb
}

func (cb *Builder) Flags(flags func(cmd *cobra.Command)) *Builder {
	cb.flags = flags
	return cb
}

func (cb *Builder) Args(args func(*cobra.Command, []string) error) *Builder {
	cb.args = args
	return cb
}

func (cb *Builder) Function(fns ...func(*Context, []string)) *Builder {
	cb.functions = append(cb.functions, fns...)
	return cb
}

func (cb *Builder) Condition(fn func(*Context) bool) *Builder {
	cb.condition = fn
	return cb
}

func (cb *Builder) DependsOn(fns ...func(*Context, []string)) *Builder {
	cb.dependsOn = append(cb.dependsOn, fns...)
	return cb
}

func (cb *Builder) Build() Engine {
	functions := cb.functions

	if len(functions) == 0 {
		functions = []func(*Context, []string){EmptyFunction}
	}

	return Engine{
		Parent:    cb.parent,
		Name:      cb.name,
		Short:     cb.short,
		Args:      cb.args,
		Flags:     cb.flags,
		Functions: functions,
		Condition: cb.condition,
		DependsOn: cb.dependsOn,
	}
}
