package commands

import (
	"github.com/kre8/kre8/internal/helpers"
	"github.com/kre8/kre8/pkg/command"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/kre8/kre8/pkg/startup"
	"time"
)

const defaultTimeout = 30 * time.Second

var (
	EmptyDepend = []func(*command.Context, []string){command.EmptyFunction}
	WithConfig  = []func(*command.Context, []string){LoadConfig}
)

// LoadConfig resolves the configuration for the invoked command and rebuilds the logger at its level.
func LoadConfig(ctx *command.Context, args []string) {
	configObj, err := startup.Load(ctx.Flags)

	if err != nil {
		helpers.PrintAndExit(err, 1)
	}

	ctx.Config = configObj
	logger.Log = logger.NewLogger(configObj.LogLevel, []string{"stderr"}, []string{"stderr"})
}
