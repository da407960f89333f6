package main

import (
	"fmt"
	"github.com/kre8/kre8/internal/helpers"
	"github.com/kre8/kre8/pkg/command"
	"github.com/kre8/kre8/pkg/commands"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/kre8/kre8/pkg/static"
	"os"
)

// Overridden at build time with -ldflags "-X main.KRE8_VERSION=...".
var KRE8_VERSION = "dev"

func main() {
	logLevel := os.Getenv("KRE8_LOG")
	if logLevel == "" {
		logLevel = static.DEFAULT_LOG_LEVEL
	}

	logger.Log = logger.NewLogger(logLevel, []string{"stderr"}, []string{"stderr"})

	if logLevel == "debug" {
		fmt.Println(fmt.Sprintf("logging level set to %s (override with KRE8_LOG env variable or --log flag)", logLevel))
	}

	cmd := command.New()
	commands.SetupGlobalFlags(cmd)
	commands.PreloadCommands()

	if err := commands.Run(command.NewContext(KRE8_VERSION), cmd); err != nil {
		helpers.PrintAndExit(err, 1)
	}
}
