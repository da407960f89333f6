package backend

import (
	"github.com/kre8/kre8/pkg/logger"
	"go.uber.org/zap"
	"os/exec"
	"runtime"
)

func (LogOpener) Open(url string) error {
	logger.Log.Info("kubernetes documentation", zap.String("url", url))
	return nil
}

func NewBrowser() *Browser {
	command := "xdg-open"

	if runtime.GOOS == "darwin" {
		command = "open"
	}

	return &Browser{
		command: command,
	}
}

func (b *Browser) Open(url string) error {
	return exec.Command(b.command, url).Start()
}
