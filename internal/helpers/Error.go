package helpers

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/kre8/kre8/pkg/logger"
	"os"
)

var red = color.New(color.FgRed)

func LogIfError(err error) {
	if err != nil {
		logger.Log.Error(err.Error())
	}
}

func PrintAndExit(err error, code int) {
	if err != nil {
		red.Fprintln(os.Stderr, err)
	} else {
		fmt.Println("nil err passed to print")
	}

	os.Exit(code)
}
