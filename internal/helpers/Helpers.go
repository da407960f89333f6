package helpers

import (
	"fmt"
	"github.com/manifoldco/promptui"
)

func Confirm(message string) bool {
	ask := promptui.Select{
		Label: fmt.Sprintf("%s [y/n]", message),
		Items: []string{"y", "n"},
	}

	_, result, err := ask.Run()
	if err != nil {
		// if err provide simple yes no
		return false
	}

	return result == "y"
}

// Prompt asks for one value, showing current as the default.
func Prompt(label string, current string) (string, error) {
	ask := promptui.Prompt{
		Label:     label,
		Default:   current,
		AllowEdit: true,
	}

	return ask.Run()
}
