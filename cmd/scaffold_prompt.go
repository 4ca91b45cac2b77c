package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// titleCase capitalizes the first letter of a string.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// askText prompts the user for a text value with an optional default.
func askText(label, defaultVal string) (string, error) {
	p := promptui.Prompt{
		Label:   label,
		Default: defaultVal,
	}
	result, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt %q failed: %w", label, err)
	}
	return result, nil
}

// askSelect presents a list of items and returns the selected value.
func askSelect(label string, items []string) (string, error) {
	s := promptui.Select{
		Label: label,
		Items: items,
	}
	_, val, err := s.Run()
	if err != nil {
		return "", fmt.Errorf("prompt %q failed: %w", label, err)
	}
	return val, nil
}

// askConfirm asks for a yes/no confirmation. Declining or interrupting is
// not an error; anything else is.
func askConfirm(label string) (bool, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := p.Run()
	return confirmOutcome(err)
}

// confirmOutcome maps a confirm prompt result to (accepted, error).
// promptui reports both "no" and ctrl+c through the error value.
func confirmOutcome(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort), errors.Is(err, promptui.ErrInterrupt):
		return false, nil
	}
	return false, fmt.Errorf("confirm prompt failed: %w", err)
}
