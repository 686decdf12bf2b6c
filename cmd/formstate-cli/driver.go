package main

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// PromptDriver abstracts the terminal prompts so the fill logic can be
// tested without a real TTY.
type PromptDriver interface {
	Input(message, def, help string) (string, error)
	Confirm(message string, def bool) (bool, error)
	Select(message string, options []string, defaultIndex int) (int, error)
}

type surveyDriver struct{}

func (surveyDriver) Input(message, def, help string) (string, error) {
	var out string
	prompt := &survey.Input{Message: message, Default: def, Help: help}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyDriver) Confirm(message string, def bool) (bool, error) {
	var out bool
	prompt := &survey.Confirm{Message: message, Default: def}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (surveyDriver) Select(message string, options []string, defaultIndex int) (int, error) {
	out := 0
	prompt := &survey.Select{Message: message, Options: options}
	if defaultIndex >= 0 && defaultIndex < len(options) {
		prompt.Default = options[defaultIndex]
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	return out, nil
}

// errInterrupted marks a user abort (ctrl-c) so main can exit quietly
// instead of logging a fatal error.
var errInterrupted = errors.New("formstate-cli: interrupted")

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errInterrupted
	}
	return err
}
