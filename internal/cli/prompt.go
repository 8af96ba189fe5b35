package cli

import (
	"github.com/AlecAivazis/survey/v2"
)

// Prompter asks the user for a single value.
type Prompter interface {
	Input(message string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message string) (string, error) {
	var out string
	prompt := &survey.Input{Message: message}
	if err := survey.AskOne(prompt, &out, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return out, nil
}
