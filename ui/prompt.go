package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/samsonr/cli/entity"
)

func PromptToken() (string, error) {
	prompt := promptui.Prompt{
		Label: "Samson access token",
		Mask:  '*',
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("token cannot be empty")
			}
			return nil
		},
	}
	token, err := prompt.Run()
	return strings.TrimSpace(token), err
}

func PromptProjects(projects []*entity.Project) (*entity.Project, error) {
	if len(projects) == 0 {
		return nil, errors.New("no projects to choose from")
	}
	prompt := promptui.Select{
		Label: "Select Project",
		Items: projects,
		Size:  10,
		Templates: &promptui.SelectTemplates{
			Active:   `{{ .Name | underline }} {{ .Id | faint }}`,
			Inactive: `{{ .Name }} {{ .Id | faint }}`,
			Selected: fmt.Sprintf("%s Project: {{ .Name | magenta | bold }} ", GreenText("✔")),
		},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return projects[i], nil
}

// PromptStages asks for a stage even when the project has only one.
func PromptStages(stages []*entity.Stage) (*entity.Stage, error) {
	greenCheck := GreenText("✔")
	if len(stages) == 0 {
		return nil, errors.New("project has no stages")
	}
	prompt := promptui.Select{
		Label: "Select Stage",
		Items: stages,
		Templates: &promptui.SelectTemplates{
			Active:   `{{ .Name | underline }}`,
			Inactive: `{{ .Name }}`,
			Selected: fmt.Sprintf("%s Stage: {{ .Name | blue | bold }} ", greenCheck),
		},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return stages[i], nil
}
