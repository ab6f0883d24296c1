package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"github.com/samsonr/cli/ui"
)

type SamsonError error

var (
	MissingToken     SamsonError = fmt.Errorf("%s\nRun %s or pass %s", ui.RedText("No Samson token configured."), ui.Bold("samson login"), ui.Bold("--token"))
	MissingProjectID SamsonError = fmt.Errorf("%s\nPass %s or run %s to set a default project.", ui.RedText("No project selected."), ui.Bold("--project-id"), ui.Bold("samson link"))
	MissingReference SamsonError = fmt.Errorf("%s\nPass a branch or commit, or run the command inside a git checkout.", ui.RedText("No reference to deploy."))
	MissingStageID   SamsonError = fmt.Errorf("%s\nPass %s. Run %s to list them.", ui.RedText("No stage selected."), ui.Bold("--stage-id"), ui.Bold("samson stages"))
)

func New(message string) error {
	return pkgerrors.New(message)
}

func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Is(err, target error) bool {
	return pkgerrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return pkgerrors.As(err, target)
}
