package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samsonr/cli/entity"
	"github.com/samsonr/cli/errors"
	"github.com/samsonr/cli/ui"
)

func (h *Handler) Deploy(ctx context.Context, req *entity.CommandRequest) error {
	flagProjectID, err := optionalInt(req.Cmd.Flags(), "project-id")
	if err != nil {
		return err
	}
	projectID, err := h.ctrl.ResolveProjectID(flagProjectID)
	if err != nil {
		return err
	}

	var argReference string
	if len(req.Args) > 0 {
		argReference = req.Args[0]
	}
	reference, err := h.ctrl.ResolveReference(ctx, argReference)
	if err != nil {
		return err
	}

	stageID, err := h.stageID(ctx, req, projectID)
	if err != nil {
		return err
	}

	errOut := req.Cmd.ErrOrStderr()
	spin := ui.IsTerminalWriter(errOut)
	if spin {
		ui.StartSpinner(&ui.SpinnerCfg{
			Message: fmt.Sprintf("Deploying %s...", ui.Bold(reference)),
			Writer:  errOut,
		})
	}
	result, err := h.ctrl.Deploy(ctx, &entity.DeployRequest{
		ProjectID: projectID,
		StageID:   stageID,
		Reference: reference,
	})
	if spin {
		ui.StopSpinner("")
	}
	if err != nil {
		return err
	}

	out := req.Cmd.OutOrStdout()
	fmt.Fprintf(out, "🚀 %s\n", ui.GreenText("Deploy started"))
	fmt.Fprint(out, ui.KeyValues(map[string]string{
		"Project":   strconv.Itoa(projectID),
		"Stage":     strconv.Itoa(stageID),
		"Reference": reference,
		"Summary":   result.Summary,
	}))
	return nil
}

// stageID comes from --stage-id, or from a picker when running in a terminal.
// A picked stage is announced before anything is deployed.
func (h *Handler) stageID(ctx context.Context, req *entity.CommandRequest, projectID int) (int, error) {
	flagStageID, err := optionalInt(req.Cmd.Flags(), "stage-id")
	if err != nil {
		return 0, err
	}
	if flagStageID != nil {
		return *flagStageID, nil
	}
	if !h.interactive() {
		return 0, errors.MissingStageID
	}

	stages, err := h.ctrl.GetStages(ctx, projectID)
	if err != nil {
		return 0, err
	}
	stage, err := h.pickStage(stages)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(req.Cmd.OutOrStdout(), "Deploying to stage %s (%d)\n", ui.BlueText(stage.Name), stage.Id)
	return stage.Id, nil
}
