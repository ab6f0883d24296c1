package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samsonr/cli/entity"
	"github.com/samsonr/cli/ui"
)

func (h *Handler) Stages(ctx context.Context, req *entity.CommandRequest) error {
	flagProjectID, err := optionalInt(req.Cmd.Flags(), "project-id")
	if err != nil {
		return err
	}
	projectID, err := h.ctrl.ResolveProjectID(flagProjectID)
	if err != nil {
		return err
	}

	stages, err := h.ctrl.GetStages(ctx, projectID)
	if err != nil {
		return err
	}

	out := req.Cmd.OutOrStdout()
	if len(stages) == 0 {
		fmt.Fprintln(out, ui.YellowText(fmt.Sprintf("Project %d has no stages.", projectID)))
		return nil
	}

	rows := make([][]string, 0, len(stages))
	for _, s := range stages {
		rows = append(rows, []string{strconv.Itoa(s.Id), s.Name})
	}
	fmt.Fprint(out, ui.Table([]string{"ID", "NAME"}, rows))
	return nil
}
