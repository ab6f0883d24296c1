package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samsonr/cli/entity"
	"github.com/samsonr/cli/ui"
)

func (h *Handler) Projects(ctx context.Context, req *entity.CommandRequest) error {
	projects, err := h.ctrl.GetProjects(ctx)
	if err != nil {
		return err
	}

	out := req.Cmd.OutOrStdout()
	if len(projects) == 0 {
		fmt.Fprintln(out, ui.YellowText("No projects found."))
		return nil
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			strconv.Itoa(p.Id),
			p.Name,
			orDash(p.LastDeployedAt),
			orDash(p.LastDeployedBy),
		})
	}
	fmt.Fprint(out, ui.Table([]string{"ID", "NAME", "LAST DEPLOYED AT", "LAST DEPLOYED BY"}, rows))
	return nil
}
