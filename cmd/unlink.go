package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samsonr/cli/entity"
	"github.com/samsonr/cli/ui"
)

func (h *Handler) Unlink(ctx context.Context, req *entity.CommandRequest) error {
	root, err := h.cfg.GetRootConfig()
	if err != nil {
		return err
	}

	out := req.Cmd.OutOrStdout()
	if root.ProjectID == 0 {
		fmt.Fprintln(out, ui.YellowText("No project is currently linked"))
		return nil
	}

	if err := h.cfg.RemoveProject(); err != nil {
		return err
	}

	fmt.Fprintf(out, "🎉 Disconnected from project %s\n", ui.MagentaText(strconv.Itoa(root.ProjectID)))
	return nil
}
