package cmd

import (
	"context"
	"fmt"

	"github.com/samsonr/cli/entity"
	"github.com/samsonr/cli/ui"
)

func (h *Handler) Logout(ctx context.Context, req *entity.CommandRequest) error {
	root, err := h.cfg.GetRootConfig()
	if err != nil {
		return err
	}

	out := req.Cmd.OutOrStdout()
	if root.Token == "" {
		fmt.Fprintf(out, "🚪 %s\n", ui.YellowText("Already logged out"))
		return nil
	}
	if err := h.cfg.RemoveToken(); err != nil {
		return err
	}
	fmt.Fprintf(out, "👋 %s\n", ui.YellowText("Logged out"))
	return nil
}
