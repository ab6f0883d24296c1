package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samsonr/cli/entity"
	"github.com/samsonr/cli/ui"
)

// Status shows what the other commands would use without calling Samson.
func (h *Handler) Status(ctx context.Context, req *entity.CommandRequest) error {
	status := map[string]string{
		"Config":    ui.YellowText("none, environment only"),
		"Host":      h.host,
		"Token":     ui.RedText("not set"),
		"Project":   ui.YellowText("not linked"),
		"Reference": ui.YellowText("no branch checked out"),
	}

	if path := h.cfg.Path(); path != "" {
		status["Config"] = path
	}

	if resolved, err := h.ctrl.ResolveConfig(h.token, nil); err == nil {
		status["Token"] = ui.GreenText("set")
		if resolved.ProjectID != nil {
			status["Project"] = strconv.Itoa(*resolved.ProjectID)
		}
	} else if id, err := h.ctrl.ResolveProjectID(nil); err == nil {
		status["Project"] = strconv.Itoa(id)
	}

	if reference, err := h.ctrl.ResolveReference(ctx, ""); err == nil {
		status["Reference"] = reference
	}

	fmt.Fprint(req.Cmd.OutOrStdout(), ui.KeyValues(status))
	return nil
}
