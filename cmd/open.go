package cmd

import (
	"context"
	"fmt"

	"github.com/samsonr/cli/controller"
	"github.com/samsonr/cli/entity"
	"github.com/samsonr/cli/ui"
)

func (h *Handler) Open(ctx context.Context, req *entity.CommandRequest) error {
	flagProjectID, err := optionalInt(req.Cmd.Flags(), "project-id")
	if err != nil {
		return err
	}
	// A missing project only matters for pages that need one.
	projectID, _ := h.ctrl.ResolveProjectID(flagProjectID)

	page := "dashboard"
	if projectID > 0 {
		page = "project"
	}
	if len(req.Args) > 0 {
		page = req.Args[0]
	}

	url, err := controller.WebURL(h.host, page, projectID)
	if err != nil {
		return err
	}

	fmt.Fprintf(req.Cmd.OutOrStdout(), "Opening %s\n", ui.GrayText(url))
	return h.ctrl.OpenInBrowser(url)
}
