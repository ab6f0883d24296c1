package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samsonr/cli/entity"
	"github.com/samsonr/cli/errors"
	"github.com/samsonr/cli/ui"
)

// Link stores a default project id in the config file.
func (h *Handler) Link(ctx context.Context, req *entity.CommandRequest) error {
	var projectID int
	if len(req.Args) > 0 {
		id, err := strconv.Atoi(req.Args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("%s is not a valid project id", ui.Bold(req.Args[0]))
		}
		projectID = id
	} else {
		id, err := h.linkFromAccount(ctx)
		if err != nil {
			return err
		}
		projectID = id
	}

	if err := h.cfg.SetProject(projectID); err != nil {
		return err
	}

	fmt.Fprintf(req.Cmd.OutOrStdout(), "🎉 Linked to project %s\n", ui.MagentaText(strconv.Itoa(projectID)))
	return nil
}

func (h *Handler) linkFromAccount(ctx context.Context) (int, error) {
	if !h.interactive() {
		return 0, errors.MissingProjectID
	}

	projects, err := h.ctrl.GetProjects(ctx)
	if err != nil {
		return 0, err
	}

	project, err := ui.PromptProjects(projects)
	if err != nil {
		return 0, err
	}
	return project.Id, nil
}
