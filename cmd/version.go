package cmd

import (
	"context"
	"fmt"

	"github.com/samsonr/cli/constants"
	"github.com/samsonr/cli/entity"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	fmt.Fprintf(req.Cmd.OutOrStdout(), "samson version %s\n", constants.Version)
	return nil
}
