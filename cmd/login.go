package cmd

import (
	"context"
	"fmt"

	"github.com/samsonr/cli/entity"
	"github.com/samsonr/cli/errors"
	"github.com/samsonr/cli/gateway"
	"github.com/samsonr/cli/ui"
)

// Login stores the --token value, or a prompted one, in the config file.
func (h *Handler) Login(ctx context.Context, req *entity.CommandRequest) error {
	token := h.token
	if token == "" {
		if !h.interactive() {
			return errors.MissingToken
		}
		var err error
		token, err = ui.PromptToken()
		if err != nil {
			return err
		}
	}

	// Reject tokens that could never be sent before writing them to disk.
	if _, err := gateway.New(token, gateway.WithHost(h.host)); err != nil {
		return err
	}

	if err := h.cfg.SetToken(token); err != nil {
		return err
	}

	fmt.Fprintf(req.Cmd.OutOrStdout(), "🎉 Token saved to %s\n", ui.Bold(h.cfg.Path()))
	return nil
}
