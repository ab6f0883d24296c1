package cmd

import (
	"context"

	"github.com/samsonr/cli/entity"
)

func (h *Handler) Completion(ctx context.Context, req *entity.CommandRequest) error {
	out := req.Cmd.OutOrStdout()
	switch req.Args[0] {
	case "bash":
		return req.Cmd.Root().GenBashCompletion(out)
	case "zsh":
		return req.Cmd.Root().GenZshCompletion(out)
	case "fish":
		return req.Cmd.Root().GenFishCompletion(out, true)
	case "powershell":
		return req.Cmd.Root().GenPowerShellCompletion(out)
	}
	return nil
}
