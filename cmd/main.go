package cmd

import (
	"context"

	"github.com/samsonr/cli/configs"
	"github.com/samsonr/cli/controller"
	"github.com/samsonr/cli/entity"
	"github.com/samsonr/cli/gateway"
	"github.com/samsonr/cli/lib/git"
	"github.com/samsonr/cli/lib/logging"
	"github.com/samsonr/cli/ui"
)

type Handler struct {
	ctrl  *controller.Controller
	cfg   *configs.Configs
	token string
	host  string

	interactive func() bool
	pickStage   func([]*entity.Stage) (*entity.Stage, error)
}

func New() *Handler {
	return &Handler{
		interactive: ui.IsInteractive,
		pickStage:   ui.PromptStages,
	}
}

// Setup wires the handler from the global flags. It runs before every command.
func (h *Handler) Setup(ctx context.Context, req *entity.CommandRequest) error {
	flags := req.Cmd.Flags()
	configPath, err := flags.GetString("config")
	if err != nil {
		return err
	}
	token, err := flags.GetString("token")
	if err != nil {
		return err
	}
	host, err := flags.GetString("host")
	if err != nil {
		return err
	}

	cfg, err := configs.New(ctx, configPath)
	if err != nil {
		return err
	}
	if host == "" {
		host = cfg.Host()
	}

	logging.FromContext(ctx).Debug("loaded configuration", "path", cfg.Path(), "host", host)

	h.cfg = cfg
	h.token = token
	h.host = host
	h.ctrl = controller.New(cfg, git.New("."), token, gateway.WithHost(host))
	return nil
}
