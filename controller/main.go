package controller

import (
	"github.com/samsonr/cli/gateway"
	"github.com/samsonr/cli/lib/git"
)

// ConfigSource is where defaults come from when a flag is not given.
type ConfigSource interface {
	Token() string
	ProjectID() (int, bool)
}

type Controller struct {
	gtwy     *gateway.Gateway
	cfg      ConfigSource
	branches git.BranchReader
	token    string
	opts     []gateway.Option
}

// New returns a controller. token is the --token flag and may be empty; the
// gateway is only built once an operation needs it.
func New(cfg ConfigSource, branches git.BranchReader, token string, opts ...gateway.Option) *Controller {
	return &Controller{
		cfg:      cfg,
		branches: branches,
		token:    token,
		opts:     opts,
	}
}

func (c *Controller) gateway() (*gateway.Gateway, error) {
	if c.gtwy != nil {
		return c.gtwy, nil
	}

	resolved, err := c.ResolveConfig(c.token, nil)
	if err != nil {
		return nil, err
	}

	gtwy, err := gateway.New(resolved.Token, c.opts...)
	if err != nil {
		return nil, err
	}
	c.gtwy = gtwy
	return gtwy, nil
}
