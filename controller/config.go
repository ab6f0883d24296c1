package controller

import (
	"strings"

	"github.com/samsonr/cli/entity"
	"github.com/samsonr/cli/errors"
)

// ResolveConfig merges CLI values with the config source. CLI values win.
func (c *Controller) ResolveConfig(token string, projectID *int) (*entity.ResolvedConfig, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		token = c.cfg.Token()
	}
	if token == "" {
		return nil, errors.MissingToken
	}

	resolved := &entity.ResolvedConfig{Token: token}
	if projectID != nil {
		id := *projectID
		resolved.ProjectID = &id
	} else if id, ok := c.cfg.ProjectID(); ok {
		resolved.ProjectID = &id
	}
	return resolved, nil
}

// ResolveProjectID returns the CLI project id, else the configured default.
func (c *Controller) ResolveProjectID(projectID *int) (int, error) {
	if projectID != nil {
		return *projectID, nil
	}
	if id, ok := c.cfg.ProjectID(); ok {
		return id, nil
	}
	return 0, errors.MissingProjectID
}
