package controller

import (
	"context"

	"github.com/samsonr/cli/entity"
)

// GetProjects returns all projects visible to the token, error otherwise
func (c *Controller) GetProjects(ctx context.Context) ([]*entity.Project, error) {
	gtwy, err := c.gateway()
	if err != nil {
		return nil, err
	}
	return gtwy.GetProjects(ctx)
}

// GetStages returns the stages of projectID, error otherwise
func (c *Controller) GetStages(ctx context.Context, projectID int) ([]*entity.Stage, error) {
	gtwy, err := c.gateway()
	if err != nil {
		return nil, err
	}
	return gtwy.GetStages(ctx, projectID)
}
