package controller

import (
	"context"

	"github.com/samsonr/cli/entity"
	"github.com/samsonr/cli/lib/logging"
)

func (c *Controller) Deploy(ctx context.Context, req *entity.DeployRequest) (*entity.DeployResult, error) {
	gtwy, err := c.gateway()
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("triggering deploy", "project", req.ProjectID, "stage", req.StageID, "reference", req.Reference)
	return gtwy.Deploy(ctx, req)
}
