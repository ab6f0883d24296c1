package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samsonr/cli/entity"
)

// GetProjects returns every project visible to the token.
func (g *Gateway) GetProjects(ctx context.Context) ([]*entity.Project, error) {
	req := g.NewRequest(http.MethodGet, "/projects.json", nil)

	var resp entity.ProjectsResponse
	if err := g.Run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.Projects, nil
}

// GetStages returns the stages of projectID.
func (g *Gateway) GetStages(ctx context.Context, projectID int) ([]*entity.Stage, error) {
	req := g.NewRequest(http.MethodGet, fmt.Sprintf("/projects/%d/stages.json", projectID), nil)

	var resp entity.StagesResponse
	if err := g.Run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.Stages, nil
}
