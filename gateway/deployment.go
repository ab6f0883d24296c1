package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samsonr/cli/entity"
)

type deployBody struct {
	Deploy struct {
		Reference string `json:"reference"`
	} `json:"deploy"`
}

// Deploy asks Samson to roll req.Reference out to the stage.
func (g *Gateway) Deploy(ctx context.Context, req *entity.DeployRequest) (*entity.DeployResult, error) {
	var body deployBody
	body.Deploy.Reference = req.Reference

	path := fmt.Sprintf("/projects/%d/stages/%d/deploys.json", req.ProjectID, req.StageID)
	httpReq := g.NewRequest(http.MethodPost, path, body)

	var resp entity.DeployResponse
	if err := g.Run(ctx, httpReq, &resp); err != nil {
		return nil, err
	}
	return &entity.DeployResult{Summary: *resp.Summary}, nil
}
