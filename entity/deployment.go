package entity

import "errors"

type DeployRequest struct {
	ProjectID int    // Required
	StageID   int    // Required
	Reference string // Required
}

type DeployResult struct {
	Summary string
}

// DeployResponse is the body of a successful POST .../deploys.json
type DeployResponse struct {
	Summary *string `json:"summary"`
}

func (r *DeployResponse) Validate() error {
	if r.Summary == nil {
		return errors.New(`missing "summary" key`)
	}
	return nil
}

// ErrorResponse is what Samson answers with when it rejects a request.
type ErrorResponse struct {
	Status *int    `json:"status"`
	Error  *string `json:"error"`
}

func (r *ErrorResponse) Validate() error {
	if r.Error == nil {
		return errors.New(`missing "error" key`)
	}
	return nil
}
