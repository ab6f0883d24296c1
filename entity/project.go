package entity

import (
	"errors"
	"fmt"
)

type Project struct {
	Id             int    `json:"id"`
	Name           string `json:"name"`
	LastDeployedAt string `json:"last_deployed_at"`
	LastDeployedBy string `json:"last_deployed_by"`
}

type Stage struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

// ProjectsResponse is the body of GET /projects.json
type ProjectsResponse struct {
	Projects []*Project `json:"projects"`
}

func (r *ProjectsResponse) Validate() error {
	if r.Projects == nil {
		return errors.New(`missing "projects" key`)
	}
	for i, p := range r.Projects {
		if p == nil || p.Id <= 0 {
			return fmt.Errorf("projects[%d]: missing or invalid id", i)
		}
	}
	return nil
}

// StagesResponse is the body of GET /projects/:id/stages.json
type StagesResponse struct {
	Stages []*Stage `json:"stages"`
}

func (r *StagesResponse) Validate() error {
	if r.Stages == nil {
		return errors.New(`missing "stages" key`)
	}
	for i, s := range r.Stages {
		if s == nil || s.Id <= 0 {
			return fmt.Errorf("stages[%d]: missing or invalid id", i)
		}
	}
	return nil
}
