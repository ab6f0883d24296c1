package configs

import (
	"github.com/samsonr/cli/entity"
	"github.com/spf13/cast"
)

// ProjectID returns the default project, if one is configured. Values that
// are not positive integers are reported and ignored.
func (c *Configs) ProjectID() (int, bool) {
	if !c.merged.IsSet(keyProjectID) {
		return 0, false
	}
	raw := c.merged.Get(keyProjectID)
	id, err := cast.ToIntE(raw)
	if err != nil || id <= 0 {
		c.logger.Warn("ignoring invalid project_id, expected a positive integer", "value", raw)
		return 0, false
	}
	return id, true
}

func (c *Configs) SetProject(projectID int) error {
	return c.updateRootConfig(func(cfg *entity.RootConfig) {
		cfg.ProjectID = projectID
	})
}

func (c *Configs) RemoveProject() error {
	return c.SetProject(0)
}
