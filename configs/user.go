package configs

import (
	"strings"

	"github.com/samsonr/cli/entity"
)

func (c *Configs) Token() string {
	return strings.TrimSpace(c.merged.GetString(keyToken))
}

func (c *Configs) SetToken(token string) error {
	return c.updateRootConfig(func(cfg *entity.RootConfig) {
		cfg.Token = token
	})
}

func (c *Configs) RemoveToken() error {
	return c.SetToken("")
}
