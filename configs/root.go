package configs

import (
	"github.com/samsonr/cli/entity"
	"github.com/samsonr/cli/errors"
)

// GetRootConfig returns what is stored in the config file, ignoring the
// environment.
func (c *Configs) GetRootConfig() (*entity.RootConfig, error) {
	var cfg entity.RootConfig
	if err := c.rootConfigs.viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding "+c.rootConfigs.configPath)
	}
	return &cfg, nil
}

// SetRootConfig replaces the config file with cfg. Zero values are left out.
func (c *Configs) SetRootConfig(cfg *entity.RootConfig) error {
	if c.rootConfigs.configPath == "" {
		return errors.New("no config file location: set $HOME or pass --config")
	}
	out := newFileViper(c.rootConfigs.configPath)
	if cfg.Token != "" {
		out.Set(keyToken, cfg.Token)
	}
	if cfg.ProjectID > 0 {
		out.Set(keyProjectID, cfg.ProjectID)
	}
	if cfg.Host != "" {
		out.Set(keyHost, cfg.Host)
	}

	if err := CreatePathIfNotExist(c.rootConfigs.configPath); err != nil {
		return err
	}
	if err := out.WriteConfig(); err != nil {
		return errors.Wrap(err, "writing "+c.rootConfigs.configPath)
	}

	return c.load()
}

func (c *Configs) updateRootConfig(update func(cfg *entity.RootConfig)) error {
	cfg, err := c.GetRootConfig()
	if err != nil {
		return err
	}
	update(cfg)
	return c.SetRootConfig(cfg)
}
