package configs

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/samsonr/cli/constants"
	"github.com/samsonr/cli/errors"
	"github.com/samsonr/cli/lib/logging"
	"github.com/spf13/viper"
)

const (
	envPrefix = "samson"

	keyToken     = "token"
	keyProjectID = "project_id"
	keyHost      = "host"
)

type Config struct {
	viper      *viper.Viper
	configPath string
}

// Configs is the user configuration, read once per command. Values come from
// SAMSON_* environment variables first, then the config file.
type Configs struct {
	rootConfigs *Config
	merged      *viper.Viper
	logger      *slog.Logger
}

// DefaultPath is <user config dir>/samson/config.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "samson", "config.yaml"), nil
}

func CreatePathIfNotExist(path string) error {
	dir := filepath.Dir(path)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, 0o700)
		if err != nil {
			return err
		}
	}

	return nil
}

func newFileViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}
	v.SetConfigPermissions(0o600)
	return v
}

// New loads the config file at path, or DefaultPath when path is empty. A
// missing file is not an error: every key is simply absent. When no user
// config directory exists only the environment is read.
func New(ctx context.Context, path string) (*Configs, error) {
	logger := logging.FromContext(ctx)
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			logger.Debug("no user config directory, reading environment only", "error", err)
		}
		path = defaultPath
	}

	c := &Configs{
		rootConfigs: &Config{configPath: path},
		logger:      logger,
	}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Configs) load() error {
	file := viper.New()
	if c.rootConfigs.configPath != "" {
		file = newFileViper(c.rootConfigs.configPath)
		if err := file.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(err, "reading "+c.rootConfigs.configPath)
		}
	}

	merged := viper.New()
	merged.SetEnvPrefix(envPrefix)
	merged.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	merged.AutomaticEnv()
	merged.SetDefault(keyHost, constants.DefaultHost)
	if err := merged.MergeConfigMap(file.AllSettings()); err != nil {
		return errors.Wrap(err, "merging "+c.rootConfigs.configPath)
	}

	c.rootConfigs.viper = file
	c.merged = merged
	return nil
}

func (c *Configs) Path() string {
	return c.rootConfigs.configPath
}

func (c *Configs) Host() string {
	return strings.TrimSpace(c.merged.GetString(keyHost))
}
