package entity

// RootConfig is the on-disk shape of the user config file.
type RootConfig struct {
	Token     string `mapstructure:"token"`
	ProjectID int    `mapstructure:"project_id"`
	Host      string `mapstructure:"host"`
}

// ResolvedConfig is the outcome of merging CLI flags with the config file.
type ResolvedConfig struct {
	Token     string // Required
	ProjectID *int   // Optional
}
