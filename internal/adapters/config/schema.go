package config

// Pinfile represents the structure of the pin.yaml configuration file.
type Pinfile struct {
	Version        string                       `yaml:"version"`
	Enabled        *bool                        `yaml:"enabled"`
	Mode           string                       `yaml:"mode"`
	LocksDir       string                       `yaml:"locksDir"`
	Configurations map[string]*ConfigurationDTO `yaml:"configurations"`
}

// ConfigurationDTO represents the locking settings of one configuration.
type ConfigurationDTO struct {
	Enabled *bool  `yaml:"enabled"`
	Mode    string `yaml:"mode"`
}
