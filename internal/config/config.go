package config

import (
	"os"
	"time"

	"github.com/imdario/mergo"
	"gopkg.in/yaml.v3"
)

// ScanConfig discovery settings for a profile
type ScanConfig struct {
	// Port the mod server listens on
	Port int `yaml:"port" json:"port"`
	// Subnets optional override of the heuristic subnet bases
	Subnets []string `yaml:"subnets" json:"subnets"`
	// Targets explicit IPs or CIDR blocks probed after the heuristic
	// subnets
	Targets []string `yaml:"targets" json:"targets"`
}

// PollConfig polling session settings for a profile
type PollConfig struct {
	IntervalMs int `yaml:"interval_ms" json:"intervalMs"`
	TimeoutMs  int `yaml:"timeout_ms" json:"timeoutMs"`
}

// Config represents one named profile of user provided configuration
type Config struct {
	ID     int        `yaml:"-" json:"id"`
	Name   string     `yaml:"name" json:"name"`
	Scan   ScanConfig `yaml:"scan" json:"scan"`
	Poll   PollConfig `yaml:"poll" json:"poll"`
	Loaded time.Time  `yaml:"-" json:"loaded"`
}

// Default returns the built-in default profile
func Default() *Config {
	return &Config{
		Name: "default",
		Scan: ScanConfig{
			Port:    8080,
			Subnets: []string{},
			Targets: []string{},
		},
		Poll: PollConfig{
			IntervalMs: 500,
			TimeoutMs:  3000,
		},
	}
}

// New returns the unmarshaled user provided yaml config merged over the
// defaults
func New(confPath string) (*Config, error) {
	raw, err := os.ReadFile(confPath)

	if err != nil {
		return nil, err
	}

	conf := Config{}

	if err := yaml.Unmarshal(raw, &conf); err != nil {
		return nil, err
	}

	if err := mergo.Merge(&conf, Default()); err != nil {
		return nil, err
	}

	return &conf, nil
}

// Write persists a profile to the user's yaml config file
func Write(conf Config, confPath string) error {
	file, err := os.Create(confPath)

	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	return encoder.Encode(conf)
}
