package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"taskpulse/internal/stats"
)

type Config struct {
	Server  Server  `yaml:"server" json:"server"`
	Data    Data    `yaml:"data" json:"data"`
	Stats   Stats   `yaml:"stats" json:"stats"`
	Suggest Suggest `yaml:"suggest" json:"suggest"`
}

type Server struct {
	Addr string `yaml:"addr" json:"addr"`
}

type Data struct {
	Dir string `yaml:"dir" json:"dir"`
}

type Stats struct {
	WindowDays int `yaml:"window_days" json:"window_days"`
}

type Suggest struct {
	Enabled        bool `yaml:"enabled" json:"enabled"`
	TimeoutSeconds int  `yaml:"timeout_seconds" json:"timeout_seconds"`
}

func Default() Config {
	return Config{
		Server:  Server{Addr: ":8484"},
		Data:    Data{Dir: "data"},
		Stats:   Stats{WindowDays: stats.DefaultWindowDays},
		Suggest: Suggest{Enabled: true, TimeoutSeconds: 60},
	}
}

// Load reads a yaml config file on top of the defaults. A missing file
// is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
