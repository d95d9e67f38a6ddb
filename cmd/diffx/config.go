package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config supplies defaults for flags that were not set on the command
// line. Location: ~/.diffx/config.toml unless --config points
// elsewhere.
type Config struct {
	Old      Endpoint `toml:"old"`
	New      Endpoint `toml:"new"`
	Ignore   []string `toml:"ignore"`
	OldLabel string   `toml:"old_label"`
	NewLabel string   `toml:"new_label"`
}

// Endpoint describes one side's SFTP connection
type Endpoint struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Root     string `toml:"root"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".diffx", "config.toml")
}

// loadConfig reads the TOML config file. A missing file at the default
// location is fine; a missing file named explicitly is an error.
func loadConfig(path string, explicit bool) (Config, error) {
	var cfg Config

	if path == "" {
		path = defaultConfigPath()
	}
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, err
	}

	return cfg, nil
}
