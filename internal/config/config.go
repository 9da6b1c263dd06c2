package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const storeFileName = "contacts.json"

// Config holds application settings.
type Config struct {
	DataDir   string `yaml:"data_dir"`   // directory holding the store file
	StoreFile string `yaml:"store_file"` // store filename inside DataDir
}

// Default returns the stock configuration rooted at ~/.cardfile.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir:   filepath.Join(home, ".cardfile"),
		StoreFile: storeFileName,
	}
}

// Load builds the effective configuration: defaults, the optional
// config.yaml inside the data directory, then the dir override when
// non-empty. A missing config file is not an error.
func Load(dir string) (Config, error) {
	cfg := Default()
	if dir != "" {
		cfg.DataDir = dir
	}

	data, err := os.ReadFile(filepath.Join(cfg.DataDir, "config.yaml"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if dir != "" {
		cfg.DataDir = dir // explicit flag beats the file
	}
	if cfg.StoreFile == "" {
		cfg.StoreFile = storeFileName
	}
	return cfg, nil
}

// StorePath returns the full path of the store file.
func (c Config) StorePath() string {
	return filepath.Join(c.DataDir, c.StoreFile)
}
