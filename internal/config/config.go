// Package config loads the process-wide configuration: workspace base
// directory, editor command, and ledger file locations. The config is read
// once at startup into an immutable struct that callers pass around; there
// is no ambient global state.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds user preferences.
type Config struct {
	BaseDir     string `json:"base_dir"`     // workspace root for generated artifacts
	Editor      string `json:"editor"`       // editor binary, invoked with the solutions dir
	LogFile     string `json:"log_file"`     // practice log filename inside BaseDir
	CatalogFile string `json:"catalog_file"` // sqlite catalog filename inside BaseDir
}

// DefaultConfig returns the default configuration, matching the classic
// My-CP-Dojo layout.
func DefaultConfig() Config {
	return Config{
		BaseDir:     "My-CP-Dojo",
		Editor:      "code",
		LogFile:     "daily_log.md",
		CatalogFile: "practice.db",
	}
}

// LogPath returns the practice log location inside the workspace.
func (c Config) LogPath() string {
	return filepath.Join(c.BaseDir, c.LogFile)
}

// CatalogPath returns the catalog location inside the workspace.
func (c Config) CatalogPath() string {
	return filepath.Join(c.BaseDir, c.CatalogFile)
}

// ConfigDir returns the directory where config is stored: a project-local
// .dojo directory if present or creatable, else ~/.dojo.
func ConfigDir() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".dojo")
		if stat, err := os.Stat(localDir); (err == nil && stat.IsDir()) || os.IsNotExist(err) {
			return localDir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dojo"), nil
}

// ConfigFile returns the full path to the config file.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration from disk, falling back to defaults when no
// config file exists.
func Load() (Config, error) {
	path, err := ConfigFile()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path. Unset fields keep
// their defaults.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = DefaultConfig().BaseDir
	}
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultConfig().LogFile
	}
	if cfg.CatalogFile == "" {
		cfg.CatalogFile = DefaultConfig().CatalogFile
	}
	return cfg, nil
}

// Save writes the configuration to disk.
func Save(cfg Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigFile()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
