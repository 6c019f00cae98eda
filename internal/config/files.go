package config

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName     = "shoptui"
	configFileName = "config.yml"
)

//go:embed config.tpl.yml
var templateFS embed.FS

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getXDGConfigDir(), configFileName)
}

// CreateDefaultConfigFile writes the commented template to the default
// path and returns it. An existing file is left untouched.
func CreateDefaultConfigFile() (string, error) {
	return CreateDefaultConfigFileAt(GetDefaultConfigPath())
}

// CreateDefaultConfigFileAt writes the template to configPath, creating
// parent directories as needed.
func CreateDefaultConfigFileAt(configPath string) (string, error) {
	if configPath == "" {
		return "", errors.New("config path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	templateData, err := templateFS.ReadFile("config.tpl.yml")
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}

	if err := os.WriteFile(configPath, templateData, 0o600); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}

	return configPath, nil
}

// FindDefaultConfigPath looks for a config file at the default path and
// then in the working directory.
func FindDefaultConfigPath() (string, bool) {
	configPath := GetDefaultConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		return configPath, true
	}

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, true
	}

	return "", false
}

func getXDGConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appDirName)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", appDirName)
	}

	return filepath.Join(homeDir, ".config", appDirName)
}

func getXDGCacheDir() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, appDirName)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".cache", appDirName)
	}

	return filepath.Join(homeDir, ".cache", appDirName)
}
