package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"timetimer/internal/core/model"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// ErrConfigExists indicates that a config file is already present.
var ErrConfigExists = errors.New("config file already exists")

type yamlConfig struct {
	DefaultMinutes int      `yaml:"default_minutes"`
	Style          string   `yaml:"style"`
	Face           string   `yaml:"face"`
	TickIntervalMs int      `yaml:"tick_interval_ms"`
	ChimeVolume    *float64 `yaml:"chime_volume"`
	ChimeDelayMs   int      `yaml:"chime_delay_ms"`
	Presets        []int    `yaml:"presets"`
}

// LoadConfig reads startup defaults from the user config directory.
// If the config file does not exist, default settings are returned.
func LoadConfig(appName string) (model.Config, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return model.DefaultConfig(), err
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile reads startup defaults from configPath. Invalid fields keep
// their default value.
func LoadConfigFile(configPath string) (model.Config, error) {
	config := model.DefaultConfig()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlConfig
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse config yaml: %w", err)
	}

	applyYamlConfig(&config, fileData)
	return config, nil
}

// WriteDefaultConfig writes a config template to configPath. Existing files
// are left untouched.
func WriteDefaultConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("write config %s: %w", configPath, ErrConfigExists)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	config := model.DefaultConfig()
	fileData := yamlConfig{
		DefaultMinutes: config.DefaultMinutes,
		Style:          string(config.Style),
		Face:           string(config.Face),
		TickIntervalMs: int(config.TickInterval / time.Millisecond),
		ChimeVolume:    &config.ChimeVolume,
		ChimeDelayMs:   int(config.ChimeDelay / time.Millisecond),
		Presets:        config.Presets,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns the config file location for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, configFileName), nil
}

func applyYamlConfig(config *model.Config, fileData yamlConfig) {
	if fileData.DefaultMinutes > 0 {
		config.DefaultMinutes = model.ClampMinutes(fileData.DefaultMinutes)
	}
	if style, err := model.ParseStyle(fileData.Style); err == nil {
		config.Style = style
	}
	if face, ok := model.ParseFace(fileData.Face); ok {
		config.Face = face
	}
	if fileData.TickIntervalMs >= 100 && fileData.TickIntervalMs <= 5000 {
		config.TickInterval = time.Duration(fileData.TickIntervalMs) * time.Millisecond
	}
	if volume := fileData.ChimeVolume; volume != nil && *volume >= 0 && *volume <= 1 {
		config.ChimeVolume = *volume
	}
	if fileData.ChimeDelayMs > 0 && fileData.ChimeDelayMs <= 5000 {
		config.ChimeDelay = time.Duration(fileData.ChimeDelayMs) * time.Millisecond
	}

	var presets []int
	for _, minutes := range fileData.Presets {
		if minutes >= model.MinMinutes && minutes <= model.MaxMinutes {
			presets = append(presets, minutes)
		}
	}
	if len(presets) > 0 {
		config.Presets = presets
	}
}
