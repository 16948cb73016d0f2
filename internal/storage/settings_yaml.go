package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"studyfocus/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	GoalMinutes        int    `yaml:"goal_minutes"`
	ExtendBreakMinutes int    `yaml:"extend_break_minutes"`
	DemoMode           bool   `yaml:"demo_mode"`
	LogLevel           string `yaml:"log_level"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from the YAML file at configPath.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to the YAML file at configPath.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		GoalMinutes:        settings.GoalMinutes,
		ExtendBreakMinutes: settings.ExtendBreakMinutes,
		DemoMode:           settings.DemoMode,
		LogLevel:           settings.LogLevel,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.GoalMinutes > 0 {
		settings.GoalMinutes = preferences.ClampGoalMinutes(fileData.GoalMinutes)
	}
	if fileData.ExtendBreakMinutes > 0 && fileData.ExtendBreakMinutes <= 60 {
		settings.ExtendBreakMinutes = fileData.ExtendBreakMinutes
	}
	if level := strings.TrimSpace(fileData.LogLevel); level != "" {
		settings.LogLevel = strings.ToLower(level)
	}

	settings.DemoMode = fileData.DemoMode
}
