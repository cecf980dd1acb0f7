// Package project persists application state as JSON under the user's
// config directory: the app configuration and the cutting condition list.
// Missing files load as defaults; malformed files load as defaults and
// return the parse error so callers can warn without losing the session.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// AppConfig holds the user-tunable application settings.
type AppConfig struct {
	// Sheet dimensions in mm for new sheets.
	SheetWidth  float64 `json:"sheet_width"`
	SheetHeight float64 `json:"sheet_height"`
	// ChordTolerance is the maximum sagitta allowed when tessellating arcs, mm.
	ChordTolerance float64 `json:"chord_tolerance"`
	// JoinEpsilon is the endpoint matching distance for loop assembly, mm.
	JoinEpsilon float64 `json:"join_epsilon"`
	// PickEpsilon is the edge hit distance for entity selection, mm.
	PickEpsilon float64 `json:"pick_epsilon"`
}

// DefaultAppConfig returns the configuration used on first run.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		SheetWidth:     300,
		SheetHeight:    200,
		ChordTolerance: 0.01,
		JoinEpsilon:    0.01,
		PickEpsilon:    0.5,
	}
}

// DefaultConfigDir returns the default directory for application files.
// On all platforms this is ~/.laser-cam/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".laser-cam")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
// If the file cannot be parsed, it returns DefaultAppConfig and the error.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return DefaultAppConfig(), err
	}
	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return DefaultAppConfig(), err
	}
	return config, nil
}
