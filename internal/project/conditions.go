package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Clinery1/laser-cam/internal/laser"
)

// conditionsFile is the on-disk shape of the condition list: the conditions
// in save order plus which one is the default.
type conditionsFile struct {
	DefaultID  string             `json:"default_id"`
	Conditions []*laser.Condition `json:"conditions"`
}

// DefaultConditionsPath returns the default path for the conditions file.
func DefaultConditionsPath() string {
	return filepath.Join(DefaultConfigDir(), "conditions.json")
}

// SaveConditions persists a condition set to the given path as JSON and
// clears the dirty flags. It creates any missing parent directories
// automatically.
func SaveConditions(path string, set *laser.Set) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file := conditionsFile{
		DefaultID:  set.DefaultID(),
		Conditions: set.All(),
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	set.ClearDirty()
	return nil
}

// LoadConditions reads a condition set from the given path.
// If the file does not exist, it returns a fresh set with no error.
// If the file cannot be parsed, it returns a fresh set and the error.
func LoadConditions(path string) (*laser.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return laser.NewSet(), nil
		}
		return laser.NewSet(), err
	}
	var file conditionsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return laser.NewSet(), err
	}
	return laser.NewSetFrom(file.Conditions, file.DefaultID), nil
}
