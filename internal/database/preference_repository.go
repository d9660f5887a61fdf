package database

import (
	"database/sql"
	"fmt"

	"github.com/example/landing/pkg/models"
)

const (
	prefKeyTheme     = "theme_mode"
	prefKeyAgreement = "agreement"
)

// PreferenceRepository handles the persisted key/value preferences
type PreferenceRepository struct{}

// NewPreferenceRepository creates a new repository instance
func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{}
}

// GetTheme returns the persisted theme mode, defaulting to the system theme
func (r *PreferenceRepository) GetTheme() (models.ThemeMode, error) {
	value, err := r.get(prefKeyTheme)
	if err != nil {
		return models.ThemeModeDefault, err
	}
	if value == "" {
		return models.ThemeModeDefault, nil
	}
	return models.ThemeMode(value), nil
}

// SetTheme persists the theme mode
func (r *PreferenceRepository) SetTheme(mode models.ThemeMode) error {
	return r.set(prefKeyTheme, string(mode))
}

// GetAgreement reports whether the user accepted the terms
func (r *PreferenceRepository) GetAgreement() (bool, error) {
	value, err := r.get(prefKeyAgreement)
	if err != nil {
		return false, err
	}
	return value == "true", nil
}

// SetAgreement persists the terms acceptance
func (r *PreferenceRepository) SetAgreement(agreed bool) error {
	value := "false"
	if agreed {
		value = "true"
	}
	return r.set(prefKeyAgreement, value)
}

func (r *PreferenceRepository) get(key string) (string, error) {
	var value string
	err := DB.Get(&value, "SELECT value FROM preferences WHERE key = $1", key)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get preference %s: %v", key, err)
	}
	return value, nil
}

func (r *PreferenceRepository) set(key, value string) error {
	_, err := DB.Exec(`
		INSERT INTO preferences (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set preference %s: %v", key, err)
	}
	return nil
}
