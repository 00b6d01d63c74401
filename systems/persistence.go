package systems

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/automoto/platformkit/components"
	cfg "github.com/automoto/platformkit/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted      bool `json:"muted"`
	ShowBounds bool `json:"showBounds"`
	GodMode    bool `json:"godMode"`
	FreeFlying bool `json:"freeFlying"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	if appName == "" {
		return errors.New("persistence needs an app name")
	}
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when persistence is
// unavailable or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("could not parse saved settings", "err", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn("could not serialize settings", "err", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

// SaveCurrentSettings writes the Settings component to disk.
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Muted:      s.Muted,
		ShowBounds: s.ShowBounds,
		GodMode:    s.GodMode,
		FreeFlying: s.FreeFlying,
	})
	s.Dirty = false
}

// DefaultSettings seeds the Settings component from the debug flags.
func DefaultSettings() components.SettingsData {
	return components.SettingsData{
		ShowBounds: cfg.Debug.ShowBounds,
		GodMode:    cfg.Debug.GodMode,
		FreeFlying: cfg.Debug.FreeFlying,
	}
}

// ApplySavedSettings overlays saved toggles onto s. Debug flags given on the
// command line stay switched on.
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.Muted = saved.Muted
	s.ShowBounds = saved.ShowBounds || cfg.Debug.ShowBounds
	s.GodMode = saved.GodMode || cfg.Debug.GodMode
	s.FreeFlying = saved.FreeFlying || cfg.Debug.FreeFlying
}
