package systems

import (
	"github.com/automoto/platformkit/components"
	cfg "github.com/automoto/platformkit/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ammoLimiter is implemented by every firearm built on weapon.Weapon.
type ammoLimiter interface {
	SetUnlimitedAmmo(bool)
}

// UpdateSettings applies the debug toggles and saves them when they change.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if input.Action(cfg.ActionToggleBounds).JustPressed {
		settings.ShowBounds = !settings.ShowBounds
		settings.Dirty = true
	}
	if input.Action(cfg.ActionToggleMute).JustPressed {
		settings.Muted = !settings.Muted
		settings.Dirty = true
		ApplyMute(e)
	}
	if input.Action(cfg.ActionToggleGodMode).JustPressed {
		settings.GodMode = !settings.GodMode
		settings.Dirty = true
	}
	if input.Action(cfg.ActionToggleFlying).JustPressed {
		settings.FreeFlying = !settings.FreeFlying
		settings.Dirty = true
	}

	if settings.Dirty {
		applyGodMode(e, settings.GodMode)
		SaveCurrentSettings(settings)
	}
}

// applyGodMode lifts the ammo limit on every carried weapon. Turning it off
// restores the configured limit.
func applyGodMode(e *ecs.ECS, on bool) {
	components.Weapon.Each(e.World, func(entry *donburi.Entry) {
		if w, ok := components.Weapon.Get(entry).Firearm.(ammoLimiter); ok {
			w.SetUnlimitedAmmo(on || cfg.Weapon.UnlimitedAmmo)
		}
	})
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the debug flags and any saved settings.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		settings := DefaultSettings()
		saved, _ := LoadSettings()
		ApplySavedSettings(&settings, saved)
		components.Settings.SetValue(entry, settings)
	}
	return components.Settings.Get(entry)
}

// ApplySettings pushes the current settings onto spawned entities.
func ApplySettings(e *ecs.ECS) {
	applyGodMode(e, GetOrCreateSettings(e).GodMode)
}
