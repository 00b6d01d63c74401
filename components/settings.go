package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores toggles that persist between runs
type SettingsData struct {
	Muted      bool
	ShowBounds bool
	GodMode    bool
	FreeFlying bool
	Dirty      bool // changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
