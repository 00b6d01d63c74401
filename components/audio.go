package components

import (
	"github.com/automoto/platformkit/sound"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context     *audio.Context
	MusicPlayer *audio.Player
	MusicFader  *sound.Fader
	MusicKey    string

	// Previous track while a crossfade runs
	Outgoing  *audio.Player
	Crossfade *sound.Crossfade

	PendingSFX []string
}

var Audio = donburi.NewComponentType[AudioData]()
