package systems

import (
	"sync"

	"github.com/automoto/platformkit/assets"
	"github.com/automoto/platformkit/components"
	cfg "github.com/automoto/platformkit/config"
	"github.com/automoto/platformkit/sound"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// SFX played by the sandbox
const SoundShoot = "sfx/shoot.wav"

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioStore   *assets.Store
	audioInitOnce      sync.Once
)

// InitAudio creates the audio context and lets store decode sounds for it.
// Only the first call has any effect.
func InitAudio(store *assets.Store) *audio.Context {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioStore = store
		store.RegisterAudio(globalAudioContext)
	})
	return globalAudioContext
}

// UpdateAudio advances music fades and plays queued sound effects.
func UpdateAudio(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	if audioData.Context == nil {
		return
	}
	dt := 1.0 / float64(ebiten.TPS())

	if audioData.Crossfade != nil && audioData.Crossfade.Update(dt) {
		closeOutgoing(audioData)
	} else if audioData.Crossfade == nil && audioData.MusicFader != nil {
		audioData.MusicFader.Update(dt)
	}

	muted := GetOrCreateSettings(e).Muted
	for _, name := range audioData.PendingSFX {
		if !muted {
			playSFX(audioData.Context, name)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(ctx *audio.Context, name string) {
	if globalAudioStore == nil || !globalAudioStore.IsLoaded(name) {
		return
	}
	player, err := globalAudioStore.SFX(ctx, name)
	if err != nil {
		log.Warn("could not play sound", "name", name, "err", err)
		return
	}
	player.Play()
}

// PlayMusic crossfades from the current track to name, which must already be
// loaded in the store.
func PlayMusic(e *ecs.ECS, name string) {
	audioData := GetOrCreateAudio(e)
	if audioData.Context == nil || globalAudioStore == nil {
		return
	}

	// Already playing this music
	if audioData.MusicKey == name {
		return
	}

	player, err := globalAudioStore.Music(audioData.Context, name)
	if err != nil {
		log.Warn("could not play music", "name", name, "err", err)
		return
	}

	volume := musicVolume(e)
	in := sound.NewFader(player, 0)
	player.Play()

	closeOutgoing(audioData)
	if audioData.MusicPlayer != nil {
		audioData.Outgoing = audioData.MusicPlayer
		audioData.Crossfade = sound.NewCrossfade(audioData.MusicFader, in, volume, cfg.Audio.FadeSeconds)
	} else {
		in.FadeIn(volume, cfg.Audio.FadeSeconds)
	}

	audioData.MusicPlayer = player
	audioData.MusicFader = in
	audioData.MusicKey = name
}

// FadeOutMusic fades the current track to silence
func FadeOutMusic(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	if audioData.MusicFader != nil && audioData.Crossfade == nil {
		audioData.MusicFader.FadeOut(cfg.Audio.FadeSeconds)
	}
}

// StopMusic immediately stops all music
func StopMusic(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	closeOutgoing(audioData)
	if audioData.MusicPlayer != nil {
		_ = audioData.MusicPlayer.Close()
	}
	audioData.MusicPlayer = nil
	audioData.MusicFader = nil
	audioData.MusicKey = ""
}

// PauseMusic pauses the current music playback
func PauseMusic(e *ecs.ECS) {
	if audioData := GetOrCreateAudio(e); audioData.MusicPlayer != nil {
		audioData.MusicPlayer.Pause()
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic(e *ecs.ECS) {
	if audioData := GetOrCreateAudio(e); audioData.MusicPlayer != nil {
		audioData.MusicPlayer.Play()
	}
}

// ApplyMute fades music to match the muted setting.
func ApplyMute(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	if audioData.MusicFader == nil || audioData.Crossfade != nil {
		return
	}
	audioData.MusicFader.FadeTo(musicVolume(e), cfg.Audio.FadeSeconds/2)
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, name string) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, name)
}

func musicVolume(e *ecs.ECS) float64 {
	if GetOrCreateSettings(e).Muted {
		return 0
	}
	return cfg.Audio.MusicVolume
}

func closeOutgoing(audioData *components.AudioData) {
	if audioData.Outgoing != nil {
		_ = audioData.Outgoing.Close()
	}
	audioData.Outgoing = nil
	audioData.Crossfade = nil
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			PendingSFX: make([]string, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
