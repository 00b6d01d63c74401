// Package sound ramps player volumes over time.
package sound

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// VolumeSetter is anything with a settable volume. *audio.Player satisfies it.
type VolumeSetter interface {
	SetVolume(volume float64)
}

// Fader eases a target's volume toward a goal, one Update per frame.
type Fader struct {
	target VolumeSetter
	volume float64
	tween  *gween.Tween
}

// NewFader wraps target and sets it to volume straight away.
func NewFader(target VolumeSetter, volume float64) *Fader {
	target.SetVolume(volume)
	return &Fader{target: target, volume: volume}
}

// FadeTo starts a fade from the current volume to volume over seconds.
// A non-positive duration applies the volume at once.
func (f *Fader) FadeTo(volume, seconds float64) {
	if seconds <= 0 {
		f.tween = nil
		f.set(volume)
		return
	}
	f.tween = gween.New(float32(f.volume), float32(volume), float32(seconds), ease.InOutQuad)
}

func (f *Fader) FadeIn(volume, seconds float64) {
	f.set(0)
	f.FadeTo(volume, seconds)
}

func (f *Fader) FadeOut(seconds float64) {
	f.FadeTo(0, seconds)
}

// Update advances the fade by dt seconds and reports whether it is idle.
func (f *Fader) Update(dt float64) bool {
	if f.tween == nil {
		return true
	}
	v, done := f.tween.Update(float32(dt))
	f.set(float64(v))
	if done {
		f.tween = nil
	}
	return done
}

func (f *Fader) Fading() bool    { return f.tween != nil }
func (f *Fader) Volume() float64 { return f.volume }

func (f *Fader) set(v float64) {
	f.volume = v
	f.target.SetVolume(v)
}

// Crossfade fades one target out while another fades in.
type Crossfade struct {
	Out *Fader
	In  *Fader
}

// NewCrossfade fades from out to in over seconds, ending with in at volume.
func NewCrossfade(out, in *Fader, volume, seconds float64) *Crossfade {
	out.FadeOut(seconds)
	in.FadeIn(volume, seconds)
	return &Crossfade{Out: out, In: in}
}

// Update advances both fades and reports whether both are idle.
func (c *Crossfade) Update(dt float64) bool {
	outDone := c.Out.Update(dt)
	inDone := c.In.Update(dt)
	return outDone && inDone
}
