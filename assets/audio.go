package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// RegisterAudio adds .ogg and .wav loaders that decode at ctx's sample rate.
// Sounds are cached as decoded PCM so SFX can spawn players without lag.
func (s *Store) RegisterAudio(ctx *audio.Context) {
	s.Register(".ogg", func(fsys fs.FS, name string) (any, error) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		stream, err := vorbis.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode ogg: %w", err)
		}
		return io.ReadAll(stream)
	})
	s.Register(".wav", func(fsys fs.FS, name string) (any, error) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode wav: %w", err)
		}
		return io.ReadAll(stream)
	})
}

// SFX returns a new player for a loaded sound each time it is called.
func (s *Store) SFX(ctx *audio.Context, name string) (*audio.Player, error) {
	pcm, err := Get[[]byte](s, name)
	if err != nil {
		return nil, err
	}
	return ctx.NewPlayer(bytes.NewReader(pcm))
}

// Music returns a looping player for a loaded sound.
func (s *Store) Music(ctx *audio.Context, name string) (*audio.Player, error) {
	pcm, err := Get[[]byte](s, name)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return ctx.NewPlayer(loop)
}
