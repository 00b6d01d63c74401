// Package assets loads and caches the resources a level needs. A Store is
// built once by the host and passed to whatever needs textures, levels,
// fonts or sounds; there is no package-level instance.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/platformkit/config"
	"github.com/automoto/platformkit/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ErrNotLoaded is returned when an asset is requested before it was loaded.
var ErrNotLoaded = errors.New("asset not loaded")

// Loader reads the asset at name from fsys.
type Loader func(fsys fs.FS, name string) (any, error)

type Store struct {
	fsys    fs.FS
	loaders map[string]Loader // keyed by lower-case extension
	queue   []string
	loaded  map[string]any
	queued  int
}

// NewStore returns a store reading from fsys with loaders for .png images,
// .tmx levels and .ttf fonts.
func NewStore(fsys fs.FS) *Store {
	s := &Store{
		fsys:    fsys,
		loaders: make(map[string]Loader),
		loaded:  make(map[string]any),
	}
	s.Register(".png", loadImage)
	s.Register(".tmx", loadLevel)
	s.Register(".ttf", loadFont)
	return s
}

// Register sets the loader for files with extension ext, replacing any
// existing one.
func (s *Store) Register(ext string, l Loader) {
	s.loaders[strings.ToLower(ext)] = l
}

// Queue schedules assets for loading by Update. Loaded or already queued
// names are skipped.
func (s *Store) Queue(names ...string) {
	for _, name := range names {
		if s.IsLoaded(name) || s.isQueued(name) {
			continue
		}
		s.queue = append(s.queue, name)
		s.queued++
	}
}

func (s *Store) isQueued(name string) bool {
	for _, q := range s.queue {
		if q == name {
			return true
		}
	}
	return false
}

// Update loads the next queued asset. It reports true once the queue is
// empty. A failed asset is dropped from the queue and its error returned.
func (s *Store) Update() (bool, error) {
	if len(s.queue) == 0 {
		return true, nil
	}
	name := s.queue[0]
	s.queue = s.queue[1:]

	_, err := s.Load(name)
	done := len(s.queue) == 0
	if done {
		s.queued = 0
	}
	return done, err
}

// FinishLoading drains the queue, stopping at the first error.
func (s *Store) FinishLoading() error {
	for {
		done, err := s.Update()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Progress is the fraction of queued assets loaded so far, 1 when idle.
func (s *Store) Progress() float64 {
	if s.queued == 0 {
		return 1
	}
	return float64(s.queued-len(s.queue)) / float64(s.queued)
}

// Load loads name immediately, returning the cached value if present.
func (s *Store) Load(name string) (any, error) {
	if v, ok := s.loaded[name]; ok {
		return v, nil
	}
	ext := strings.ToLower(path.Ext(name))
	l, ok := s.loaders[ext]
	if !ok {
		return nil, fmt.Errorf("load %s: no loader for %q", name, ext)
	}
	v, err := l(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	s.loaded[name] = v
	log.Debug("asset loaded", "name", name)
	return v, nil
}

// Get returns a loaded asset.
func (s *Store) Get(name string) (any, error) {
	v, ok := s.loaded[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotLoaded, name)
	}
	return v, nil
}

// Get returns a loaded asset as T.
func Get[T any](s *Store, name string) (T, error) {
	var zero T
	v, err := s.Get(name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("asset %s is %T, not %T", name, v, zero)
	}
	return t, nil
}

func (s *Store) Image(name string) (*ebiten.Image, error) {
	return Get[*ebiten.Image](s, name)
}

func (s *Store) Level(name string) (*leveldata.Level, error) {
	return Get[*leveldata.Level](s, name)
}

func (s *Store) Font(name string) (*truetype.Font, error) {
	return Get[*truetype.Font](s, name)
}

// Has reports whether name exists in the store's file system.
func (s *Store) Has(name string) bool {
	_, err := fs.Stat(s.fsys, name)
	return err == nil
}

func (s *Store) IsLoaded(name string) bool {
	_, ok := s.loaded[name]
	return ok
}

// Unload drops a cached asset. Images are disposed.
func (s *Store) Unload(name string) {
	v, ok := s.loaded[name]
	if !ok {
		return
	}
	if img, ok := v.(*ebiten.Image); ok {
		img.Deallocate()
	}
	delete(s.loaded, name)
}

// Clear unloads every asset and empties the queue.
func (s *Store) Clear() {
	for name := range s.loaded {
		s.Unload(name)
	}
	s.queue = nil
	s.queued = 0
}

func loadImage(fsys fs.FS, name string) (any, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func loadLevel(fsys fs.FS, name string) (any, error) {
	return leveldata.LoadWithLayers(fsys, name, leveldata.Layers{
		Hard:  config.Level.HardLayer,
		Soft:  config.Level.SoftLayer,
		Door:  config.Level.DoorLayer,
		Sand:  config.Level.SandLayer,
		Spawn: config.Level.SpawnLayer,
	})
}

func loadFont(fsys fs.FS, name string) (any, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return f, nil
}
