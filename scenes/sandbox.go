package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/platformkit/assets"
	"github.com/automoto/platformkit/components"
	cfg "github.com/automoto/platformkit/config"
	"github.com/automoto/platformkit/projectile"
	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/automoto/platformkit/systems"
	"github.com/automoto/platformkit/systems/factory"
	"github.com/automoto/platformkit/weapon"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ProjectileImage is the optional sprite drawn for every shot.
const ProjectileImage = "sprites/projectile.png"

var ErrNoSpawn = errors.New("no player spawn points defined in map")

// Options chooses what the sandbox loads.
type Options struct {
	Store  *assets.Store
	Level  string
	Weapon string
	Music  string // empty for silence
}

// SandboxScene is a single level with one armed player.
type SandboxScene struct {
	ecs  *ecs.ECS
	opts Options
	once sync.Once
	err  error
}

func NewSandboxScene(opts Options) *SandboxScene {
	return &SandboxScene{opts: opts}
}

// Update runs one frame. It returns ebiten.Termination when exit is pressed
// and any error from building the scene.
func (s *SandboxScene) Update() error {
	s.once.Do(func() { s.err = s.configure() })
	if s.err != nil {
		return s.err
	}

	s.ecs.Update()

	if systems.ExitRequested(s.ecs) {
		systems.DisposeWeapons(s.ecs)
		systems.StopMusic(s.ecs)
		return ebiten.Termination
	}
	return nil
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *SandboxScene) configure() error {
	store := s.opts.Store
	systems.InitAudio(store)

	store.Queue(s.opts.Level)
	for _, name := range []string{systems.SoundShoot, ProjectileImage, s.opts.Music} {
		if name != "" && store.Has(name) {
			store.Queue(name)
		}
	}
	if err := store.FinishLoading(); err != nil {
		return fmt.Errorf("load sandbox assets: %w", err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	addSystems(e)
	s.ecs = e

	levelEntry, err := factory.CreateLevel(e, store, s.opts.Level)
	if err != nil {
		return err
	}
	levelData := components.Level.Get(levelEntry)
	level := levelData.CurrentLevel

	factory.CreateSpace(e, levelData.Geometry, level.MapWidth, level.MapHeight, cfg.Level.CellSize)

	if len(level.SpawnPoints) == 0 {
		return ErrNoSpawn
	}
	spawn := gamemath.Vec2{X: level.SpawnPoints[0].X, Y: level.SpawnPoints[0].Y}

	firearm, err := factory.NewFirearm(s.opts.Weapon, systems.InputTrigger{ECS: e}, weapon.DefaultConfig(), cfg.Weapon.SpreadAngle)
	if err != nil {
		return err
	}
	factory.CreatePlayer(e, spawn, levelData.Geometry, firearm, s.opts.Weapon, projectileTexture(store))
	factory.CreateCamera(e, spawn)
	systems.ApplySettings(e)

	if s.opts.Music != "" {
		systems.PlayMusic(e, s.opts.Music)
	}

	log.Info("sandbox ready", "level", s.opts.Level, "weapon", s.opts.Weapon, "spawn", spawn)
	return nil
}

func addSystems(e *ecs.ECS) {
	// Audio system (runs first, even when paused)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateSettings)

	// Game systems wrapped with the pause check
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateWeapons))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawProjectiles)
	e.AddRenderer(cfg.Default, systems.DrawPlayers)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)
}

// projectileTexture returns the projectile sprite, or a plain block in the
// projectile color when no sprite ships with the assets.
func projectileTexture(store *assets.Store) projectile.Texture {
	if img, err := store.Image(ProjectileImage); err == nil {
		return img
	}
	img := ebiten.NewImage(int(cfg.Projectile.Width), int(cfg.Projectile.Height))
	img.Fill(cfg.UI.ProjectileColor)
	return img
}
