package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/platformkit/assets"
	"github.com/automoto/platformkit/config"
	"github.com/automoto/platformkit/data"
	"github.com/automoto/platformkit/fonts"
	"github.com/automoto/platformkit/scenes"
	"github.com/automoto/platformkit/systems"
	"github.com/automoto/platformkit/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

const appName = "platformkit"

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func runSandbox(cmd *cobra.Command, args []string) error {
	switch flagWeapon {
	case factory.WeaponSemi, factory.WeaponAuto, factory.WeaponShotgun:
	default:
		return fmt.Errorf("unknown weapon %q (want semi, auto or shotgun)", flagWeapon)
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		return err
	}

	if err := systems.InitPersistence(appName); err != nil {
		log.Warn("settings will not be saved", "err", err)
	}

	level := flagLevel
	if level == "" {
		level = data.SandboxLevel
	}
	scene := scenes.NewSandboxScene(scenes.Options{
		Store:  assets.NewStore(assetsFS()),
		Level:  level,
		Weapon: flagWeapon,
		Music:  flagMusic,
	})

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("platformkit sandbox")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(&Game{scene: scene})
	if errors.Is(err, ebiten.Termination) {
		log.Info("bye")
		return nil
	}
	return err
}

// assetsFS returns the --assets directory, or the bundled assets.
func assetsFS() fs.FS {
	if flagAssetsDir != "" {
		return os.DirFS(flagAssetsDir)
	}
	return data.FS
}
