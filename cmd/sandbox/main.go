// sandbox opens a single level with one armed player for trying out
// movement, collision and weapons.
//
// Usage:
//
//	sandbox                  - Play the bundled sandbox level
//	sandbox levels           - List levels and their block counts
//
// Flags:
//
//	--level <path>    - TMX level to load (default: levels/sandbox.tmx)
//	--assets <dir>    - Read levels, sprites and sounds from dir instead of the bundled set
//	--weapon <kind>   - semi, auto or shotgun (default: semi)
//	--music <path>    - Looping track to play, relative to the assets
//	--config <path>   - YAML config overrides
//	--debug           - Verbose logging and the bounds overlay
package main

import (
	"fmt"
	"os"

	"github.com/automoto/platformkit/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagLevel     string
	flagAssetsDir string
	flagWeapon    string
	flagMusic     string
	flagConfig    string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Platformer sandbox for movement, collision and weapons",
	Long: `Opens a level with one player carrying a weapon.

Controls:
  Arrows/WASD   - Move (Up/Down while flying)
  Space/X       - Jump
  Ctrl/Z        - Shoot
  P             - Pause
  M             - Toggle mute
  F3            - Toggle the bounds overlay
  F4            - Toggle god mode (unlimited ammo)
  F5            - Toggle free flying
  Esc           - Quit

Examples:
  sandbox
  sandbox --weapon shotgun
  sandbox --assets ./mylevels --level arena.tmx --music music/theme.ogg`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	RunE: runSandbox,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAssetsDir, "assets", "", "Directory to read assets from (default: bundled)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config overrides YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and bounds overlay")

	rootCmd.Flags().StringVar(&flagLevel, "level", "", "TMX level to load")
	rootCmd.Flags().StringVar(&flagWeapon, "weapon", "semi", "Weapon kind: semi, auto, shotgun")
	rootCmd.Flags().StringVar(&flagMusic, "music", "", "Looping music track")

	rootCmd.AddCommand(levelsCmd)
}

// setup configures logging and applies config overrides.
func setup() error {
	log.SetReportTimestamp(false)
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}

	path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		log.Info("config applied", "path", path)
	}
	if flagDebug {
		config.Debug.ShowBounds = true
	}
	return nil
}
