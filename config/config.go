package config

import "image/color"

// Default is the ecs layer every sandbox system and renderer runs on.
const Default = 0

// WeaponConfig holds defaults for newly constructed weapons.
type WeaponConfig struct {
	ShootingInterval float64 `yaml:"shootingInterval"` // seconds between accepted shots
	InitialCapacity  int     `yaml:"initialCapacity"`
	MaxCapacity      int     `yaml:"maxCapacity"` // live projectiles and pooled instances
	Ammo             int16   `yaml:"ammo"`
	UnlimitedAmmo    bool    `yaml:"unlimitedAmmo"`
	Range            float64 `yaml:"range"` // 0 = projectiles only expire on impact
	Damage           float64 `yaml:"damage"`

	// Shotgun
	SpreadAngle float64 `yaml:"spreadAngle"` // radians across the whole volley
}

// ProjectileConfig contains projectile defaults
type ProjectileConfig struct {
	DefaultSpeed float64 `yaml:"defaultSpeed"` // horizontal speed a reset projectile carries
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"` // sandbox muzzle speed, world units per second
	Damage       float64 `yaml:"damage"`
}

// PhysicsConfig contains movement constants for game objects
type PhysicsConfig struct {
	GameSpeed        float64 `yaml:"gameSpeed"`
	Jump             float64 `yaml:"jump"`
	TerminalVelocity float64 `yaml:"terminalVelocity"`
	Acceleration     float64 `yaml:"acceleration"`
	Gravity          float64 `yaml:"gravity"`
	Friction         float64 `yaml:"friction"`
	MaxSpeed         float64 `yaml:"maxSpeed"`
	HeadBumpDamping  float64 `yaml:"headBumpDamping"` // gravity multiplier after hitting a ceiling
}

// PlayerConfig contains the sandbox player's collision box
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Crop insets applied to the collision box
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
}

// LevelConfig names the object layers static geometry is read from
type LevelConfig struct {
	HardLayer  string `yaml:"hardLayer"`
	SoftLayer  string `yaml:"softLayer"`
	DoorLayer  string `yaml:"doorLayer"`
	SandLayer  string `yaml:"sandLayer"`
	SpawnLayer string `yaml:"spawnLayer"`
	CellSize   int    `yaml:"cellSize"` // resolv space cell size
}

// CameraConfig contains camera follow settings
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"followSmoothing"` // 0-1, fraction of the gap closed per frame
}

// AudioConfig contains music settings
type AudioConfig struct {
	SampleRate  int     `yaml:"sampleRate"`
	MusicVolume float64 `yaml:"musicVolume"`
	FadeSeconds float64 `yaml:"fadeSeconds"`
}

// UIConfig contains HUD colors
type UIConfig struct {
	HardBlockColor  color.RGBA
	SoftBlockColor  color.RGBA
	DoorBlockColor  color.RGBA
	SandBlockColor  color.RGBA
	PlayerColor     color.RGBA
	ProjectileColor color.RGBA
	HUDTextColor    color.RGBA
	OverlayColor    color.RGBA
	HUDFontSize     float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowBounds bool `yaml:"showBounds"` // draw the resolv space mirror
	GodMode    bool `yaml:"godMode"`
	FreeFlying bool `yaml:"freeFlying"` // ignore gravity in the sandbox
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Global configuration instances
var C *Config
var Weapon WeaponConfig
var Projectile ProjectileConfig
var Physics PhysicsConfig
var Player PlayerConfig
var Level LevelConfig
var Camera CameraConfig
var Audio AudioConfig
var UI UIConfig
var Debug DebugConfig

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 368,
	}

	Weapon = WeaponConfig{
		ShootingInterval: 0.01,
		InitialCapacity:  0,
		MaxCapacity:      32,
		Ammo:             0,
		UnlimitedAmmo:    true,
		Range:            0,
		Damage:           0,
		SpreadAngle:      0.35,
	}

	Projectile = ProjectileConfig{
		DefaultSpeed: 5,
		Width:        6,
		Height:       2,
		Speed:        420,
		Damage:       10,
	}

	gameSpeed := 1.0
	Physics = PhysicsConfig{
		GameSpeed:        gameSpeed,
		Jump:             306.0 * gameSpeed,
		TerminalVelocity: 1200.0 * gameSpeed,
		Acceleration:     760.0 * gameSpeed,
		Gravity:          900.0 * gameSpeed,
		Friction:         40.0,
		MaxSpeed:         160.0,
		HeadBumpDamping:  -0.1,
	}

	Player = PlayerConfig{
		Width:  16,
		Height: 24,
		Right:  2,
		Left:   2,
	}

	Level = LevelConfig{
		HardLayer:  "hard-blocks",
		SoftLayer:  "soft-blocks",
		DoorLayer:  "door-blocks",
		SandLayer:  "sand-blocks",
		SpawnLayer: "PlayerSpawn",
		CellSize:   16,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	Audio = AudioConfig{
		SampleRate:  44100,
		MusicVolume: 0.6,
		FadeSeconds: 1.5,
	}

	UI = UIConfig{
		HardBlockColor:  color.RGBA{R: 100, G: 100, B: 100, A: 255},
		SoftBlockColor:  color.RGBA{R: 60, G: 100, B: 160, A: 255},
		DoorBlockColor:  color.RGBA{R: 160, G: 100, B: 40, A: 255},
		SandBlockColor:  color.RGBA{R: 200, G: 180, B: 100, A: 255},
		PlayerColor:     color.RGBA{R: 100, G: 180, B: 255, A: 255},
		ProjectileColor: color.RGBA{R: 255, G: 255, B: 100, A: 255},
		HUDTextColor:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		OverlayColor:    color.RGBA{R: 0, G: 0, B: 0, A: 160},
		HUDFontSize:     12,
	}
}
