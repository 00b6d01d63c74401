package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Overrides is the YAML document accepted by Load. Sections that are absent
// keep their compiled-in defaults.
type Overrides struct {
	Window     *Config           `yaml:"window"`
	Weapon     *WeaponConfig     `yaml:"weapon"`
	Projectile *ProjectileConfig `yaml:"projectile"`
	Physics    *PhysicsConfig    `yaml:"physics"`
	Player     *PlayerConfig     `yaml:"player"`
	Level      *LevelConfig      `yaml:"level"`
	Camera     *CameraConfig     `yaml:"camera"`
	Audio      *AudioConfig      `yaml:"audio"`
	Debug      *DebugConfig      `yaml:"debug"`
}

// Load applies YAML overrides to the global configuration.
// Search order: customPath -> ~/.platformkit/config.yaml -> ./configs/config.yaml.
// It returns the path that was applied, or "" when only defaults are in use.
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	candidates := []string{"configs/config.yaml"}
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, nil
	}

	return "", nil
}

// Apply decodes a YAML override document into the globals. Each section is
// decoded on top of the current values so partial sections are fine.
func Apply(data []byte) error {
	o := Overrides{
		Window:     C,
		Weapon:     &Weapon,
		Projectile: &Projectile,
		Physics:    &Physics,
		Player:     &Player,
		Level:      &Level,
		Camera:     &Camera,
		Audio:      &Audio,
		Debug:      &Debug,
	}
	return yaml.Unmarshal(data, &o)
}

func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformkit", name)
}
