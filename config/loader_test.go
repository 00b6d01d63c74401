package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyKeepsUnsetFields(t *testing.T) {
	savedWeapon, savedPhysics := Weapon, Physics
	t.Cleanup(func() {
		Weapon, Physics = savedWeapon, savedPhysics
	})

	doc := []byte(`
weapon:
  shootingInterval: 0.25
  maxCapacity: 5
physics:
  jump: 400
`)
	if err := Apply(doc); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	if Weapon.ShootingInterval != 0.25 {
		t.Errorf("ShootingInterval = %v, expected 0.25", Weapon.ShootingInterval)
	}
	if Weapon.MaxCapacity != 5 {
		t.Errorf("MaxCapacity = %v, expected 5", Weapon.MaxCapacity)
	}
	if Weapon.UnlimitedAmmo != savedWeapon.UnlimitedAmmo {
		t.Errorf("UnlimitedAmmo changed to %v", Weapon.UnlimitedAmmo)
	}
	if Physics.Jump != 400 {
		t.Errorf("Jump = %v, expected 400", Physics.Jump)
	}
	if Physics.TerminalVelocity != savedPhysics.TerminalVelocity {
		t.Errorf("TerminalVelocity changed to %v", Physics.TerminalVelocity)
	}
}

func TestLoadCustomPath(t *testing.T) {
	savedDebug := Debug
	t.Cleanup(func() { Debug = savedDebug })

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("debug:\n  showBounds: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	applied, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if applied != path {
		t.Errorf("Load() applied %q, expected %q", applied, path)
	}
	if !Debug.ShowBounds {
		t.Error("expected ShowBounds to be enabled")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
}

func TestApplyRejectsMalformedYAML(t *testing.T) {
	if err := Apply([]byte("weapon: [")); err == nil {
		t.Fatal("expected a parse error")
	}
}
