package data

import (
	"testing"

	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/automoto/platformkit/shared/leveldata"
)

func TestSandboxLevel(t *testing.T) {
	level, err := leveldata.Load(FS, SandboxLevel)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	counts := []struct {
		name     string
		got      int
		expected int
	}{
		{"hard", len(level.HardBlocks), 6},
		{"soft", len(level.SoftBlocks), 4},
		{"door", len(level.DoorBlocks), 1},
		{"sand", len(level.SandBlocks), 1},
		{"spawns", len(level.SpawnPoints), 2},
	}
	for _, c := range counts {
		if c.got != c.expected {
			t.Errorf("%s blocks = %d, want %d", c.name, c.got, c.expected)
		}
	}

	if level.MapWidth != 960 || level.MapHeight != 368 {
		t.Errorf("map size = %dx%d, want 960x368", level.MapWidth, level.MapHeight)
	}
	if floor := gamemath.NewRect(0, 0, 960, 16); level.HardBlocks[0] != floor {
		t.Errorf("floor = %+v, want %+v", level.HardBlocks[0], floor)
	}
	if sp := level.SpawnPoints[0]; sp.X != 48 || sp.Y != 16 || sp.Index != 0 {
		t.Errorf("first spawn = %+v, want {48 16 0}", sp)
	}
}

func TestShootSoundEmbedded(t *testing.T) {
	data, err := FS.ReadFile("sfx/shoot.wav")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) < 44 || string(data[:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Error("shoot.wav is not a RIFF/WAVE file")
	}
}
