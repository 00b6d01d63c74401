package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/platformkit/shared/gamemath"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="16" tileheight="16" infinite="0" nextlayerid="5" nextobjectid="8">
 <objectgroup id="1" name="hard-blocks">
  <object id="1" x="0" y="64" width="160" height="16"/>
  <object id="2" x="144" y="0" width="16" height="64"/>
  <object id="3" x="40" y="40"><point/></object>
 </objectgroup>
 <objectgroup id="2" name="soft-blocks">
  <object id="4" x="32" y="32" width="48" height="8"/>
 </objectgroup>
 <objectgroup id="3" name="PlayerSpawn">
  <object id="5" x="96" y="48">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="6" x="16" y="48">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/test.tmx":  {Data: []byte(testTMX)},
		"levels/other.tmx": {Data: []byte(testTMX)},
	}
}

func TestLoadFlipsToWorldSpace(t *testing.T) {
	level, err := Load(testFS(), "levels/test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if level.Name != "test" {
		t.Errorf("Name = %q, want test", level.Name)
	}
	if level.MapWidth != 160 || level.MapHeight != 80 {
		t.Errorf("map size = %dx%d, want 160x80", level.MapWidth, level.MapHeight)
	}

	wantHard := []gamemath.Rect{
		{X: 0, Y: 0, W: 160, H: 16},
		{X: 144, Y: 16, W: 16, H: 64},
	}
	if len(level.HardBlocks) != len(wantHard) {
		t.Fatalf("len(HardBlocks) = %d, want %d", len(level.HardBlocks), len(wantHard))
	}
	for i, want := range wantHard {
		if level.HardBlocks[i] != want {
			t.Errorf("HardBlocks[%d] = %+v, want %+v", i, level.HardBlocks[i], want)
		}
	}

	if len(level.SoftBlocks) != 1 || level.SoftBlocks[0] != (gamemath.Rect{X: 32, Y: 40, W: 48, H: 8}) {
		t.Errorf("SoftBlocks = %+v", level.SoftBlocks)
	}
	if level.DoorBlocks != nil || level.SandBlocks != nil {
		t.Errorf("missing layers should stay empty, got door=%v sand=%v", level.DoorBlocks, level.SandBlocks)
	}
}

func TestLoadSortsSpawnPoints(t *testing.T) {
	level, err := Load(testFS(), "levels/test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(level.SpawnPoints) != 2 {
		t.Fatalf("len(SpawnPoints) = %d, want 2", len(level.SpawnPoints))
	}
	first := level.SpawnPoints[0]
	if first.X != 16 || first.Y != 32 || first.Index != 0 {
		t.Errorf("SpawnPoints[0] = %+v, want {16 32 0}", first)
	}
	if level.SpawnPoints[1].X != 96 {
		t.Errorf("SpawnPoints[1].X = %v, want 96", level.SpawnPoints[1].X)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(testFS(), "levels/nope.tmx"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadAll(t *testing.T) {
	levels, names, err := LoadAll(testFS(), "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) != 2 || names[0] != "other" || names[1] != "test" {
		t.Errorf("names = %v, want [other test]", names)
	}
	if levels["test"] == nil {
		t.Error("levels[test] missing")
	}

	if _, _, err := LoadAll(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected error for empty directory")
	}
}
