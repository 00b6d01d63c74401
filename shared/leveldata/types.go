// Package leveldata provides TMX level parsing for static collision geometry.
// It has no dependencies on ebitengine, donburi, or resolv.
//
// Rectangles are returned in y-up world space: Tiled's y-down object
// coordinates are flipped against the map height.
package leveldata

import "github.com/automoto/platformkit/shared/gamemath"

// Level holds all collision-relevant data parsed from a TMX level file.
type Level struct {
	Name        string
	HardBlocks  []gamemath.Rect
	SoftBlocks  []gamemath.Rect
	DoorBlocks  []gamemath.Rect
	SandBlocks  []gamemath.Rect
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
	TileWidth   int
	TileHeight  int
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Layers names the object groups each block category is read from.
type Layers struct {
	Hard  string
	Soft  string
	Door  string
	Sand  string
	Spawn string
}

// DefaultLayers matches the layer names used by the bundled levels.
func DefaultLayers() Layers {
	return Layers{
		Hard:  "hard-blocks",
		Soft:  "soft-blocks",
		Door:  "door-blocks",
		Sand:  "sand-blocks",
		Spawn: "PlayerSpawn",
	}
}
