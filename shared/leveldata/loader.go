package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file with the default layer names. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	return LoadWithLayers(fsys, tmxPath, DefaultLayers())
}

// LoadWithLayers parses a TMX file and returns its static geometry and spawn
// points. Missing layers leave the matching category empty.
func LoadWithLayers(fsys fs.FS, tmxPath string, layers Layers) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}
	mapHeight := float64(level.MapHeight)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "":
			continue
		case layers.Hard:
			level.HardBlocks = append(level.HardBlocks, rectangles(og, mapHeight)...)
		case layers.Soft:
			level.SoftBlocks = append(level.SoftBlocks, rectangles(og, mapHeight)...)
		case layers.Door:
			level.DoorBlocks = append(level.DoorBlocks, rectangles(og, mapHeight)...)
		case layers.Sand:
			level.SandBlocks = append(level.SandBlocks, rectangles(og, mapHeight)...)
		case layers.Spawn:
			for _, o := range og.Objects {
				level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     mapHeight - o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].X < level.SpawnPoints[j].X
	})

	log.Debug("level loaded",
		"path", tmxPath,
		"hard", len(level.HardBlocks),
		"soft", len(level.SoftBlocks),
		"door", len(level.DoorBlocks),
		"sand", len(level.SandBlocks),
		"spawns", len(level.SpawnPoints),
	)

	return level, nil
}

// rectangles converts the rectangle objects of a group into y-up world
// rectangles. Point, polygon and zero-sized objects are skipped.
func rectangles(og *tiled.ObjectGroup, mapHeight float64) []gamemath.Rect {
	rects := make([]gamemath.Rect, 0, len(og.Objects))
	for _, o := range og.Objects {
		if o.Width <= 0 || o.Height <= 0 || len(o.Polygons) > 0 || len(o.PolyLines) > 0 {
			continue
		}
		rects = append(rects, gamemath.NewRect(o.X, mapHeight-o.Y-o.Height, o.Width, o.Height))
	}
	return rects
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
