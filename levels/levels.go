package levels

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
	"github.com/milk9111/shapeshift/ecs/component"
)

//go:embed *.tmx
var LevelsFS embed.FS

const DefaultLevel = "arena.tmx"

// Object group names read from a map.
const (
	groupPlatforms    = "Platforms"
	groupCollectibles = "Collectibles"
	groupPlayerSpawn  = "PlayerSpawn"
)

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

type Point struct {
	X float64
	Y float64
}

// Level is the gameplay data of a TMX map. Platforms are top-left boxes;
// collectible and spawn positions are centers.
type Level struct {
	Name         string
	Width        int
	Height       int
	Platforms    []Rect
	Collectibles []component.CollectibleSpawn
	Spawn        Point
	HasSpawn     bool
}

// Load parses path from fsys.
func Load(fsys fs.FS, path string) (*Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("levels: load TMX %s: %w", path, err)
	}

	lvl := &Level{
		Name:   path,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlatforms:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				lvl.Platforms = append(lvl.Platforms, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case groupCollectibles:
			for _, o := range og.Objects {
				name := o.Properties.GetString("potion")
				if name == "" {
					name = o.Name
				}
				potion, err := component.ParsePotion(name)
				if err != nil {
					return nil, fmt.Errorf("levels: %s: object %d: %w", path, o.ID, err)
				}
				lvl.Collectibles = append(lvl.Collectibles, component.CollectibleSpawn{
					Type: potion,
					X:    o.X,
					Y:    o.Y,
				})
			}
		case groupPlayerSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				lvl.Spawn = Point{X: o.X, Y: o.Y}
				lvl.HasSpawn = true
			}
		}
	}

	return lvl, nil
}

// LoadEmbedded loads a level shipped with the binary.
func LoadEmbedded(name string) (*Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	return Load(LevelsFS, name)
}
