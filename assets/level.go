package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// Layer and object names the loader understands.
const (
	TileLayerName   = "tiles"
	ObjectGroupName = "objects"

	ClassPlayer   = "Player"
	ClassParallax = "Parallax"

	PropComponents = "components"
	PropSpeedMult  = "speed_mult"
	PropOffset     = "offset"
	PropImage      = "image"
)

// Spawn is anything placed in a level. Positions are centres in y-up world
// units.
type Spawn struct {
	Pos        math.Vec2
	Size       math.Vec2
	Components []string // Registry entries, "Name" or "Name{params}"
}

type ObjectSpawn struct {
	Spawn
	Name  string
	Class string
}

type ParallaxSpawn struct {
	Spawn
	Image     string
	SpeedMult math.Vec2
	Offset    math.Vec2
}

type Level struct {
	Name        string
	Width       float64
	Height      float64
	TileSize    math.Vec2
	Tiles       []Spawn
	Objects     []ObjectSpawn
	Parallax    []ParallaxSpawn
	PlayerSpawn *Spawn
}

// ListLevels returns the embedded level files in name order.
func ListLevels() ([]string, error) {
	entries, err := fs.ReadDir(levelFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadEmbeddedLevel loads one of the levels compiled into the binary.
func LoadEmbeddedLevel(name string) (*Level, error) {
	return LoadLevel(levelFS, path.Join("levels", name))
}

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass the
// embedded levels or os.DirFS for levels on disk.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	level := &Level{
		Name:     tmxPath,
		Width:    float64(levelMap.Width) * tileW,
		Height:   float64(levelMap.Height) * tileH,
		TileSize: math.NewVec2(tileW, tileH),
	}

	// Tiled is y-down with the origin at the top-left; the world is y-up.
	flipY := func(y float64) float64 { return level.Height - y }

	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayerName {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var comps []string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					comps = SplitComponents(tilesetTile.Properties.GetString(PropComponents))
				}

				level.Tiles = append(level.Tiles, Spawn{
					Pos: math.NewVec2(
						float64(x)*tileW+tileW*0.5,
						flipY(float64(y)*tileH+tileH*0.5),
					),
					Size:       math.NewVec2(tileW, tileH),
					Components: comps,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != ObjectGroupName {
			continue
		}
		for _, o := range og.Objects {
			spawn := Spawn{
				Pos:        math.NewVec2(o.X+o.Width*0.5, flipY(o.Y+o.Height*0.5)),
				Size:       math.NewVec2(o.Width, o.Height),
				Components: SplitComponents(o.Properties.GetString(PropComponents)),
			}

			class := o.Class
			if class == "" {
				class = o.Type //nolint:staticcheck // TMX uses type= attribute
			}

			switch class {
			case ClassPlayer:
				if level.PlayerSpawn != nil {
					return nil, fmt.Errorf("%s: more than one %s object", tmxPath, ClassPlayer)
				}
				s := spawn
				level.PlayerSpawn = &s
			case ClassParallax:
				speed, err := ParseVec2(o.Properties.GetString(PropSpeedMult))
				if err != nil {
					return nil, fmt.Errorf("%s: parallax %q %s: %w", tmxPath, o.Name, PropSpeedMult, err)
				}
				offset, err := ParseVec2(o.Properties.GetString(PropOffset))
				if err != nil {
					return nil, fmt.Errorf("%s: parallax %q %s: %w", tmxPath, o.Name, PropOffset, err)
				}
				level.Parallax = append(level.Parallax, ParallaxSpawn{
					Spawn:     spawn,
					Image:     o.Properties.GetString(PropImage),
					SpeedMult: speed,
					Offset:    offset,
				})
			default:
				level.Objects = append(level.Objects, ObjectSpawn{
					Spawn: spawn,
					Name:  o.Name,
					Class: class,
				})
			}
		}
	}

	return level, nil
}

// SplitComponents splits a components property into registry entries. Entries
// are separated by newlines or semicolons; blank entries are dropped.
func SplitComponents(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == ';'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// ParseVec2 parses "x, y". An empty string is the zero vector.
func ParseVec2(s string) (math.Vec2, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.Vec2{}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return math.Vec2{}, fmt.Errorf("expected \"x, y\", got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return math.Vec2{}, fmt.Errorf("parse x of %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return math.Vec2{}, fmt.Errorf("parse y of %q: %w", s, err)
	}
	return math.NewVec2(x, y), nil
}
