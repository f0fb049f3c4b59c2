package factory

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/wallhop/archetypes"
	"github.com/automoto/wallhop/assets"
	"github.com/automoto/wallhop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var ErrNoPlayerSpawn = errors.New("level has no player spawn")

// CreateTile spawns a level tile with the components listed on its tileset
// tile.
func CreateTile(ecs *ecs.ECS, spawn assets.Spawn) (*donburi.Entry, error) {
	tile := archetypes.Tile.Spawn(ecs)
	components.Position.SetValue(tile, spawn.Pos)
	components.Size.SetValue(tile, spawn.Size)

	if err := ApplyComponents(tile, spawn.Components); err != nil {
		ecs.World.Remove(tile.Entity())
		return nil, err
	}
	return tile, nil
}

// CreateObject spawns a generic level object. Objects without a size collide
// as points.
func CreateObject(ecs *ecs.ECS, spawn assets.ObjectSpawn) (*donburi.Entry, error) {
	obj := archetypes.Object.Spawn(ecs)
	components.Position.SetValue(obj, spawn.Pos)
	if spawn.Size.X == 0 && spawn.Size.Y == 0 {
		obj.RemoveComponent(components.Size)
	} else {
		components.Size.SetValue(obj, spawn.Size)
	}

	if err := ApplyComponents(obj, spawn.Components); err != nil {
		ecs.World.Remove(obj.Entity())
		return nil, fmt.Errorf("object %q: %w", spawn.Name, err)
	}
	return obj, nil
}

func CreateParallax(ecs *ecs.ECS, spawn assets.ParallaxSpawn) *donburi.Entry {
	layer := archetypes.Parallax.Spawn(ecs)
	components.Position.SetValue(layer, spawn.Pos)
	components.Size.SetValue(layer, spawn.Size)
	components.Parallax.SetValue(layer, components.ParallaxData{
		SpeedMult: spawn.SpeedMult,
		Offset:    spawn.Offset,
	})
	return layer
}

// CreateLevel builds every entity of level: tiles, objects, parallax layers,
// the player and the camera following it. Broken tiles or objects are
// skipped with a warning; a missing player spawn is an error.
func CreateLevel(ecs *ecs.ECS, level *assets.Level) (*donburi.Entry, error) {
	if level.PlayerSpawn == nil {
		return nil, fmt.Errorf("%s: %w", level.Name, ErrNoPlayerSpawn)
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		Name:        level.Name,
		Size:        math.NewVec2(level.Width, level.Height),
		PlayerSpawn: level.PlayerSpawn.Pos,
	})

	for _, t := range level.Tiles {
		if _, err := CreateTile(ecs, t); err != nil {
			log.Printf("Warning: %s: tile at %v: %v", level.Name, t.Pos, err)
		}
	}
	for _, o := range level.Objects {
		if _, err := CreateObject(ecs, o); err != nil {
			log.Printf("Warning: %s: %v", level.Name, err)
		}
	}
	for _, p := range level.Parallax {
		CreateParallax(ecs, p)
	}

	player := CreatePlayer(ecs, level.PlayerSpawn.Pos)
	if err := ApplyComponents(player, level.PlayerSpawn.Components); err != nil {
		log.Printf("Warning: %s: player: %v", level.Name, err)
	}
	CreateCamera(ecs, level.PlayerSpawn.Pos)

	return entry, nil
}
