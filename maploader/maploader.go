// Package maploader loads level files and turns them into the entity
// snapshot consumed by the board rebuilds. The on-disk format is plain
// JSON: a 2D grid of tile names plus a list of placed objects (doors,
// lamps, furniture) that override or stack on the base grid.
package maploader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/JoanGoAl/unhaunter/atlas"
	"github.com/JoanGoAl/unhaunter/board"
)

// SpawnPoint defines the player spawn location in tile coordinates.
type SpawnPoint struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// ObjectPlacement places a named atlas tile at a grid position, optionally
// overriding its initial state (doors start open, lamps start switched off).
type ObjectPlacement struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Tile string `json:"tile"`
	Open bool   `json:"open,omitempty"` // Initial door state override
	Off  bool   `json:"off,omitempty"`  // Start with light emission disabled
}

// MapData represents the loaded map configuration.
type MapData struct {
	Name           string            `json:"name"`
	Width          int               `json:"width"`
	Height         int               `json:"height"`
	TileSize       int               `json:"tile_size"`        // Atlas sprite tile size (e.g., 16)
	RenderTileSize int               `json:"render_tile_size"` // Rendered tile size in game (e.g., 64)
	AtlasPath      string            `json:"atlas"`
	AmbientTemp    float32           `json:"ambient_temp,omitempty"`
	PlayerSpawn    SpawnPoint        `json:"player_spawn"`
	Tiles          [][]string        `json:"tiles"` // 2D array of tile names [y][x]
	Objects        []ObjectPlacement `json:"objects,omitempty"`
}

// Map represents a loaded map with its atlas.
type Map struct {
	Data  *MapData
	Atlas *atlas.Atlas
}

// ParseMapData parses and validates a map file's contents.
func ParseMapData(data []byte) (*MapData, error) {
	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map data: %w", err)
	}
	if err := validateMapData(&mapData); err != nil {
		return nil, err
	}
	return &mapData, nil
}

// LoadMap loads a map from a JSON file and its associated atlas.
func LoadMap(mapPath string) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	mapData, err := ParseMapData(data)
	if err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", mapPath, err)
	}

	atlasObj, err := atlas.LoadAtlas(mapData.AtlasPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas %s: %w", mapData.AtlasPath, err)
	}

	return &Map{Data: mapData, Atlas: atlasObj}, nil
}

// validateMapData checks if the map data is valid.
func validateMapData(data *MapData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}

	if data.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %d", data.TileSize)
	}

	if data.RenderTileSize <= 0 {
		return fmt.Errorf("invalid render tile size: %d", data.RenderTileSize)
	}

	if len(data.Tiles) != data.Height {
		return fmt.Errorf("tile grid has %d rows, expected %d", len(data.Tiles), data.Height)
	}
	for y, row := range data.Tiles {
		if len(row) != data.Width {
			return fmt.Errorf("tile row %d has %d columns, expected %d", y, len(row), data.Width)
		}
	}

	for i, obj := range data.Objects {
		if obj.X < 0 || obj.X >= data.Width || obj.Y < 0 || obj.Y >= data.Height {
			return fmt.Errorf("object %d (%s) placed out of bounds at (%d, %d)", i, obj.Tile, obj.X, obj.Y)
		}
		if obj.Tile == "" {
			return fmt.Errorf("object %d has no tile name", i)
		}
	}

	if data.PlayerSpawn.X < 0 || data.PlayerSpawn.X >= float32(data.Width) ||
		data.PlayerSpawn.Y < 0 || data.PlayerSpawn.Y >= float32(data.Height) {
		return fmt.Errorf("player spawn (%.1f, %.1f) outside map bounds", data.PlayerSpawn.X, data.PlayerSpawn.Y)
	}

	return nil
}

// Size returns the board dimensions of the map. Maps are currently a single
// floor deep.
func (m *MapData) Size() board.MapSize {
	return board.MapSize{X: m.Width, Y: m.Height, Z: 1}
}

// GetTileAt returns the tile name at grid coordinates.
func (m *Map) GetTileAt(x, y int) (string, error) {
	if y < 0 || y >= len(m.Data.Tiles) || x < 0 || x >= len(m.Data.Tiles[y]) {
		return "", fmt.Errorf("tile coordinates out of bounds: (%d, %d)", x, y)
	}
	return m.Data.Tiles[y][x], nil
}

// BuildEntities produces the behavior snapshot for the whole map: one entry
// per non-empty grid tile plus one per placed object. This is the collection
// the board and lighting rebuilds consume.
func (m *Map) BuildEntities() ([]board.Entity, error) {
	return BuildEntities(m.Data, m.Atlas.TilesByName)
}

// BuildEntities is the atlas-lookup driven core of Map.BuildEntities,
// separated so it can run against a bare tile table.
func BuildEntities(data *MapData, tiles map[string]*atlas.TileDefinition) ([]board.Entity, error) {
	var entities []board.Entity

	for y, row := range data.Tiles {
		for x, name := range row {
			if name == "" {
				continue
			}
			def, ok := tiles[name]
			if !ok {
				return nil, fmt.Errorf("tile (%d, %d) references unknown atlas tile %q", x, y, name)
			}
			entities = append(entities, board.Entity{
				Position: board.Position{X: float32(x), Y: float32(y)},
				Behavior: def.Behavior(),
			})
		}
	}

	for i, obj := range data.Objects {
		def, ok := tiles[obj.Tile]
		if !ok {
			return nil, fmt.Errorf("object %d references unknown atlas tile %q", i, obj.Tile)
		}
		b := def.Behavior()
		if b.Class == board.ClassDoor {
			b = ApplyDoorState(b, obj.Open)
		}
		if obj.Off {
			b.Light.EmitsLight = false
		}
		entities = append(entities, board.Entity{
			Position: board.Position{X: float32(obj.X), Y: float32(obj.Y)},
			Behavior: b,
		})
	}

	return entities, nil
}

// ApplyDoorState returns the door behavior adjusted for being open or
// closed: an open door is walkable and lets light through, a closed one
// blocks both.
func ApplyDoorState(b board.Behavior, open bool) board.Behavior {
	if open {
		b.State = board.StateOpen
	} else {
		b.State = board.StateClosed
	}
	b.Movement.Walkable = open
	b.Movement.PlayerCollision = !open
	b.Light.SeeThrough = open
	if open {
		b.Light.Transmissivity = 1.0
	} else {
		b.Light.Transmissivity = 0.01
	}
	return b
}
