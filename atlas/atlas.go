// Package atlas loads sprite atlases and their per-tile gameplay properties.
// Tile properties are the single source of truth for how a tile behaves in
// the collision and lighting rebuilds.
package atlas

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/JoanGoAl/unhaunter/board"
)

// TileProperties describes how a tile interacts with movement and light.
type TileProperties struct {
	Type           string     `json:"type"`            // floor, wall, door, lamp, prop
	Walkable       bool       `json:"walkable"`        // Entities can stand here
	SeeThrough     bool       `json:"see_through"`     // Light passes through
	GhostCollision bool       `json:"ghost_collision"` // Blocks ghosts as well as the player
	EmitsLight     bool       `json:"emits_light"`     // Light source currently on
	Lux            float32    `json:"lux"`             // Emission intensity
	Color          [3]float32 `json:"color"`           // Emission color (linear RGB)
	Transmissivity float32    `json:"transmissivity"`  // Fraction of light let through
	UltraViolet    float32    `json:"ultraviolet"`     // Extra UV channel emission
	InfraRed       float32    `json:"infrared"`        // Extra IR channel emission
	Open           bool       `json:"open"`            // Initial door state
}

// TileDefinition defines a single tile within an atlas.
type TileDefinition struct {
	Name       string         `json:"name"`    // Semantic name (e.g., "wall_corner_nw")
	AtlasX     int            `json:"atlas_x"` // X position in atlas (in tiles)
	AtlasY     int            `json:"atlas_y"` // Y position in atlas (in tiles)
	Properties TileProperties `json:"properties"`
}

// Behavior converts the tile's properties into the snapshot value consumed
// by the board rebuilds.
func (td *TileDefinition) Behavior() board.Behavior {
	p := td.Properties
	b := board.Behavior{
		Class: classFor(p.Type),
		Movement: board.Movement{
			Walkable:        p.Walkable,
			PlayerCollision: !p.Walkable,
			GhostCollision:  p.GhostCollision,
		},
		Light: board.Light{
			EmitsLight:     p.EmitsLight,
			Emissivity:     p.Lux,
			SeeThrough:     p.SeeThrough,
			Transmissivity: p.Transmissivity,
			Color:          board.Color{R: p.Color[0], G: p.Color[1], B: p.Color[2]},
			Additional: board.LightData{
				Visible:     p.Lux,
				UltraViolet: p.UltraViolet,
				InfraRed:    p.InfraRed,
			},
		},
	}
	// A color of all zeroes means "unspecified": emit neutral white.
	if b.Light.Color == (board.Color{}) {
		b.Light.Color = board.ColorWhite
	}
	if b.Light.Transmissivity == 0 && p.SeeThrough {
		b.Light.Transmissivity = 1.0
	}
	if b.Class == board.ClassDoor {
		if p.Open {
			b.State = board.StateOpen
		} else {
			b.State = board.StateClosed
		}
	}
	return b
}

func classFor(tileType string) board.Class {
	switch tileType {
	case "floor":
		return board.ClassFloor
	case "wall":
		return board.ClassWall
	case "door":
		return board.ClassDoor
	case "lamp":
		return board.ClassLamp
	case "":
		return board.ClassNone
	default:
		return board.ClassProp
	}
}

// AtlasConfig defines the JSON configuration for a sprite atlas.
type AtlasConfig struct {
	Name       string           `json:"name"`        // Atlas name
	Layer      string           `json:"layer"`       // Layer this atlas belongs to (e.g., "base", "objects")
	ImagePath  string           `json:"image_path"`  // Path to the atlas image file
	TileWidth  int              `json:"tile_width"`  // Width of each tile in pixels
	TileHeight int              `json:"tile_height"` // Height of each tile in pixels
	Tiles      []TileDefinition `json:"tiles"`       // Array of tile definitions
}

// Atlas represents a loaded sprite atlas.
type Atlas struct {
	Config      *AtlasConfig
	Image       *ebiten.Image
	TilesByName map[string]*TileDefinition // Quick lookup by name
}

// ParseAtlasConfig parses and validates an atlas configuration.
func ParseAtlasConfig(data []byte) (*AtlasConfig, error) {
	var config AtlasConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse atlas config: %w", err)
	}

	if config.TileWidth <= 0 || config.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile dimensions: %dx%d", config.TileWidth, config.TileHeight)
	}

	if config.ImagePath == "" {
		return nil, fmt.Errorf("image_path is required in atlas config")
	}

	return &config, nil
}

// LoadAtlas loads a sprite atlas from a JSON configuration file and its
// referenced image.
func LoadAtlas(configPath string) (*Atlas, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas config %s: %w", configPath, err)
	}

	config, err := ParseAtlasConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid atlas config %s: %w", configPath, err)
	}

	img, _, err := ebitenutil.NewImageFromFile(config.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas image %s: %w", config.ImagePath, err)
	}

	tilesByName := make(map[string]*TileDefinition)
	for i := range config.Tiles {
		tile := &config.Tiles[i]
		if tile.Name != "" {
			tilesByName[tile.Name] = tile
		}
	}

	return &Atlas{
		Config:      config,
		Image:       img,
		TilesByName: tilesByName,
	}, nil
}

// GetTile returns a tile definition by name.
func (a *Atlas) GetTile(name string) (*TileDefinition, bool) {
	tile, ok := a.TilesByName[name]
	return tile, ok
}

// GetTileSubImage returns the sub-image for a specific tile.
func (a *Atlas) GetTileSubImage(tile *TileDefinition) *ebiten.Image {
	x := tile.AtlasX * a.Config.TileWidth
	y := tile.AtlasY * a.Config.TileHeight
	rect := image.Rect(x, y, x+a.Config.TileWidth, y+a.Config.TileHeight)
	return a.Image.SubImage(rect).(*ebiten.Image)
}

// GetTileSubImageByName returns the sub-image for a tile by name.
func (a *Atlas) GetTileSubImageByName(name string) (*ebiten.Image, error) {
	tile, ok := a.GetTile(name)
	if !ok {
		return nil, fmt.Errorf("tile not found: %s", name)
	}
	return a.GetTileSubImage(tile), nil
}
