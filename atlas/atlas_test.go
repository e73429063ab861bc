package atlas

import (
	"strings"
	"testing"

	"github.com/JoanGoAl/unhaunter/board"
)

func TestParseAtlasConfig(t *testing.T) {
	jsonData := `{
		"name": "house_tiles",
		"layer": "base",
		"image_path": "tiles.png",
		"tile_width": 16,
		"tile_height": 16,
		"tiles": [
			{
				"name": "floor_wood",
				"atlas_x": 0,
				"atlas_y": 0,
				"properties": {
					"type": "floor",
					"walkable": true,
					"see_through": true
				}
			},
			{
				"name": "lamp_table",
				"atlas_x": 3,
				"atlas_y": 1,
				"properties": {
					"type": "lamp",
					"see_through": true,
					"emits_light": true,
					"lux": 10,
					"color": [1.0, 0.9, 0.7]
				}
			}
		]
	}`

	config, err := ParseAtlasConfig([]byte(jsonData))
	if err != nil {
		t.Fatalf("Failed to parse atlas config: %v", err)
	}

	if config.Name != "house_tiles" {
		t.Errorf("Expected name 'house_tiles', got '%s'", config.Name)
	}
	if config.TileWidth != 16 || config.TileHeight != 16 {
		t.Errorf("Expected 16x16 tiles, got %dx%d", config.TileWidth, config.TileHeight)
	}
	if len(config.Tiles) != 2 {
		t.Fatalf("Expected 2 tiles, got %d", len(config.Tiles))
	}

	lamp := config.Tiles[1]
	if lamp.AtlasX != 3 || lamp.AtlasY != 1 {
		t.Errorf("Expected atlas position (3, 1), got (%d, %d)", lamp.AtlasX, lamp.AtlasY)
	}
	if !lamp.Properties.EmitsLight || lamp.Properties.Lux != 10 {
		t.Errorf("Expected an emitting lamp at 10 lux, got %+v", lamp.Properties)
	}
}

func TestParseAtlasConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		json    string
		wantErr string
	}{
		{
			name:    "not json",
			json:    `{`,
			wantErr: "parse",
		},
		{
			name:    "zero tile width",
			json:    `{"image_path": "a.png", "tile_width": 0, "tile_height": 16}`,
			wantErr: "tile dimensions",
		},
		{
			name:    "missing image path",
			json:    `{"tile_width": 16, "tile_height": 16}`,
			wantErr: "image_path",
		},
	}

	for _, c := range cases {
		_, err := ParseAtlasConfig([]byte(c.json))
		if err == nil {
			t.Errorf("%s: expected error, got nil", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.wantErr) {
			t.Errorf("%s: expected error containing %q, got %q", c.name, c.wantErr, err.Error())
		}
	}
}

func TestTileBehaviorMapping(t *testing.T) {
	floor := TileDefinition{
		Name:       "floor_wood",
		Properties: TileProperties{Type: "floor", Walkable: true, SeeThrough: true},
	}
	b := floor.Behavior()
	if b.Class != board.ClassFloor {
		t.Errorf("Expected ClassFloor, got %v", b.Class)
	}
	if !b.Movement.Walkable || b.Movement.PlayerCollision {
		t.Error("Expected walkable floor with no player collision")
	}
	// See-through tiles without an explicit transmissivity default to 1.
	if b.Light.Transmissivity != 1.0 {
		t.Errorf("Expected default transmissivity 1.0, got %f", b.Light.Transmissivity)
	}

	wall := TileDefinition{
		Name:       "wall_brick",
		Properties: TileProperties{Type: "wall", Transmissivity: 0.01},
	}
	b = wall.Behavior()
	if b.Class != board.ClassWall {
		t.Errorf("Expected ClassWall, got %v", b.Class)
	}
	if !b.Movement.PlayerCollision {
		t.Error("Expected non-walkable wall to collide with the player")
	}
	if b.Light.SeeThrough {
		t.Error("Expected wall to block light")
	}
}

func TestTileBehaviorLampDefaults(t *testing.T) {
	lamp := TileDefinition{
		Name: "lamp_table",
		Properties: TileProperties{
			Type:       "lamp",
			SeeThrough: true,
			EmitsLight: true,
			Lux:        10,
		},
	}
	b := lamp.Behavior()
	if b.Class != board.ClassLamp {
		t.Errorf("Expected ClassLamp, got %v", b.Class)
	}
	// Unspecified color falls back to neutral white.
	if b.Light.Color != board.ColorWhite {
		t.Errorf("Expected white emission color, got %+v", b.Light.Color)
	}
	if b.Light.EmissivityLumens() != 10 {
		t.Errorf("Expected 10 lumens, got %f", b.Light.EmissivityLumens())
	}
	if b.Light.Additional.Visible != 10 {
		t.Errorf("Expected visible channel 10, got %f", b.Light.Additional.Visible)
	}
}

func TestTileBehaviorDoorState(t *testing.T) {
	door := TileDefinition{
		Name:       "door_wood",
		Properties: TileProperties{Type: "door", Transmissivity: 0.01},
	}
	b := door.Behavior()
	if !b.IsDoor() {
		t.Error("Expected door class")
	}
	if b.IsOpen() {
		t.Error("Expected door to default to closed")
	}

	door.Properties.Open = true
	if !door.Behavior().IsOpen() {
		t.Error("Expected open property to produce an open door")
	}

	// Unknown tile types fall back to ClassProp.
	crate := TileDefinition{Name: "crate", Properties: TileProperties{Type: "furniture"}}
	if got := crate.Behavior().Class; got != board.ClassProp {
		t.Errorf("Expected unknown type to map to ClassProp, got %v", got)
	}
}
