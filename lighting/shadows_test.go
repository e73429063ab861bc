package lighting

import (
	"testing"

	"github.com/JoanGoAl/unhaunter/board"
)

// The shadow caster is tuned for look rather than closed-form output, so
// these tests pin down qualitative structure: attenuation, occlusion and
// the exposure contract.

func TestRebuildShadowsAttenuatesWithDistance(t *testing.T) {
	bf := board.New(board.MapSize{X: 21, Y: 21, Z: 1})
	entities := append(openRoom(21, 21), lampEntity(10, 10, 10.0, true))

	bf.RebuildCollisionField(entities)
	RebuildShadows(bf, entities)

	near := bf.LightAt(board.BoardPosition{X: 11, Y: 10}).Lux
	mid := bf.LightAt(board.BoardPosition{X: 15, Y: 10}).Lux
	far := bf.LightAt(board.BoardPosition{X: 20, Y: 10}).Lux

	if near <= 0 {
		t.Fatalf("Expected light next to the source, got %f lux", near)
	}
	if !(near > mid && mid > far) {
		t.Errorf("Expected lux to fall with distance, got near %f, mid %f, far %f", near, mid, far)
	}
}

func TestRebuildShadowsWallCastsShadow(t *testing.T) {
	bf := board.New(board.MapSize{X: 21, Y: 21, Z: 1})
	entities := append(openRoom(21, 21), lampEntity(10, 10, 10.0, true))
	// Short wall segment east of the source.
	for _, y := range []int{9, 10, 11} {
		entities = append(entities, wallEntity(13, y))
	}

	bf.RebuildCollisionField(entities)
	RebuildShadows(bf, entities)

	// Directly behind the wall versus the unobstructed mirror tile west of
	// the source.
	shadowed := bf.LightAt(board.BoardPosition{X: 16, Y: 10}).Lux
	open := bf.LightAt(board.BoardPosition{X: 4, Y: 10}).Lux

	if shadowed >= open {
		t.Errorf("Expected shadowed tile (%f) to be darker than the open mirror tile (%f)", shadowed, open)
	}
}

func TestRebuildShadowsSourceInsideWallStaysLocal(t *testing.T) {
	// A light embedded in an opaque tile does not spread.
	bf := board.New(board.MapSize{X: 11, Y: 11, Z: 1})
	entities := append(openRoom(11, 11), board.Entity{
		Position: board.BoardPosition{X: 5, Y: 5}.ToPosition(),
		Behavior: board.Behavior{
			Class:    board.ClassWall,
			Movement: board.Movement{PlayerCollision: true},
			Light: board.Light{
				EmitsLight:     true,
				Emissivity:     10.0,
				SeeThrough:     false,
				Transmissivity: 0.01,
				Color:          board.ColorWhite,
			},
		},
	})

	bf.RebuildCollisionField(entities)
	RebuildShadows(bf, entities)

	if lux := bf.LightAt(board.BoardPosition{X: 9, Y: 5}).Lux; lux > 0.01 {
		t.Errorf("Expected essentially no light to escape the wall, got %f lux", lux)
	}
}

func TestRebuildShadowsSetsExposure(t *testing.T) {
	bf := board.New(board.MapSize{X: 11, Y: 11, Z: 1})
	entities := append(openRoom(11, 11), lampEntity(5, 5, 10.0, true))

	bf.RebuildCollisionField(entities)
	RebuildShadows(bf, entities)

	if bf.ExposureLux <= 1.0 {
		t.Errorf("Expected exposure above the dark-map baseline, got %f", bf.ExposureLux)
	}

	// Every tile must have an entry after a rebuild.
	if len(bf.LightField) != bf.MapSize.Tiles() {
		t.Errorf("Expected %d light field entries, got %d", bf.MapSize.Tiles(), len(bf.LightField))
	}
}

func TestRebuildFallsBackWithoutPrebake(t *testing.T) {
	// Rebuild on a board with no bake must still produce a lit field via
	// the shadow caster.
	bf := board.New(board.MapSize{X: 11, Y: 11, Z: 1})
	entities := append(openRoom(11, 11), lampEntity(5, 5, 10.0, true))

	bf.RebuildCollisionField(entities)
	Rebuild(bf, entities)

	if lux := bf.LightAt(board.BoardPosition{X: 5, Y: 5}).Lux; lux <= 0 {
		t.Errorf("Expected the fallback rebuild to light the lamp tile, got %f lux", lux)
	}
}
