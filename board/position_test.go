package board

import (
	"math"
	"testing"
)

func TestToBoardPositionFloors(t *testing.T) {
	cases := []struct {
		pos  Position
		want BoardPosition
	}{
		{Position{X: 0, Y: 0}, BoardPosition{X: 0, Y: 0}},
		{Position{X: 0.5, Y: 0.5}, BoardPosition{X: 0, Y: 0}},
		{Position{X: 2.99, Y: 3.01}, BoardPosition{X: 2, Y: 3}},
		{Position{X: -0.5, Y: -1.5}, BoardPosition{X: -1, Y: -2}},
		{Position{X: 5, Y: 5, Z: 1.7}, BoardPosition{X: 5, Y: 5, Z: 1}},
	}

	for _, c := range cases {
		got := c.pos.ToBoardPosition()
		if got != c.want {
			t.Errorf("Expected (%.2f, %.2f, %.2f) to map to tile %v, got %v",
				c.pos.X, c.pos.Y, c.pos.Z, c.want, got)
		}
	}
}

func TestBoardPositionRoundTrip(t *testing.T) {
	// Tile -> center -> tile must be the identity.
	tile := BoardPosition{X: 7, Y: 3}
	if got := tile.ToPositionCenter().ToBoardPosition(); got != tile {
		t.Errorf("Expected center round trip to return %v, got %v", tile, got)
	}

	// The sub-tile offset is discarded going through the tile grid.
	pos := Position{X: 7.8, Y: 3.2}
	back := pos.ToBoardPosition().ToPosition()
	if back.X != 7 || back.Y != 3 {
		t.Errorf("Expected round trip of (7.8, 3.2) to land on tile origin (7, 3), got (%.2f, %.2f)", back.X, back.Y)
	}
}

func TestPositionDistance(t *testing.T) {
	a := Position{X: 0, Y: 0}
	b := Position{X: 3, Y: 4}
	if d := a.Distance(b); math.Abs(float64(d)-5) > 1e-6 {
		t.Errorf("Expected distance 5, got %f", d)
	}
	if d := a.Distance(a); d != 0 {
		t.Errorf("Expected zero distance to self, got %f", d)
	}
}
