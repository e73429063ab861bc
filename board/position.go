// Package board holds the authoritative per-tile state of a loaded level:
// grid geometry, collision, temperature and light fields, and the
// coalescing rebuild protocol that keeps them in sync with the entity
// snapshot supplied by the map loader and the game loop.
package board

import "math"

// Position is a continuous world-space coordinate. X and Y are measured in
// tiles, Z is the floor index. GlobalZ is a render-order tiebreak only and
// never participates in grid math.
type Position struct {
	X, Y, Z float32
	GlobalZ float32
}

// ToBoardPosition returns the tile containing this position. The round trip
// through BoardPosition is lossy: the sub-tile offset is not recoverable.
func (p Position) ToBoardPosition() BoardPosition {
	return BoardPosition{
		X: int(math.Floor(float64(p.X))),
		Y: int(math.Floor(float64(p.Y))),
		Z: int(math.Floor(float64(p.Z))),
	}
}

// Distance returns the Euclidean distance to another position.
func (p Position) Distance(other Position) float32 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	dz := float64(p.Z - other.Z)
	return float32(math.Sqrt(dx*dx + dy*dy + dz*dz))
}
