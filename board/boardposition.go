package board

import "math"

// BoardPosition is a discrete tile coordinate on the 3D grid. It is the
// identity key for all per-tile maps.
type BoardPosition struct {
	X, Y, Z int
}

// ToPosition returns the continuous position of the tile origin.
func (p BoardPosition) ToPosition() Position {
	return Position{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
}

// ToPositionCenter returns the continuous position of the tile center.
func (p BoardPosition) ToPositionCenter() Position {
	return Position{X: float32(p.X) + 0.5, Y: float32(p.Y) + 0.5, Z: float32(p.Z)}
}

// Left returns the tile one step in -X, clamped at the grid edge.
func (p BoardPosition) Left() BoardPosition {
	return BoardPosition{X: max(p.X-1, 0), Y: p.Y, Z: p.Z}
}

// Right returns the tile one step in +X.
func (p BoardPosition) Right() BoardPosition {
	return BoardPosition{X: p.X + 1, Y: p.Y, Z: p.Z}
}

// Top returns the tile one step in -Y, clamped at the grid edge.
func (p BoardPosition) Top() BoardPosition {
	return BoardPosition{X: p.X, Y: max(p.Y-1, 0), Z: p.Z}
}

// Bottom returns the tile one step in +Y.
func (p BoardPosition) Bottom() BoardPosition {
	return BoardPosition{X: p.X, Y: p.Y + 1, Z: p.Z}
}

// Distance returns the Euclidean distance to another tile.
func (p BoardPosition) Distance(other BoardPosition) float32 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	dz := float64(p.Z - other.Z)
	return float32(math.Sqrt(dx*dx + dy*dy + dz*dz))
}

// DistanceTaxicab returns the Manhattan distance to another tile.
func (p BoardPosition) DistanceTaxicab(other BoardPosition) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y) + abs(p.Z-other.Z)
}

// XYNeighborsBuf fills out with every tile of the axis-aligned square of
// Chebyshev radius dist around p on the same floor, including p itself.
// The buffer is reused across calls to avoid allocation in hot loops.
// Enumeration is row-major with x varying fastest.
func (p BoardPosition) XYNeighborsBuf(dist int, out *[]BoardPosition) {
	*out = (*out)[:0]
	for y := p.Y - dist; y <= p.Y+dist; y++ {
		for x := p.X - dist; x <= p.X+dist; x++ {
			*out = append(*out, BoardPosition{X: x, Y: y, Z: p.Z})
		}
	}
}

// XYNeighborsBufClamped is XYNeighborsBuf restricted to the inclusive
// [minX,maxX]×[minY,maxY] range.
func (p BoardPosition) XYNeighborsBufClamped(dist int, out *[]BoardPosition, minX, maxX, minY, maxY int) {
	*out = (*out)[:0]
	x1 := clamp(p.X-dist, minX, maxX)
	x2 := clamp(p.X+dist, minX, maxX)
	y1 := clamp(p.Y-dist, minY, maxY)
	y2 := clamp(p.Y+dist, minY, maxY)
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			*out = append(*out, BoardPosition{X: x, Y: y, Z: p.Z})
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
