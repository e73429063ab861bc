package board

// NeighborIterator lazily enumerates the tiles of an axis-aligned square
// around a center tile, clamped to a bounds rectangle. It yields the same
// tiles as XYNeighborsBufClamped, in the same row-major order (x varies
// fastest), without allocating a buffer.
type NeighborIterator struct {
	currentX, currentY int
	minX, maxX, maxY   int
	z                  int
}

// IterXYNeighbors returns an iterator over the square of Chebyshev radius
// dist around p, clamped to a map of the given width and height.
func (p BoardPosition) IterXYNeighbors(dist int, width, height int) *NeighborIterator {
	return p.IterXYNeighborsClamped(dist, 0, 0, width-1, height-1)
}

// IterXYNeighborsClamped returns an iterator over the square of Chebyshev
// radius dist around p, clamped to the inclusive [fromX,toX]×[fromY,toY]
// rectangle.
func (p BoardPosition) IterXYNeighborsClamped(dist int, fromX, fromY, toX, toY int) *NeighborIterator {
	minX := max(p.X-dist, fromX)
	minY := max(p.Y-dist, fromY)
	maxX := min(p.X+dist, toX)
	maxY := min(p.Y+dist, toY)
	return &NeighborIterator{
		currentX: minX,
		currentY: minY,
		minX:     minX,
		maxX:     maxX,
		maxY:     maxY,
		z:        p.Z,
	}
}

// Next returns the next tile and true, or the zero value and false once the
// square is exhausted.
func (it *NeighborIterator) Next() (BoardPosition, bool) {
	if it.currentY > it.maxY || it.currentX > it.maxX {
		return BoardPosition{}, false
	}
	result := BoardPosition{X: it.currentX, Y: it.currentY, Z: it.z}
	it.currentX++
	if it.currentX > it.maxX {
		it.currentX = it.minX
		it.currentY++
	}
	return result, true
}
