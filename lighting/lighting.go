// Package lighting implements the light propagation engine: the one-time
// static bake, the incremental runtime propagator that reacts to door and
// lamp state, and the full shadow-casting rebuild used when no usable bake
// exists. It reads and writes the fields owned by the board package.
package lighting

import "github.com/JoanGoAl/unhaunter/board"

const (
	// falloff is the fraction of lux carried to the next tile per hop of
	// BFS propagation.
	falloff = 0.75

	// luxCutoff terminates a propagation branch once the remaining
	// intensity is no longer visible.
	luxCutoff = 0.001

	// dynamicLightDistance is the default hop budget for fully dynamic
	// (non-prebaked) light sources.
	dynamicLightDistance = 30.0

	// waveEdgeDistance is the remaining hop budget when propagation
	// resumes from a wave-edge tile past an opened door.
	waveEdgeDistance = 20.0

	// transmissivityFloor keeps accumulated transmissivity above zero so
	// inverse-square falloff never divides by zero.
	transmissivityFloor = 0.0001
)

// propagationDirs are the 4-connected neighbor offsets used by all BFS
// propagation passes.
var propagationDirs = [4]board.BoardPosition{
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
}

// BlendColors merges two colors weighted by their light intensity.
func BlendColors(c1 board.Color, lux1 float32, c2 board.Color, lux2 float32) board.Color {
	total := lux1 + lux2
	if total <= 0 {
		return board.ColorWhite
	}
	return board.Color{
		R: (c1.R*lux1 + c2.R*lux2) / total,
		G: (c1.G*lux1 + c2.G*lux2) / total,
		B: (c1.B*lux1 + c2.B*lux2) / total,
	}
}

// newLightGrid allocates a dense working light field sized to the map.
func newLightGrid(size board.MapSize) [][][]board.LightFieldData {
	grid := make([][][]board.LightFieldData, size.X)
	for x := range grid {
		grid[x] = make([][]board.LightFieldData, size.Y)
		for y := range grid[x] {
			grid[x][y] = make([]board.LightFieldData, size.Z)
		}
	}
	return grid
}

// newBoolGrid allocates a dense visited grid sized to the map.
func newBoolGrid(size board.MapSize) [][][]bool {
	grid := make([][][]bool, size.X)
	for x := range grid {
		grid[x] = make([][]bool, size.Y)
		for y := range grid[x] {
			grid[x][y] = make([]bool, size.Z)
		}
	}
	return grid
}
