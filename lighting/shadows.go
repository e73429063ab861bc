package lighting

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/JoanGoAl/unhaunter/board"
	"github.com/JoanGoAl/unhaunter/logger"
)

// Tuning constants for the multi-pass shadow caster. These were tuned
// against visual output, not derived; check the result on a real map before
// changing any of them.
const (
	// primaryPassDivisor and smoothingPassDivisor control how harsh the
	// light is on the first pass versus the smoothing/reflection passes.
	primaryPassDivisor   = 1.01
	smoothingPassDivisor = 5.5

	// lightHeight offsets the inverse-square distance so tiles adjacent to
	// a source are not blown out.
	lightHeight = 4.0

	// totalLuxDivisor normalizes each splat.
	totalLuxDivisor = 2.0

	// opaqueTransmissivity is the threshold below which a tile casts
	// shadows.
	opaqueTransmissivity = 0.5

	// shadowSlackTiles lets light reach slightly past the recorded shadow
	// distance before the soft threshold takes over.
	shadowSlackTiles = 3.0

	// bleedTiles is the width of the tanh soft threshold at the shadow
	// boundary. Lower values create visible unevenness.
	bleedTiles = 0.8

	// Reflection passes are skipped for a tile when its immediate
	// neighborhood has no wall (min transmissivity above
	// reflectionMinTransmissivity) and no harsh lux gradient (ratio below
	// reflectionLuxRatio).
	reflectionMinTransmissivity = 0.7
	reflectionLuxRatio          = 1.9
)

// Per-pass radius and lux band. Pass 0 is the direct-light pass; passes 1-2
// act as smoothing/reflection passes over progressively smaller radii.
var (
	passRadii   = [3]int{26, 8, 6}
	passMinLux  = [3]float32{0.001, 0.000001, 0.0000000001}
	passMaxLux  = [3]float32{math.MaxFloat32, 10000.0, 1000.0}
	cachedBoard = board.NewCachedBoardPos()
)

// lightFieldSector is a dense working copy of the light field with
// bounds-checked access, cloneable per pass.
type lightFieldSector struct {
	field         []board.LightFieldData
	szX, szY, szZ int
}

func newLightFieldSector(size board.MapSize) *lightFieldSector {
	s := &lightFieldSector{
		field: make([]board.LightFieldData, size.Tiles()),
		szX:   size.X,
		szY:   size.Y,
		szZ:   size.Z,
	}
	for i := range s.field {
		s.field[i] = board.NewLightFieldData()
	}
	return s
}

func (s *lightFieldSector) get(x, y, z int) *board.LightFieldData {
	if x < 0 || y < 0 || z < 0 || x >= s.szX || y >= s.szY || z >= s.szZ {
		return nil
	}
	return &s.field[(x*s.szY+y)*s.szZ+z]
}

func (s *lightFieldSector) getPos(p board.BoardPosition) *board.LightFieldData {
	return s.get(p.X, p.Y, p.Z)
}

func (s *lightFieldSector) clone() *lightFieldSector {
	c := &lightFieldSector{
		field: make([]board.LightFieldData, len(s.field)),
		szX:   s.szX,
		szY:   s.szY,
		szZ:   s.szZ,
	}
	copy(c.field, s.field)
	return c
}

// RebuildShadows recomputes the light field with the full multi-pass radial
// shadow caster. This is the fallback path for maps without a usable static
// bake; it is considerably more expensive than bake-plus-propagation.
func RebuildShadows(bf *board.BoardData, entities []board.Entity) {
	start := time.Now()

	lfs := newLightFieldSector(bf.MapSize)
	seedCount := 0
	for _, e := range entities {
		pos := e.Position.ToBoardPosition()
		cell := lfs.getPos(pos)
		if cell == nil {
			continue
		}
		lumens := e.Behavior.Light.EmissivityLumens()
		prevLux := cell.Lux
		cell.Lux += lumens
		cell.Transmissivity = e.Behavior.Light.TransmissivityFactor()*cell.Transmissivity + transmissivityFloor
		cell.Additional = cell.Additional.Add(e.Behavior.Light.AdditionalData())
		if lumens > 0 {
			cell.Color = BlendColors(cell.Color, prevLux, e.Behavior.Light.Color, lumens)
			seedCount++
		}
	}
	if seedCount == 0 {
		logger.Log.Warn("Shadow rebuild found no light sources; map will be fully dark")
	}

	maxX := bf.MapSize.X - 1
	maxY := bf.MapSize.Y - 1
	var nbors []board.BoardPosition

	for step := 0; step < len(passRadii); step++ {
		src := lfs.clone()
		size := passRadii[step]

		for x := 0; x < bf.MapSize.X; x++ {
			for y := 0; y < bf.MapSize.Y; y++ {
				for z := 0; z < bf.MapSize.Z; z++ {
					srcCell := src.get(x, y, z)
					rootPos := board.BoardPosition{X: x, Y: y, Z: z}
					srcLux := srcCell.Lux
					if srcLux < passMinLux[step] || srcLux > passMaxLux[step] {
						continue
					}

					if step > 0 {
						// No walls nearby means no reflection contribution;
						// skip the expensive splat for this neighborhood.
						rootPos.XYNeighborsBufClamped(1, &nbors, 0, maxX, 0, maxY)
						minLux := float32(math.MaxFloat32)
						minTrans := float32(2.0)
						for _, npos := range nbors {
							if l := lfs.getPos(npos); l != nil {
								minLux = min(minLux, l.Lux)
								minTrans = min(minTrans, l.Transmissivity)
							}
						}
						if minTrans > reflectionMinTransmissivity &&
							srcLux/(minLux+transmissivityFloor) < reflectionLuxRatio {
							continue
						}
						srcLux /= smoothingPassDivisor
					} else {
						srcLux /= primaryPassDivisor
					}

					rootPos.XYNeighborsBufClamped(size, &nbors, 0, maxX, 0, maxY)

					// Pull the splatted lux out of the source tile so it is
					// not counted twice.
					lfs.getPos(rootPos).Lux -= srcLux

					var shadowDist [board.AngleBuckets]float32
					for i := range shadowDist {
						shadowDist[i] = float32(size + 1)
					}
					for _, pillarPos := range nbors {
						lf := lfs.getPos(pillarPos)
						if lf == nil || lf.Transmissivity >= opaqueTransmissivity {
							continue
						}
						minDist := cachedBoard.Dist(rootPos, pillarPos)
						angle := cachedBoard.Angle(rootPos, pillarPos)
						r0, r1 := cachedBoard.AngleRange(rootPos, pillarPos)
						for d := r0; d <= r1; d++ {
							ang := remEuclid(angle+d, board.AngleBuckets)
							shadowDist[ang] = min(shadowDist[ang], minDist)
						}
					}
					if srcCell.Transmissivity < opaqueTransmissivity {
						// Light sitting inside a wall does not spread.
						for i := range shadowDist {
							shadowDist[i] = 0
						}
					}

					for _, npos := range nbors {
						dist := cachedBoard.Dist(rootPos, npos)
						dist2 := dist + lightHeight
						sd := shadowDist[cachedBoard.Angle(rootPos, npos)]
						luxAdd := srcLux / dist2 / dist2 / totalLuxDivisor
						if dist-shadowSlackTiles < sd {
							if lf := lfs.getPos(npos); lf != nil {
								f := (tanh32((sd-dist-0.5)/bleedTiles) + 1.0) / 2.0
								lf.Lux += luxAdd * f
							}
						}
					}
				}
			}
		}
	}

	writeSectorToBoard(bf, lfs)

	logger.Log.WithFields(logrus.Fields{
		"sources":      seedCount,
		"exposure_lux": bf.ExposureLux,
		"elapsed":      time.Since(start),
	}).Debug("Shadow-casting lighting rebuild complete")
}

// writeSectorToBoard replaces the board's light field wholesale and
// recomputes the exposure scalar from the global average lux.
func writeSectorToBoard(bf *board.BoardData, lfs *lightFieldSector) {
	clear(bf.LightField)
	totalLux := float32(0)
	for x := 0; x < bf.MapSize.X; x++ {
		for y := 0; y < bf.MapSize.Y; y++ {
			for z := 0; z < bf.MapSize.Z; z++ {
				cell := *lfs.get(x, y, z)
				bf.LightField[board.BoardPosition{X: x, Y: y, Z: z}] = cell
				totalLux += cell.Lux
			}
		}
	}
	if total := bf.MapSize.Tiles(); total > 0 {
		avgLux := totalLux / float32(total)
		bf.ExposureLux = (avgLux + 2.0) / 2.0
	} else {
		bf.ExposureLux = 1.0
	}
}

func tanh32(v float32) float32 {
	return float32(math.Tanh(float64(v)))
}

// remEuclid returns the non-negative remainder of a modulo n.
func remEuclid(a, n int) int {
	return ((a % n) + n) % n
}
