package board

import "math"

const (
	cachedCenter = 32
	cachedSize   = cachedCenter*2 + 1

	// AngleBuckets is the discretization of the full circle used by the
	// shadow caster: the perimeter of the indexing circle.
	AngleBuckets = 48 * 2
)

// CachedBoardPos precomputes distance and quantized angle between every pair
// of tile offsets within a radius of 32 tiles, plus the angular range each
// offset subtends. The tables replace trigonometry in the shadow-casting hot
// loop; build one instance at process start and share it.
type CachedBoardPos struct {
	dist       [cachedSize][cachedSize]float32
	angle      [cachedSize][cachedSize]int
	angleRange [cachedSize][cachedSize][2]int
}

// NewCachedBoardPos builds the lookup tables.
func NewCachedBoardPos() *CachedBoardPos {
	c := &CachedBoardPos{}
	c.computeDist()
	c.computeAngle()
	return c
}

func (c *CachedBoardPos) computeDist() {
	for x := 0; x < cachedSize; x++ {
		for y := 0; y < cachedSize; y++ {
			fx := float64(x - cachedCenter)
			fy := float64(y - cachedCenter)
			c.dist[x][y] = float32(math.Sqrt(fx*fx + fy*fy))
		}
	}
}

// bucketFor quantizes the direction of the (dx, dy) offset into one of
// AngleBuckets perimeter slots. The zero offset maps to bucket 0.
func bucketFor(dx, dy float64) float64 {
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return 0
	}
	ux := dx / dist
	uy := dy / dist
	sign := 1.0
	if uy < 0 {
		sign = -1.0
	}
	return math.Acos(ux) * sign * AngleBuckets / math.Pi / 2.0
}

func (c *CachedBoardPos) computeAngle() {
	for x := 0; x < cachedSize; x++ {
		for y := 0; y < cachedSize; y++ {
			fx := float64(x - cachedCenter)
			fy := float64(y - cachedCenter)
			angle := bucketFor(fx, fy)
			c.angle[x][y] = remEuclid(int(math.Round(angle)), AngleBuckets)
		}
	}

	// The angular range of an offset is how many buckets to either side of
	// its center angle the unit tile at that offset covers. Splatting an
	// occluder over its whole range gives shadows a plausible width instead
	// of a single-ray silhouette.
	for x := 0; x < cachedSize; x++ {
		for y := 0; y < cachedSize; y++ {
			origAngle := c.angle[x][y]
			minAngle, maxAngle := 0, 0
			fx := float64(x - cachedCenter)
			fy := float64(y - cachedCenter)
			for _, x1 := range [2]float64{fx - 0.5, fx + 0.5} {
				for _, y1 := range [2]float64{fy - 0.5, fy + 0.5} {
					angleI := int(math.Round(bucketFor(x1, y1))) - origAngle
					if abs(angleI) > AngleBuckets/2 {
						if angleI > 0 {
							angleI -= AngleBuckets
						} else {
							angleI += AngleBuckets
						}
					}
					minAngle = min(minAngle, angleI)
					maxAngle = max(maxAngle, angleI)
				}
			}
			c.angleRange[x][y] = [2]int{minAngle, maxAngle}
		}
	}
}

func (c *CachedBoardPos) tableIdx(s, d BoardPosition) (int, int) {
	x := clamp(d.X-s.X+cachedCenter, 0, cachedSize-1)
	y := clamp(d.Y-s.Y+cachedCenter, 0, cachedSize-1)
	return x, y
}

// Dist returns the Euclidean distance between the two tiles, looked up from
// the precomputed table. Offsets beyond the table radius are clamped.
func (c *CachedBoardPos) Dist(s, d BoardPosition) float32 {
	x, y := c.tableIdx(s, d)
	return c.dist[x][y]
}

// Angle returns the quantized angle bucket of d as seen from s.
func (c *CachedBoardPos) Angle(s, d BoardPosition) int {
	x, y := c.tableIdx(s, d)
	return c.angle[x][y]
}

// AngleRange returns the inclusive bucket offsets covered by the unit tile
// at d as seen from s, relative to Angle(s, d).
func (c *CachedBoardPos) AngleRange(s, d BoardPosition) (int, int) {
	x, y := c.tableIdx(s, d)
	r := c.angleRange[x][y]
	return r[0], r[1]
}

// remEuclid returns the non-negative remainder of a modulo n.
func remEuclid(a, n int) int {
	return ((a % n) + n) % n
}
