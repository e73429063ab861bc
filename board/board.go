package board

// MapSize is the tile extent of the loaded level on each axis.
type MapSize struct {
	X, Y, Z int
}

// Contains reports whether the tile lies inside the map bounds.
func (s MapSize) Contains(p BoardPosition) bool {
	return p.X >= 0 && p.Y >= 0 && p.Z >= 0 && p.X < s.X && p.Y < s.Y && p.Z < s.Z
}

// Tiles returns the total tile count of the map.
func (s MapSize) Tiles() int {
	return s.X * s.Y * s.Z
}

// RebuildRequest asks for the board fields to be recomputed. Multiple
// requests raised within a tick coalesce by logical OR before a single
// rebuild pass runs.
type RebuildRequest struct {
	Lighting  bool
	Collision bool
}

// BoardData is the authoritative per-tile state for one loaded level.
// It is created on level load and mutated only by the rebuild systems;
// consumers read the fields freely between rebuilds.
type BoardData struct {
	MapSize MapSize

	// Sparse per-tile fields. Absence of a key is a valid state meaning
	// "fully free / see-through / no light recorded".
	CollisionField   map[BoardPosition]CollisionFieldData
	TemperatureField map[BoardPosition]float32
	LightField       map[BoardPosition]LightFieldData

	// Prebaked is the static lighting bake, sized to the map bounds.
	// Built once per level load, immutable at runtime.
	Prebaked [][][]PrebakedLightingData

	// ExposureLux is the global normalization scalar derived from the
	// average scene lux by the last lighting rebuild.
	ExposureLux float32

	// AmbientTemp seeds the temperature field for newly-seen tiles.
	AmbientTemp float32

	pending RebuildRequest
}

// New creates the board state for a level of the given size. Exposure starts
// at 1 so consumers never divide by zero before the first lighting rebuild.
func New(size MapSize) *BoardData {
	return &BoardData{
		MapSize:          size,
		CollisionField:   make(map[BoardPosition]CollisionFieldData),
		TemperatureField: make(map[BoardPosition]float32),
		LightField:       make(map[BoardPosition]LightFieldData),
		Prebaked:         NewPrebakedField(size),
		ExposureLux:      1.0,
		AmbientTemp:      15.0,
	}
}

// NewPrebakedField allocates an empty bake grid sized to the map bounds.
func NewPrebakedField(size MapSize) [][][]PrebakedLightingData {
	field := make([][][]PrebakedLightingData, size.X)
	for x := range field {
		field[x] = make([][]PrebakedLightingData, size.Y)
		for y := range field[x] {
			field[x][y] = make([]PrebakedLightingData, size.Z)
		}
	}
	return field
}

// RequestRebuild enqueues a rebuild of the requested fields. It has no other
// side effect; the pending flags are drained once per tick.
func (b *BoardData) RequestRebuild(lighting, collision bool) {
	b.pending.Lighting = b.pending.Lighting || lighting
	b.pending.Collision = b.pending.Collision || collision
}

// Drain returns the coalesced pending rebuild request and clears it.
func (b *BoardData) Drain() RebuildRequest {
	req := b.pending
	b.pending = RebuildRequest{}
	return req
}

// CollisionAt returns the collision data for a tile. Tiles with no recorded
// entry are fully free and see-through.
func (b *BoardData) CollisionAt(pos BoardPosition) CollisionFieldData {
	if c, ok := b.CollisionField[pos]; ok {
		return c
	}
	return CollisionFieldData{PlayerFree: true, GhostFree: true, SeeThrough: true}
}

// LightAt returns the light data for a tile, a dark fully-transparent value
// when none is recorded.
func (b *BoardData) LightAt(pos BoardPosition) LightFieldData {
	if l, ok := b.LightField[pos]; ok {
		return l
	}
	return NewLightFieldData()
}

// PrebakedAt returns the bake entry for a tile, the zero entry when out of
// bounds.
func (b *BoardData) PrebakedAt(pos BoardPosition) PrebakedLightingData {
	if !b.MapSize.Contains(pos) {
		return PrebakedLightingData{}
	}
	return b.Prebaked[pos.X][pos.Y][pos.Z]
}

// HasPrebake reports whether the static bake recorded any light source.
func (b *BoardData) HasPrebake() bool {
	for x := range b.Prebaked {
		for y := range b.Prebaked[x] {
			for z := range b.Prebaked[x][y] {
				if b.Prebaked[x][y][z].LightInfo.SourceID != 0 {
					return true
				}
			}
		}
	}
	return false
}
