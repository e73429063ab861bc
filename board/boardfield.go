package board

import "math/rand"

// temperatureSmoothingPasses is how many neighbor-averaging rounds are run
// over freshly seeded tiles so the field does not start visibly flat.
const temperatureSmoothingPasses = 16

// temperatureJitter is the +/- range added to the ambient temperature when a
// tile is first seen.
const temperatureJitter = 10.0

// RebuildCollisionField rescans the entity snapshot and replaces the
// collision field wholesale. Tiles with no occupying entity keep sparse-map
// semantics: absence means fully free and see-through.
func (b *BoardData) RebuildCollisionField(entities []Entity) {
	clear(b.CollisionField)
	for _, e := range entities {
		if !e.Behavior.Movement.Walkable {
			continue
		}
		pos := e.Position.ToBoardPosition()
		b.CollisionField[pos] = CollisionFieldData{
			PlayerFree: true,
			GhostFree:  true,
			SeeThrough: true,
		}
	}
	// Occluders overwrite whatever the walkable pass recorded for the tile.
	for _, e := range entities {
		if !e.Behavior.Movement.PlayerCollision {
			continue
		}
		pos := e.Position.ToBoardPosition()
		b.CollisionField[pos] = CollisionFieldData{
			PlayerFree: false,
			GhostFree:  !e.Behavior.Movement.GhostCollision,
			SeeThrough: e.Behavior.Light.SeeThrough,
		}
	}
}

// SmoothTemperatureField seeds temperature for tiles that appeared since the
// last rebuild and relaxes the new values by repeated neighbor averaging.
// The initial jitter keeps the field from being exploitably uniform at level
// start; smoothing is restricted to player-free tiles.
func (b *BoardData) SmoothTemperatureField(rng *rand.Rand) {
	var added []BoardPosition
	for pos := range b.CollisionField {
		if _, ok := b.TemperatureField[pos]; ok {
			continue
		}
		b.TemperatureField[pos] = b.AmbientTemp + (rng.Float32()*2-1)*temperatureJitter
		added = append(added, pos)
	}

	var nbors []BoardPosition
	for pass := 0; pass < temperatureSmoothingPasses; pass++ {
		for _, pos := range added {
			if !b.CollisionAt(pos).PlayerFree {
				continue
			}
			pos.XYNeighborsBuf(1, &nbors)
			sum := float32(0)
			count := float32(0)
			for _, npos := range nbors {
				if !b.CollisionAt(npos).PlayerFree {
					continue
				}
				t, ok := b.TemperatureField[npos]
				if !ok {
					t = b.AmbientTemp
				}
				sum += t
				count++
			}
			if count > 0 {
				b.TemperatureField[pos] = sum / count
			}
		}
	}
}
