package lighting

import (
	"github.com/sirupsen/logrus"

	"github.com/JoanGoAl/unhaunter/board"
	"github.com/JoanGoAl/unhaunter/logger"
)

// staticHopBudget bounds how far the bake propagates from a single source.
const staticHopBudget = 30

// BuildPrebake computes the static lighting bake for the current map and
// stores it on the board. Every entity capable of emitting light becomes a
// numbered source, whether or not it is currently switched on; activation is
// decided at runtime without rebaking. The collision field must already be
// rebuilt, with doors in their load-time state, so the bake records wave
// edges where propagation stops against them.
//
// This runs once per level load, never per frame.
func BuildPrebake(bf *board.BoardData, entities []board.Entity) {
	prebaked := board.NewPrebakedField(bf.MapSize)

	nextID := uint32(1)
	for _, e := range entities {
		if e.Behavior.Light.Emissivity <= 0 {
			continue
		}
		pos := e.Position.ToBoardPosition()
		if !bf.MapSize.Contains(pos) {
			continue
		}
		propagateStatic(bf, prebaked, nextID, pos, e.Behavior.Light.Emissivity, e.Behavior.Light.Color)
		nextID++
	}

	bf.Prebaked = prebaked
	if nextID == 1 {
		logger.Log.Warn("Static bake found no light sources; map will be fully dark")
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"sources": nextID - 1,
		"map":     bf.MapSize,
	}).Info("Static lighting bake complete")
}

// propagateStatic floods one source through the map, recording per tile the
// strongest single contributor. Blending is deliberately not done here: the
// bake only feeds candidate activation at runtime, not final color.
func propagateStatic(bf *board.BoardData, prebaked [][][]board.PrebakedLightingData, id uint32, origin board.BoardPosition, lux float32, color board.Color) {
	type node struct {
		pos  board.BoardPosition
		lux  float32
		hops int
	}

	visited := map[board.BoardPosition]bool{origin: true}
	queue := []node{{pos: origin, lux: lux}}
	recordContribution(prebaked, origin, id, lux, color)

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.lux < luxCutoff || n.hops >= staticHopBudget {
			continue
		}
		for _, d := range propagationDirs {
			npos := board.BoardPosition{X: n.pos.X + d.X, Y: n.pos.Y + d.Y, Z: n.pos.Z + d.Z}
			if !bf.MapSize.Contains(npos) {
				continue
			}
			if visited[npos] {
				continue
			}
			if !bf.CollisionAt(npos).SeeThrough {
				// The wavefront stops here. The current tile keeps the
				// lux/color it would have carried forward, and is marked
				// as the resumption point for when the blocker opens.
				prebaked[n.pos.X][n.pos.Y][n.pos.Z].IsWaveEdge = true
				continue
			}
			newLux := n.lux * falloff
			if newLux < luxCutoff {
				continue
			}
			visited[npos] = true
			recordContribution(prebaked, npos, id, newLux, color)
			queue = append(queue, node{pos: npos, lux: newLux, hops: n.hops + 1})
		}
	}
}

// recordContribution keeps the strongest single source per tile.
func recordContribution(prebaked [][][]board.PrebakedLightingData, pos board.BoardPosition, id uint32, lux float32, color board.Color) {
	entry := &prebaked[pos.X][pos.Y][pos.Z]
	if lux > entry.LightInfo.Lux {
		entry.LightInfo = board.LightInfo{SourceID: id, Lux: lux, Color: color}
	}
}
