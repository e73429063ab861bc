package lighting

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/JoanGoAl/unhaunter/board"
	"github.com/JoanGoAl/unhaunter/logger"
)

// dynamicLight is a non-prebaked emitter to flood at runtime.
type dynamicLight struct {
	pos      board.BoardPosition
	lux      float32
	color    board.Color
	distance float32
}

// waveEdge is a bake-truncation tile from which propagation resumes once the
// adjacent gate opens.
type waveEdge struct {
	pos      board.BoardPosition
	sourceID uint32
	lux      float32
	color    board.Color
	distance float32
}

// Rebuild recomputes the whole light field from the current board state and
// entity snapshot, and writes it back into the board together with the
// exposure scalar. Partial updates are not supported: every call replaces
// the field wholesale, which keeps rebuilds deterministic pure functions of
// their inputs.
//
// The preferred path applies the static bake and continues propagation from
// wave edges and dynamic sources. When no usable bake exists the full
// shadow-casting rebuild runs instead.
func Rebuild(bf *board.BoardData, entities []board.Entity) {
	if !bf.HasPrebake() {
		RebuildShadows(bf, entities)
		return
	}
	start := time.Now()

	lfs := newLightGrid(bf.MapSize)
	active, dynamics := identifyActiveSources(bf, entities)
	tilesLit := applyPrebakedContributions(active, bf, lfs)
	doors := collectDoorStates(entities)
	edges := findWaveEdges(bf, active, doors)

	visited := newBoolGrid(bf.MapSize)
	waveHops := propagateFromWaveEdges(bf, lfs, visited, edges)
	dynHops := floodDynamicSources(bf, lfs, visited, dynamics)

	finalizeLightField(bf, lfs, entities)

	logger.Log.WithFields(logrus.Fields{
		"active_sources":    len(active),
		"dynamic_sources":   len(dynamics),
		"prebaked_lit":      tilesLit,
		"wave_edges":        len(edges),
		"wave_propagations": waveHops,
		"dyn_propagations":  dynHops,
		"exposure_lux":      bf.ExposureLux,
		"elapsed":           time.Since(start),
	}).Debug("Lighting rebuild complete")
}

// identifyActiveSources scans the entity snapshot and splits emitters into
// the set of active prebaked source ids and the list of purely dynamic
// lights that must be flooded from scratch.
func identifyActiveSources(bf *board.BoardData, entities []board.Entity) (map[uint32]bool, []dynamicLight) {
	active := make(map[uint32]bool)
	var dynamics []dynamicLight

	for _, e := range entities {
		lux := e.Behavior.Light.EmissivityLumens()
		if lux <= 0 {
			continue
		}
		pos := e.Position.ToBoardPosition()
		baked := bf.PrebakedAt(pos)
		if baked.LightInfo.SourceID != 0 {
			active[baked.LightInfo.SourceID] = true
			continue
		}
		dynamics = append(dynamics, dynamicLight{
			pos:      pos,
			lux:      lux,
			color:    e.Behavior.Light.Color,
			distance: dynamicLightDistance,
		})
	}
	return active, dynamics
}

// applyPrebakedContributions copies the baked lux/color of every tile whose
// recorded source is active into the working field. No traversal happens
// here; this is O(tiles).
func applyPrebakedContributions(active map[uint32]bool, bf *board.BoardData, lfs [][][]board.LightFieldData) int {
	tilesLit := 0
	for x := range bf.Prebaked {
		for y := range bf.Prebaked[x] {
			for z := range bf.Prebaked[x][y] {
				info := bf.Prebaked[x][y][z].LightInfo
				if info.SourceID == 0 || !active[info.SourceID] {
					continue
				}
				if info.Lux <= luxCutoff {
					continue
				}
				lfs[x][y][z].Lux = info.Lux
				lfs[x][y][z].Color = info.Color
				tilesLit++
			}
		}
	}
	return tilesLit
}

// collectDoorStates maps each door tile to whether it is currently open.
func collectDoorStates(entities []board.Entity) map[board.BoardPosition]bool {
	doors := make(map[board.BoardPosition]bool)
	for _, e := range entities {
		if !e.Behavior.IsDoor() {
			continue
		}
		doors[e.Position.ToBoardPosition()] = e.Behavior.IsOpen()
	}
	return doors
}

// findWaveEdges selects the bake-truncation tiles whose source is active and
// which sit adjacent (26-neighborhood) to an open door. These are the points
// where runtime propagation continues into territory the bake could not
// reach.
func findWaveEdges(bf *board.BoardData, active map[uint32]bool, doors map[board.BoardPosition]bool) []waveEdge {
	var edges []waveEdge
	for x := range bf.Prebaked {
		for y := range bf.Prebaked[x] {
			for z := range bf.Prebaked[x][y] {
				entry := bf.Prebaked[x][y][z]
				if !entry.IsWaveEdge || entry.LightInfo.SourceID == 0 {
					continue
				}
				if !active[entry.LightInfo.SourceID] {
					continue
				}
				pos := board.BoardPosition{X: x, Y: y, Z: z}
				if !nearOpenDoor(pos, doors) {
					continue
				}
				edges = append(edges, waveEdge{
					pos:      pos,
					sourceID: entry.LightInfo.SourceID,
					lux:      entry.LightInfo.Lux,
					color:    entry.LightInfo.Color,
					distance: waveEdgeDistance,
				})
			}
		}
	}
	return edges
}

func nearOpenDoor(pos board.BoardPosition, doors map[board.BoardPosition]bool) bool {
	for door, open := range doors {
		if !open {
			continue
		}
		if abs(door.X-pos.X) <= 1 && abs(door.Y-pos.Y) <= 1 && abs(door.Z-pos.Z) <= 1 {
			return true
		}
	}
	return false
}

// propagateFromWaveEdges resumes the BFS flood from each wave edge with the
// lux/color the bake retained there. Tiles reached are marked visited so the
// dynamic flood cannot double-count them.
func propagateFromWaveEdges(bf *board.BoardData, lfs [][][]board.LightFieldData, visited [][][]bool, edges []waveEdge) int {
	queue := make([]bfsNode, 0, len(edges))
	for _, e := range edges {
		queue = append(queue, bfsNode{pos: e.pos, remaining: e.distance, lux: e.lux, color: e.color})
	}
	return flood(bf, lfs, visited, queue)
}

// floodDynamicSources seeds every dynamic emitter into the working field and
// BFS-propagates it, skipping tiles already visited this pass.
func floodDynamicSources(bf *board.BoardData, lfs [][][]board.LightFieldData, visited [][][]bool, dynamics []dynamicLight) int {
	queue := make([]bfsNode, 0, len(dynamics))
	for _, d := range dynamics {
		if !bf.MapSize.Contains(d.pos) {
			continue
		}
		cell := &lfs[d.pos.X][d.pos.Y][d.pos.Z]
		prevLux := cell.Lux
		cell.Lux += d.lux
		if prevLux > 0 {
			cell.Color = BlendColors(cell.Color, prevLux, d.color, d.lux)
		} else {
			cell.Color = d.color
		}
		visited[d.pos.X][d.pos.Y][d.pos.Z] = true
		queue = append(queue, bfsNode{pos: d.pos, remaining: d.distance, lux: d.lux, color: d.color})
	}
	return flood(bf, lfs, visited, queue)
}

type bfsNode struct {
	pos       board.BoardPosition
	remaining float32
	lux       float32
	color     board.Color
}

// flood runs the shared BFS wavefront: 4-connected, see-through tiles only,
// fixed falloff per hop, branch terminated below the lux cutoff or once the
// hop budget runs out. Out-of-bounds neighbors are skipped, never an error.
func flood(bf *board.BoardData, lfs [][][]board.LightFieldData, visited [][][]bool, queue []bfsNode) int {
	propagations := 0
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.remaining <= 0 || n.lux < luxCutoff {
			continue
		}
		for _, d := range propagationDirs {
			npos := board.BoardPosition{X: n.pos.X + d.X, Y: n.pos.Y + d.Y, Z: n.pos.Z + d.Z}
			if !bf.MapSize.Contains(npos) {
				continue
			}
			if visited[npos.X][npos.Y][npos.Z] {
				continue
			}
			if !bf.CollisionAt(npos).SeeThrough {
				continue
			}
			newLux := n.lux * falloff
			if newLux < luxCutoff {
				continue
			}
			cell := &lfs[npos.X][npos.Y][npos.Z]
			prevLux := cell.Lux
			cell.Lux += newLux
			if prevLux > 0 {
				cell.Color = BlendColors(cell.Color, prevLux, n.color, newLux)
			} else {
				cell.Color = n.color
			}
			visited[npos.X][npos.Y][npos.Z] = true
			queue = append(queue, bfsNode{pos: npos, remaining: n.remaining - 1, lux: newLux, color: n.color})
			propagations++
		}
	}
	return propagations
}

// finalizeLightField folds per-tile transmissivity and extra light channels
// from the entity snapshot into the working field, replaces the board's
// light field wholesale, and recomputes the exposure scalar from the global
// average lux.
func finalizeLightField(bf *board.BoardData, lfs [][][]board.LightFieldData, entities []board.Entity) {
	trans := make(map[board.BoardPosition]float32)
	addl := make(map[board.BoardPosition]board.LightData)
	for _, e := range entities {
		pos := e.Position.ToBoardPosition()
		t, ok := trans[pos]
		if !ok {
			t = 1.0
		}
		trans[pos] = e.Behavior.Light.TransmissivityFactor()*t + transmissivityFloor
		addl[pos] = addl[pos].Add(e.Behavior.Light.AdditionalData())
	}

	clear(bf.LightField)
	totalLux := float32(0)
	for x := range lfs {
		for y := range lfs[x] {
			for z := range lfs[x][y] {
				pos := board.BoardPosition{X: x, Y: y, Z: z}
				cell := lfs[x][y][z]
				if t, ok := trans[pos]; ok {
					cell.Transmissivity = t
				} else {
					cell.Transmissivity = 1.0
				}
				cell.Additional = addl[pos]
				bf.LightField[pos] = cell
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

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
