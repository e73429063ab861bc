// Package game wires the board, lighting and map packages into a playable
// investigation scene: WASD movement, door interaction, and a render pass
// that tints every tile by its computed illumination.
package game

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/JoanGoAl/unhaunter/board"
	"github.com/JoanGoAl/unhaunter/config"
	"github.com/JoanGoAl/unhaunter/gamestate"
	"github.com/JoanGoAl/unhaunter/lighting"
	"github.com/JoanGoAl/unhaunter/logger"
	"github.com/JoanGoAl/unhaunter/maploader"
)

// Player is the investigator avatar. Position is in tile units so it maps
// directly onto the board fields.
type Player struct {
	Pos   board.Position
	Speed float32 // Tiles per tick
}

// Game holds the full scene state and implements ebiten.Game.
type Game struct {
	cfg *config.Config

	gameMap  *maploader.Map
	bf       *board.BoardData
	entities []board.Entity
	state    *gamestate.GameState
	player   Player
	rng      *rand.Rand
}

// New builds a game from a loaded map: entity snapshot, collision field,
// static light bake and the initial lighting rebuild all run here so the
// first frame already has a lit scene.
func New(gameMap *maploader.Map, cfg *config.Config) (*Game, error) {
	entities, err := gameMap.BuildEntities()
	if err != nil {
		return nil, err
	}

	bf := board.New(gameMap.Data.Size())
	if gameMap.Data.AmbientTemp != 0 {
		bf.AmbientTemp = gameMap.Data.AmbientTemp
	}

	g := &Game{
		cfg:      cfg,
		gameMap:  gameMap,
		bf:       bf,
		entities: entities,
		state:    gamestate.New(),
		player: Player{
			Pos:   board.Position{X: gameMap.Data.PlayerSpawn.X, Y: gameMap.Data.PlayerSpawn.Y},
			Speed: cfg.Player.Speed,
		},
		rng: rand.New(rand.NewSource(1)),
	}

	g.bf.RebuildCollisionField(g.entities)
	g.bf.SmoothTemperatureField(g.rng)
	lighting.BuildPrebake(g.bf, g.entities)
	lighting.Rebuild(g.bf, g.entities)

	for i := range g.entities {
		e := &g.entities[i]
		if e.Behavior.IsDoor() {
			pos := e.Position.ToBoardPosition()
			g.state.SetObjectState(gamestate.DoorID(pos.X, pos.Y), doorStateName(e.Behavior.IsOpen()))
		}
	}

	logger.Log.WithField("entities", len(g.entities)).Info("Scene initialized")
	return g, nil
}

// Board exposes the board fields, mainly for tests and debug overlays.
func (g *Game) Board() *board.BoardData {
	return g.bf
}

// State exposes the persistent investigation state.
func (g *Game) State() *gamestate.GameState {
	return g.state
}

// PlayerPosition returns the player's current position in tile units.
func (g *Game) PlayerPosition() board.Position {
	return g.player.Pos
}

// Update advances the scene one tick: movement, interaction, then any
// rebuilds that the tick's changes requested.
func (g *Game) Update() error {
	g.handleMovement()

	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.toggleNearestDoor()
	}

	req := g.bf.Drain()
	if req.Collision {
		g.bf.RebuildCollisionField(g.entities)
		g.bf.SmoothTemperatureField(g.rng)
	}
	if req.Lighting {
		lighting.Rebuild(g.bf, g.entities)
	}

	return nil
}

func (g *Game) handleMovement() {
	var dx, dy float32
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dy -= g.player.Speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dy += g.player.Speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= g.player.Speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += g.player.Speed
	}
	if dx == 0 && dy == 0 {
		return
	}

	// Axes move independently so the player slides along walls.
	g.tryMove(dx, 0)
	g.tryMove(0, dy)
}

// tryMove applies a movement delta only if the destination tile is free
// for the player and inside the map.
func (g *Game) tryMove(dx, dy float32) {
	next := board.Position{X: g.player.Pos.X + dx, Y: g.player.Pos.Y + dy, Z: g.player.Pos.Z}
	tile := next.ToBoardPosition()
	if !g.bf.MapSize.Contains(tile) {
		return
	}
	if !g.bf.CollisionAt(tile).PlayerFree {
		return
	}
	g.player.Pos = next
}

// toggleNearestDoor flips the closest door within reach and requests the
// rebuilds that the change invalidates.
func (g *Game) toggleNearestDoor() {
	best := -1
	bestDist := g.cfg.Player.InteractRange
	for i := range g.entities {
		if !g.entities[i].Behavior.IsDoor() {
			continue
		}
		d := g.player.Pos.Distance(g.entities[i].Position)
		if d <= bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return
	}

	e := &g.entities[best]
	open := !e.Behavior.IsOpen()
	e.Behavior = maploader.ApplyDoorState(e.Behavior, open)

	pos := e.Position.ToBoardPosition()
	g.state.SetObjectState(gamestate.DoorID(pos.X, pos.Y), doorStateName(open))
	g.bf.RequestRebuild(true, true)

	logger.Log.WithField("pos", pos).WithField("open", open).Debug("Door toggled")
}

func doorStateName(open bool) string {
	if open {
		return gamestate.ObjectStateOpen
	}
	return gamestate.ObjectStateClosed
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
