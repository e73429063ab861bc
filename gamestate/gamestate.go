// Package gamestate tracks persistent investigation progress: boolean flags,
// counters and per-object states. The lighting and interaction systems use
// the object states to remember which doors are open and which lamps are
// switched off across rebuilds and saves.
package gamestate

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Door and lamp object states used by the interaction system.
const (
	ObjectStateOpen   = "open"
	ObjectStateClosed = "closed"
	ObjectStateOn     = "on"
	ObjectStateOff    = "off"
)

// GameState holds all persistent game state data.
type GameState struct {
	mu sync.RWMutex

	// Flags are boolean values (e.g., "breaker_on", "ghost_identified")
	Flags map[string]bool `json:"flags"`

	// Counters are integer values (e.g., "sanity", "evidence_collected")
	Counters map[string]int `json:"counters"`

	// ObjectStates tracks the current state of each stateful object.
	// Key is object ID (e.g., "door_3_2", "lamp_livingroom")
	ObjectStates map[string]string `json:"object_states"`
}

// New creates a new empty GameState.
func New() *GameState {
	return &GameState{
		Flags:        make(map[string]bool),
		Counters:     make(map[string]int),
		ObjectStates: make(map[string]string),
	}
}

// GetFlag returns the value of a flag (false if not set).
func (gs *GameState) GetFlag(name string) bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.Flags[name]
}

// SetFlag sets a flag to a specific value.
func (gs *GameState) SetFlag(name string, value bool) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.Flags[name] = value
}

// ToggleFlag flips a flag's value and returns the new value.
func (gs *GameState) ToggleFlag(name string) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.Flags[name] = !gs.Flags[name]
	return gs.Flags[name]
}

// GetCounter returns the value of a counter (0 if not set).
func (gs *GameState) GetCounter(name string) int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.Counters[name]
}

// SetCounter sets a counter to a specific value.
func (gs *GameState) SetCounter(name string, value int) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.Counters[name] = value
}

// IncrementCounter adds delta to a counter (can be negative).
func (gs *GameState) IncrementCounter(name string, delta int) int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.Counters[name] += delta
	return gs.Counters[name]
}

// GetObjectState returns the current state of an object.
func (gs *GameState) GetObjectState(objectID string) string {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.ObjectStates[objectID]
}

// SetObjectState sets the state of an object.
func (gs *GameState) SetObjectState(objectID string, state string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.ObjectStates[objectID] = state
}

// DoorID builds the object ID used to track a door at a grid position.
func DoorID(x, y int) string {
	return fmt.Sprintf("door_%d_%d", x, y)
}

// Save writes the game state to a file.
func (gs *GameState) Save(filepath string) error {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize game state: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write game state file: %w", err)
	}

	return nil
}

// Load reads the game state from a file.
func Load(filepath string) (*GameState, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game state file: %w", err)
	}

	gs := New()
	if err := json.Unmarshal(data, gs); err != nil {
		return nil, fmt.Errorf("failed to parse game state: %w", err)
	}

	return gs, nil
}

// Reset clears all game state (for a new investigation).
func (gs *GameState) Reset() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.Flags = make(map[string]bool)
	gs.Counters = make(map[string]int)
	gs.ObjectStates = make(map[string]string)
}

// Debug returns a string representation of the game state for debugging.
func (gs *GameState) Debug() string {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	return fmt.Sprintf("GameState{Flags: %d, Counters: %d, ObjectStates: %d}",
		len(gs.Flags), len(gs.Counters), len(gs.ObjectStates))
}
