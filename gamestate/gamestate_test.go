package gamestate

import (
	"path/filepath"
	"testing"
)

func TestFlags(t *testing.T) {
	gs := New()

	if gs.GetFlag("breaker_on") {
		t.Error("Expected unset flag to be false")
	}

	gs.SetFlag("breaker_on", true)
	if !gs.GetFlag("breaker_on") {
		t.Error("Expected flag to be true after SetFlag")
	}

	if got := gs.ToggleFlag("breaker_on"); got {
		t.Error("Expected toggle to flip flag to false")
	}
	if got := gs.ToggleFlag("breaker_on"); !got {
		t.Error("Expected toggle to flip flag back to true")
	}
}

func TestCounters(t *testing.T) {
	gs := New()

	if gs.GetCounter("sanity") != 0 {
		t.Error("Expected unset counter to be 0")
	}

	gs.SetCounter("sanity", 100)
	if got := gs.IncrementCounter("sanity", -15); got != 85 {
		t.Errorf("Expected counter 85 after decrement, got %d", got)
	}
	if got := gs.GetCounter("sanity"); got != 85 {
		t.Errorf("Expected counter 85, got %d", got)
	}
}

func TestObjectStates(t *testing.T) {
	gs := New()

	id := DoorID(3, 2)
	if id != "door_3_2" {
		t.Errorf("Expected door id 'door_3_2', got '%s'", id)
	}

	if gs.GetObjectState(id) != "" {
		t.Error("Expected unset object state to be empty")
	}

	gs.SetObjectState(id, ObjectStateOpen)
	if got := gs.GetObjectState(id); got != ObjectStateOpen {
		t.Errorf("Expected state 'open', got '%s'", got)
	}
}

func TestSaveAndLoad(t *testing.T) {
	gs := New()
	gs.SetFlag("ghost_identified", true)
	gs.SetCounter("evidence_collected", 3)
	gs.SetObjectState(DoorID(1, 1), ObjectStateClosed)

	path := filepath.Join(t.TempDir(), "save.json")
	if err := gs.Save(path); err != nil {
		t.Fatalf("Failed to save game state: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load game state: %v", err)
	}

	if !loaded.GetFlag("ghost_identified") {
		t.Error("Expected flag to survive the save/load round trip")
	}
	if loaded.GetCounter("evidence_collected") != 3 {
		t.Errorf("Expected counter 3, got %d", loaded.GetCounter("evidence_collected"))
	}
	if loaded.GetObjectState(DoorID(1, 1)) != ObjectStateClosed {
		t.Errorf("Expected door state 'closed', got '%s'", loaded.GetObjectState(DoorID(1, 1)))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected an error for a missing save file")
	}
}

func TestReset(t *testing.T) {
	gs := New()
	gs.SetFlag("a", true)
	gs.SetCounter("b", 1)
	gs.SetObjectState("c", ObjectStateOn)

	gs.Reset()

	if gs.GetFlag("a") || gs.GetCounter("b") != 0 || gs.GetObjectState("c") != "" {
		t.Error("Expected reset to clear all state")
	}
}
