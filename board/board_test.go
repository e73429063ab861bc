package board

import "testing"

func TestMapSizeContains(t *testing.T) {
	size := MapSize{X: 10, Y: 8, Z: 2}

	inside := []BoardPosition{{0, 0, 0}, {9, 7, 1}, {5, 3, 0}}
	for _, p := range inside {
		if !size.Contains(p) {
			t.Errorf("Expected %v to be inside %v", p, size)
		}
	}

	outside := []BoardPosition{{-1, 0, 0}, {10, 0, 0}, {0, 8, 0}, {0, 0, 2}}
	for _, p := range outside {
		if size.Contains(p) {
			t.Errorf("Expected %v to be outside %v", p, size)
		}
	}

	if size.Tiles() != 160 {
		t.Errorf("Expected 160 tiles, got %d", size.Tiles())
	}
}

func TestNewBoardDefaults(t *testing.T) {
	bf := New(MapSize{X: 4, Y: 4, Z: 1})

	if bf.ExposureLux != 1.0 {
		t.Errorf("Expected initial exposure 1.0, got %f", bf.ExposureLux)
	}
	if bf.AmbientTemp != 15.0 {
		t.Errorf("Expected default ambient temperature 15.0, got %f", bf.AmbientTemp)
	}
	if bf.HasPrebake() {
		t.Error("Expected a fresh board to have no baked light sources")
	}
}

func TestRebuildRequestCoalescing(t *testing.T) {
	bf := New(MapSize{X: 4, Y: 4, Z: 1})

	if req := bf.Drain(); req.Lighting || req.Collision {
		t.Errorf("Expected empty pending request on a fresh board, got %+v", req)
	}

	// Multiple requests within a tick OR together.
	bf.RequestRebuild(true, false)
	bf.RequestRebuild(false, true)
	bf.RequestRebuild(false, false)

	req := bf.Drain()
	if !req.Lighting || !req.Collision {
		t.Errorf("Expected coalesced request {Lighting:true Collision:true}, got %+v", req)
	}

	// Drain clears the pending flags.
	if req := bf.Drain(); req.Lighting || req.Collision {
		t.Errorf("Expected drained request to be empty, got %+v", req)
	}
}

func TestSparseFieldDefaults(t *testing.T) {
	bf := New(MapSize{X: 4, Y: 4, Z: 1})
	pos := BoardPosition{X: 2, Y: 2}

	// Absent collision entries mean fully free and see-through.
	col := bf.CollisionAt(pos)
	if !col.PlayerFree || !col.GhostFree || !col.SeeThrough {
		t.Errorf("Expected absent collision entry to be fully free, got %+v", col)
	}

	// Absent light entries are dark, fully transparent, neutral.
	light := bf.LightAt(pos)
	if light.Lux != 0 {
		t.Errorf("Expected absent light entry to have 0 lux, got %f", light.Lux)
	}
	if light.Transmissivity != 1.0 {
		t.Errorf("Expected absent light entry transmissivity 1.0, got %f", light.Transmissivity)
	}
	if light.Color != ColorWhite {
		t.Errorf("Expected absent light entry color white, got %+v", light.Color)
	}
}

func TestPrebakedAtOutOfBounds(t *testing.T) {
	bf := New(MapSize{X: 4, Y: 4, Z: 1})

	entry := bf.PrebakedAt(BoardPosition{X: -1, Y: 0})
	if entry.LightInfo.SourceID != 0 || entry.IsWaveEdge {
		t.Errorf("Expected zero bake entry out of bounds, got %+v", entry)
	}
}
