package board

import (
	"math"
	"testing"
)

func TestDirectionalNeighborsClampAtOrigin(t *testing.T) {
	origin := BoardPosition{X: 0, Y: 0}

	if got := origin.Left(); got != origin {
		t.Errorf("Expected Left of origin to clamp to origin, got %v", got)
	}
	if got := origin.Top(); got != origin {
		t.Errorf("Expected Top of origin to clamp to origin, got %v", got)
	}

	// Right and Bottom are not clamped; bounds checks happen at lookup.
	if got := origin.Right(); got != (BoardPosition{X: 1, Y: 0}) {
		t.Errorf("Expected Right of origin to be (1, 0), got %v", got)
	}
	if got := origin.Bottom(); got != (BoardPosition{X: 0, Y: 1}) {
		t.Errorf("Expected Bottom of origin to be (0, 1), got %v", got)
	}
}

func TestBoardPositionDistances(t *testing.T) {
	a := BoardPosition{X: 1, Y: 2}
	b := BoardPosition{X: 4, Y: 6}

	if d := a.Distance(b); math.Abs(float64(d)-5) > 1e-6 {
		t.Errorf("Expected Euclidean distance 5, got %f", d)
	}
	if d := a.DistanceTaxicab(b); d != 7 {
		t.Errorf("Expected taxicab distance 7, got %d", d)
	}
	if d := b.DistanceTaxicab(a); d != 7 {
		t.Errorf("Expected taxicab distance to be symmetric, got %d", d)
	}
}

func TestXYNeighborsBufOrderAndCount(t *testing.T) {
	center := BoardPosition{X: 5, Y: 5, Z: 0}
	var out []BoardPosition

	center.XYNeighborsBuf(1, &out)
	if len(out) != 9 {
		t.Fatalf("Expected 9 tiles at radius 1, got %d", len(out))
	}

	// Row-major enumeration: x varies fastest.
	want := []BoardPosition{
		{4, 4, 0}, {5, 4, 0}, {6, 4, 0},
		{4, 5, 0}, {5, 5, 0}, {6, 5, 0},
		{4, 6, 0}, {5, 6, 0}, {6, 6, 0},
	}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("Expected tile %d to be %v, got %v", i, w, out[i])
		}
	}

	center.XYNeighborsBuf(5, &out)
	if len(out) != 121 {
		t.Errorf("Expected 121 tiles at radius 5, got %d", len(out))
	}
}

func TestXYNeighborsBufClampedCorner(t *testing.T) {
	corner := BoardPosition{X: 0, Y: 0, Z: 0}
	var out []BoardPosition

	corner.XYNeighborsBufClamped(5, &out, 0, 9, 0, 9)
	if len(out) != 36 {
		t.Fatalf("Expected 36 tiles for radius 5 clamped at a corner, got %d", len(out))
	}
	for _, p := range out {
		if p.X < 0 || p.Y < 0 || p.X > 9 || p.Y > 9 {
			t.Errorf("Expected clamped neighbor inside bounds, got %v", p)
		}
	}
}

func TestNeighborIteratorMatchesBuffer(t *testing.T) {
	center := BoardPosition{X: 2, Y: 1, Z: 0}
	var buf []BoardPosition
	center.XYNeighborsBufClamped(3, &buf, 0, 7, 0, 7)

	it := center.IterXYNeighbors(3, 8, 8)
	i := 0
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		if i >= len(buf) {
			t.Fatalf("Iterator produced more than %d tiles", len(buf))
		}
		if p != buf[i] {
			t.Errorf("Expected iterator tile %d to be %v, got %v", i, buf[i], p)
		}
		i++
	}
	if i != len(buf) {
		t.Errorf("Expected iterator to yield %d tiles, got %d", len(buf), i)
	}
}
