package pairwise

import (
	"math"
	"testing"
)

func TestPhiPerfectCooccurrence(t *testing.T) {
	// Two items that always co-occur and never appear apart.
	phi, ok := Phi(5, 0, 0, 5)
	if !ok {
		t.Fatal("denominator unexpectedly zero")
	}
	if math.Abs(phi-1) > 1e-12 {
		t.Errorf("phi = %f, want 1", phi)
	}
}

func TestPhiPerfectAvoidance(t *testing.T) {
	// Two items that each appear alone and never together.
	phi, ok := Phi(0, 5, 5, 0)
	if !ok {
		t.Fatal("denominator unexpectedly zero")
	}
	if math.Abs(phi+1) > 1e-12 {
		t.Errorf("phi = %f, want -1", phi)
	}
}

func TestPhiIndependence(t *testing.T) {
	// Presence split evenly and independently across 4 groups.
	phi, ok := Phi(1, 1, 1, 1)
	if !ok {
		t.Fatal("denominator unexpectedly zero")
	}
	if math.Abs(phi) > 1e-12 {
		t.Errorf("phi = %f, want 0", phi)
	}
}

func TestPhiBounds(t *testing.T) {
	cases := []struct{ n11, n10, n01, n00 int64 }{
		{3, 1, 2, 4},
		{10, 1, 1, 10},
		{1, 9, 9, 1},
		{7, 2, 0, 3},
	}
	for _, c := range cases {
		phi, ok := Phi(c.n11, c.n10, c.n01, c.n00)
		if !ok {
			t.Errorf("Phi(%d,%d,%d,%d): unexpected zero denominator", c.n11, c.n10, c.n01, c.n00)
			continue
		}
		if phi < -1 || phi > 1 {
			t.Errorf("Phi(%d,%d,%d,%d) = %f, outside [-1, 1]", c.n11, c.n10, c.n01, c.n00, phi)
		}
	}
}

func TestPhiDegenerateDenominator(t *testing.T) {
	// Item present in all groups: n01 = n00 = 0.
	if _, ok := Phi(3, 2, 0, 0); ok {
		t.Error("expected ok = false when an item is in every group")
	}
	// Item present in no group: n11 = n10 = 0.
	if _, ok := Phi(0, 0, 2, 3); ok {
		t.Error("expected ok = false when an item is in no group")
	}
}

func TestPhiFromCounts(t *testing.T) {
	c := NewCounter()
	c.AddGroup([]string{"a", "b"})
	c.AddGroup([]string{"a", "b"})
	c.AddGroup([]string{"c"})

	phi, ok := PhiFromCounts(c, "a", "b")
	if !ok {
		t.Fatal("denominator unexpectedly zero")
	}
	if math.Abs(phi-1) > 1e-12 {
		t.Errorf("phi = %f, want 1 for always-co-occurring items", phi)
	}
}
