package bounding

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// testDirections is a coarse direction grid covering all octants and axes.
func testDirections() []mgl64.Vec3 {
	var dirs []mgl64.Vec3
	for x := -1.0; x <= 1; x++ {
		for y := -1.0; y <= 1; y++ {
			for z := -1.0; z <= 1; z++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				dirs = append(dirs, mgl64.Vec3{x, y, z})
			}
		}
	}
	return dirs
}

func TestBox_SupportMapping(t *testing.T) {
	b := Box{Min: mgl64.Vec3{-1, -2, -3}, Max: mgl64.Vec3{4, 5, 6}}

	t.Run("selects the extreme corner per axis sign", func(t *testing.T) {
		got := b.SupportMapping(mgl64.Vec3{1, -1, 1})
		expected := mgl64.Vec3{4, -2, 6}
		if got != expected {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	})

	t.Run("support dominates every corner", func(t *testing.T) {
		corners := b.Corners()
		for _, d := range testDirections() {
			support := b.SupportMapping(d)
			best := support.Dot(d)
			for _, corner := range corners {
				if corner.Dot(d) > best+1e-12 {
					t.Errorf("Corner %v beats support %v along %v", corner, support, d)
				}
			}
		}
	})
}

func TestBox_ContainsPoint(t *testing.T) {
	b := Box{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}}

	if !b.ContainsPoint(mgl64.Vec3{0, 0, 0}) {
		t.Error("Expected origin inside the unit box")
	}
	if !b.ContainsPoint(mgl64.Vec3{1, 1, 1}) {
		t.Error("Expected boundary corner inside the box")
	}
	if b.ContainsPoint(mgl64.Vec3{1.01, 0, 0}) {
		t.Error("Expected outside point rejected")
	}
}

func TestBox_Intersects(t *testing.T) {
	a := Box{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}}

	cases := []struct {
		name     string
		other    Box
		expected bool
	}{
		{"overlapping", Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}}, true},
		{"touching faces", Box{Min: mgl64.Vec3{1, -1, -1}, Max: mgl64.Vec3{3, 1, 1}}, true},
		{"separated", Box{Min: mgl64.Vec3{5, 5, 5}, Max: mgl64.Vec3{6, 6, 6}}, false},
		{"contained", Box{Min: mgl64.Vec3{-0.5, -0.5, -0.5}, Max: mgl64.Vec3{0.5, 0.5, 0.5}}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := a.Intersects(c.other); got != c.expected {
				t.Errorf("Expected %v, got %v", c.expected, got)
			}
			// Box overlap is symmetric.
			if got := c.other.Intersects(a); got != c.expected {
				t.Errorf("Expected symmetric result %v, got %v", c.expected, got)
			}
		})
	}
}

func TestBox_IntersectsSphere(t *testing.T) {
	b := Box{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}}

	t.Run("sphere near a face", func(t *testing.T) {
		if !b.IntersectsSphere(Sphere{Center: mgl64.Vec3{2.5, 0, 0}, Radius: 2}) {
			t.Error("Expected overlap with sphere reaching the +X face")
		}
	})
	t.Run("sphere near a corner", func(t *testing.T) {
		// Corner (1,1,1); center at distance sqrt(3) from it.
		if b.IntersectsSphere(Sphere{Center: mgl64.Vec3{2, 2, 2}, Radius: 1.7}) {
			t.Error("Expected no overlap: corner distance exceeds radius")
		}
		if !b.IntersectsSphere(Sphere{Center: mgl64.Vec3{2, 2, 2}, Radius: 1.8}) {
			t.Error("Expected overlap: corner distance within radius")
		}
	})
	t.Run("sphere center inside", func(t *testing.T) {
		if !b.IntersectsSphere(Sphere{Center: mgl64.Vec3{0.5, 0, 0}, Radius: 0.1}) {
			t.Error("Expected overlap with interior sphere")
		}
	})
}

func TestNewBoxFromPoints(t *testing.T) {
	points := []mgl64.Vec3{
		{1, 5, -2},
		{-3, 2, 4},
		{0, 7, 0},
	}
	b := NewBoxFromPoints(points)

	expectedMin := mgl64.Vec3{-3, 2, -2}
	expectedMax := mgl64.Vec3{1, 7, 4}
	if b.Min != expectedMin || b.Max != expectedMax {
		t.Errorf("Expected box [%v, %v], got [%v, %v]", expectedMin, expectedMax, b.Min, b.Max)
	}

	for _, p := range points {
		if !b.ContainsPoint(p) {
			t.Errorf("Expected source point %v inside the box", p)
		}
	}

	if got := NewBoxFromPoints(nil); got != (Box{}) {
		t.Errorf("Expected zero box for no points, got %v", got)
	}
}
