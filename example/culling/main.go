package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/bounding"
	"github.com/go-gl/mathgl/mgl64"
)

// Entity is a scene object with a bounding volume used for culling.
type Entity struct {
	Name   string
	Box    *bounding.Box
	Sphere *bounding.Sphere
}

// SetupScene builds a camera frustum and a handful of entities around it.
func SetupScene() (*bounding.Frustum, []Entity) {
	view := bounding.LookAt(
		mgl64.Vec3{0, 2, 8},  // camera position
		mgl64.Vec3{0, 0, 0},  // look at the origin
		mgl64.Vec3{0, 1, 0},  // up
	)
	proj := bounding.PerspectiveFOV(math.Pi/3, 16.0/9.0, 0.5, 100)

	frustum, err := bounding.New(view.Mul4(proj))
	if err != nil {
		panic(err)
	}

	entities := []Entity{
		{Name: "crate in view", Box: &bounding.Box{
			Min: mgl64.Vec3{-1, -1, -1},
			Max: mgl64.Vec3{1, 1, 1},
		}},
		{Name: "crate far behind camera", Box: &bounding.Box{
			Min: mgl64.Vec3{-1, -1, 199},
			Max: mgl64.Vec3{1, 1, 201},
		}},
		{Name: "balloon overhead", Sphere: &bounding.Sphere{
			Center: mgl64.Vec3{0, 30, 0},
			Radius: 2,
		}},
		{Name: "balloon in view", Sphere: &bounding.Sphere{
			Center: mgl64.Vec3{2, 0, -5},
			Radius: 1,
		}},
	}

	return frustum, entities
}

func main() {
	frustum, entities := SetupScene()

	fmt.Println("Frustum culling")
	fmt.Println("===============")
	for _, e := range entities {
		var visible bool
		var containment bounding.Containment

		switch {
		case e.Box != nil:
			visible = frustum.IntersectsBox(*e.Box)
			containment = frustum.ContainsBox(*e.Box)
		case e.Sphere != nil:
			visible = frustum.IntersectsSphere(*e.Sphere)
			containment = frustum.ContainsSphere(*e.Sphere)
		}

		fmt.Printf("  %-25s visible=%-5v containment=%v\n", e.Name, visible, containment)
	}
}
