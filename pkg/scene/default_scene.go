package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewDefaultScene creates the default scene: a diffuse ground sphere with a
// three-sphere row of diffuse, hollow glass, and metal, viewed obliquely
// with a little depth of field
func NewDefaultScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		Width:           400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            20,
		Center:          core.NewVec3(-2, 2, 1),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    10.0,
		FocusDistance:   3.4,
	}

	s := NewScene(cameraConfig)

	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialGlass := material.NewDielectric(1.5)
	materialGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, materialCenter),
		// Hollow glass: a negative-radius inner shell inverts the normals
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialGlass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.4, materialGlass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialGold),
	)

	return s
}
