package scene

import (
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewCoverScene creates a field of small randomized spheres around three
// large ones: glass, diffuse, and metal. Placement and materials are drawn
// from the supplied generator, so a fixed seed reproduces the same scene.
func NewCoverScene(random *rand.Rand) *Scene {
	cameraConfig := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		Width:           400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            20,
		Center:          core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0.6,
		FocusDistance:   10.0,
	}

	s := NewScene(cameraConfig)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Keep the small spheres clear of the big ones
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			chooseMaterial := random.Float64()
			var sphereMaterial core.Material
			switch {
			case chooseMaterial < 0.8:
				// Diffuse with a squared color distribution favoring dark tones
				albedo := core.NewVec3(random.Float64(), random.Float64(), random.Float64()).
					MultiplyVec(core.NewVec3(random.Float64(), random.Float64(), random.Float64()))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMaterial < 0.95:
				albedo := core.NewVec3(
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
				)
				sphereMaterial = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				sphereMaterial = material.NewDielectric(1.5)
			}

			s.Add(geometry.NewSphere(center, 0.2, sphereMaterial))
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}
