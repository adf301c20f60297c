package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene bundles a camera configuration with the shapes it renders and the
// background sky colors. It satisfies the renderer's Scene interface.
type Scene struct {
	CameraConfig renderer.CameraConfig
	Shapes       []core.Shape
	TopColor     core.Vec3
	BottomColor  core.Vec3
}

// NewScene creates an empty scene with the default sky gradient
func NewScene(cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		CameraConfig: cameraConfig,
		Shapes:       make([]core.Shape, 0),
		TopColor:     core.NewVec3(0.5, 0.7, 1.0), // Sky blue at the zenith
		BottomColor:  core.NewVec3(1.0, 1.0, 1.0), // White at the horizon
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...core.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// GetShapes returns the shapes in the scene
func (s *Scene) GetShapes() []core.Shape {
	return s.Shapes
}

// GetBackgroundColors returns the top and bottom background gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}
