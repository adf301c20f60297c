package renderer

import (
	"fmt"
	"image"
	"io"
	"math"
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// CameraConfig contains the user-facing camera and sampling configuration
type CameraConfig struct {
	AspectRatio     float64   // Ratio of image width over height
	Width           int       // Rendered image width in pixels
	SamplesPerPixel int       // Number of random samples per pixel
	MaxDepth        int       // Maximum number of ray bounces into the scene
	VFov            float64   // Vertical field of view in degrees
	Center          core.Vec3 // Point the camera is looking from
	LookAt          core.Vec3 // Point the camera is looking at
	Up              core.Vec3 // Camera-relative up direction
	DefocusAngle    float64   // Variation angle of rays through each pixel, in degrees (0 = pinhole)
	FocusDistance   float64   // Distance from Center to the plane of perfect focus
}

// Validate checks the configuration for degenerate geometry before any
// derived state is computed. Rendering never starts on an invalid config.
func (c CameraConfig) Validate() error {
	if c.AspectRatio <= 0 {
		return fmt.Errorf("aspect ratio must be positive, got %f", c.AspectRatio)
	}
	if c.Width <= 0 {
		return fmt.Errorf("image width must be positive, got %d", c.Width)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must be non-negative, got %d", c.MaxDepth)
	}
	if c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("vertical fov must be in (0, 180) degrees, got %f", c.VFov)
	}
	if c.Center == c.LookAt {
		return fmt.Errorf("camera center %v equals look-at point", c.Center)
	}
	if c.DefocusAngle < 0 {
		return fmt.Errorf("defocus angle must be non-negative, got %f", c.DefocusAngle)
	}
	if c.FocusDistance <= 0 {
		return fmt.Errorf("focus distance must be positive, got %f", c.FocusDistance)
	}
	if c.Up.Cross(c.Center.Subtract(c.LookAt)).NearZero() {
		return fmt.Errorf("up direction %v is parallel to the view direction", c.Up)
	}
	return nil
}

// Scene provides the shapes and background colors for rendering
type Scene interface {
	GetShapes() []core.Shape
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// Camera holds a validated configuration plus the frame state derived from
// it: image dimensions, the orthonormal camera basis, the pixel grid, and
// the defocus disk. The derived state is computed once in NewCamera and
// never mutated, so a Camera is safe to reuse across renders.
type Camera struct {
	config      CameraConfig
	imageHeight int       // Rendered image height in pixels
	center      core.Vec3 // Camera center (the config's Center)
	pixel00Loc  core.Vec3 // Location of the center of pixel (0, 0)
	pixelDeltaU core.Vec3 // Offset to the pixel to the right
	pixelDeltaV core.Vec3 // Offset to the pixel below
	u, v, w     core.Vec3 // Camera frame basis vectors
	defocusU    core.Vec3 // Defocus disk horizontal radius
	defocusV    core.Vec3 // Defocus disk vertical radius
	logger      core.Logger
}

// NewCamera validates the configuration and computes the derived frame
func NewCamera(config CameraConfig, logger core.Logger) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid camera config: %w", err)
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	// Image height follows from width and aspect ratio, clamped to at least
	// one row so the viewport math below never divides by zero
	imageHeight := int(math.Round(float64(config.Width) / config.AspectRatio))
	if imageHeight < 1 {
		imageHeight = 1
	}

	center := config.Center

	// Viewport dimensions from the vertical field of view, measured on the
	// focus plane
	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float64(config.Width) / float64(imageHeight))

	// Right-handed orthonormal basis: w points from LookAt toward the camera
	w := center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(imageHeight))

	// Upper-left pixel center: half a pixel step in from the viewport corner
	viewportUpperLeft := center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	// Defocus disk radius collapses to zero at angle 0, giving a pinhole
	defocusRadius := config.FocusDistance * math.Tan(config.DefocusAngle/2*math.Pi/180)
	defocusU := u.Multiply(defocusRadius)
	defocusV := v.Multiply(defocusRadius)

	return &Camera{
		config:      config,
		imageHeight: imageHeight,
		center:      center,
		pixel00Loc:  pixel00Loc,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		u:           u,
		v:           v,
		w:           w,
		defocusU:    defocusU,
		defocusV:    defocusV,
		logger:      logger,
	}, nil
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the derived image height in pixels
func (c *Camera) Height() int {
	return c.imageHeight
}

// GetRay generates a randomly sampled ray for the pixel at (i, j),
// originating from the camera defocus disk
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	pixelCenter := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
	pixelSample := pixelCenter.Add(c.pixelSampleSquare(random))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(random)
	}

	return core.NewRay(rayOrigin, pixelSample.Subtract(rayOrigin))
}

// pixelSampleSquare returns a random offset within the pixel footprint,
// uniform in [-0.5, 0.5] pixel-step units on each axis
func (c *Camera) pixelSampleSquare(random *rand.Rand) core.Vec3 {
	px := -0.5 + random.Float64()
	py := -0.5 + random.Float64()
	return c.pixelDeltaU.Multiply(px).Add(c.pixelDeltaV.Multiply(py))
}

// defocusDiskSample returns a random point on the camera defocus disk
func (c *Camera) defocusDiskSample(random *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.center.Add(c.defocusU.Multiply(p.X)).Add(c.defocusV.Multiply(p.Y))
}

// hitScene finds the nearest intersection across all shapes in the scene
func (c *Camera) hitScene(scene Scene, ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range scene.GetShapes() {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// backgroundGradient returns the sky color for a ray that hits nothing
func (c *Camera) backgroundGradient(scene Scene, ray core.Ray) core.Vec3 {
	topColor, bottomColor := scene.GetBackgroundColors()

	unitDirection := ray.Direction.Normalize()

	// Map direction.Y from [-1, 1] to [0, 1] and lerp bottom to top
	a := 0.5 * (unitDirection.Y + 1.0)
	return bottomColor.Lerp(topColor, a)
}

// rayColor evaluates the color carried by a ray. The recursion over bounces
// is unrolled into a loop that accumulates the attenuation product; it ends
// on depth exhaustion, absorption, or a background miss.
func (c *Camera) rayColor(ray core.Ray, depth int, scene Scene, random *rand.Rand) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for ; ; depth-- {
		// Bounce budget exhausted: no more light is gathered
		if depth <= 0 {
			return core.NewVec3(0, 0, 0)
		}

		// The 0.001 lower bound skips self-intersections at the ray origin
		hit, isHit := c.hitScene(scene, ray, 0.001, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(c.backgroundGradient(scene, ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
		if !didScatter {
			return core.NewVec3(0, 0, 0) // Material absorbed the ray
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}
}

// samplePixel averages SamplesPerPixel independent rays through pixel (i, j)
func (c *Camera) samplePixel(i, j int, scene Scene, random *rand.Rand) core.Vec3 {
	colorAccum := core.NewVec3(0, 0, 0)
	for sample := 0; sample < c.config.SamplesPerPixel; sample++ {
		ray := c.GetRay(i, j, random)
		colorAccum = colorAccum.Add(c.rayColor(ray, c.config.MaxDepth, scene, random))
	}
	return colorAccum
}

// Render renders the scene as a plain-text PPM (P3) pixel stream in
// row-major order, top to bottom. Scanline progress goes to the logger.
func (c *Camera) Render(scene Scene, random *rand.Rand, output io.Writer) error {
	if _, err := fmt.Fprintf(output, "P3\n%d %d\n255\n", c.config.Width, c.imageHeight); err != nil {
		return fmt.Errorf("writing PPM header: %w", err)
	}

	for j := 0; j < c.imageHeight; j++ {
		c.logger.Printf("\rScanlines remaining: %d ", c.imageHeight-j)
		for i := 0; i < c.config.Width; i++ {
			colorAccum := c.samplePixel(i, j, scene, random)
			if err := WriteColor(output, colorAccum, c.config.SamplesPerPixel); err != nil {
				return fmt.Errorf("writing pixel (%d, %d): %w", i, j, err)
			}
		}
	}
	c.logger.Printf("\rDone.                 \n")

	return nil
}

// RenderImage renders the scene into an RGBA image using the same traversal
// order and per-pixel sampling as Render
func (c *Camera) RenderImage(scene Scene, random *rand.Rand) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.config.Width, c.imageHeight))

	for j := 0; j < c.imageHeight; j++ {
		c.logger.Printf("\rScanlines remaining: %d ", c.imageHeight-j)
		for i := 0; i < c.config.Width; i++ {
			colorAccum := c.samplePixel(i, j, scene, random)
			img.SetRGBA(i, j, Vec3ToRGBA(colorAccum, c.config.SamplesPerPixel))
		}
	}
	c.logger.Printf("\rDone.                 \n")

	return img
}
