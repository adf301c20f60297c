package renderer

import (
	"fmt"
	"image/color"
	"io"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// resolvePixel averages an accumulated sample color and applies clamping
// and gamma correction. Everything upstream works in unclamped linear
// space; this is the only place color values are clamped. Clamping comes
// first so negative components never reach the gamma power function.
func resolvePixel(accumulated core.Vec3, samplesPerPixel int) core.Vec3 {
	averaged := accumulated.Multiply(1.0 / float64(samplesPerPixel))
	return averaged.Clamp(0.0, 1.0).GammaCorrect(2.0)
}

// WriteColor averages an accumulated sample color and emits one PPM triplet
func WriteColor(w io.Writer, accumulated core.Vec3, samplesPerPixel int) error {
	resolved := resolvePixel(accumulated, samplesPerPixel)

	_, err := fmt.Fprintf(w, "%d %d %d\n",
		uint8(255*resolved.X),
		uint8(255*resolved.Y),
		uint8(255*resolved.Z))
	return err
}

// Vec3ToRGBA averages an accumulated sample color into an RGBA pixel value
func Vec3ToRGBA(accumulated core.Vec3, samplesPerPixel int) color.RGBA {
	resolved := resolvePixel(accumulated, samplesPerPixel)

	return color.RGBA{
		R: uint8(255 * resolved.X),
		G: uint8(255 * resolved.Y),
		B: uint8(255 * resolved.Z),
		A: 255,
	}
}
