package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestLambertian_Scatter(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.3, 0.3)
	lambertian := NewLambertian(albedo)
	random := rand.New(rand.NewSource(42))

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	for i := 0; i < 100; i++ {
		scatter, didScatter := lambertian.Scatter(rayIn, hit, random)

		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray should originate at the hit point, got %v", scatter.Scattered.Origin)
		}

		// Normal + unit vector always lands in the hemisphere around the normal
		if scatter.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Fatalf("Scattered direction %v points below the surface", scatter.Scattered.Direction)
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}

	// Draw until we have decent coverage; the fallback itself is hard to
	// trigger randomly, so assert the invariant the fallback protects:
	// no scatter direction is ever near zero
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		scatter, _ := lambertian.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, random)
		if scatter.Scattered.Direction.NearZero() {
			t.Fatal("Scatter direction should never be near zero")
		}
	}
}
