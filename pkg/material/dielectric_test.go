package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestDielectric_AlwaysScatters(t *testing.T) {
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	for i := 0; i < 100; i++ {
		scatter, didScatter := glass.Scatter(rayIn, hit, random)
		if !didScatter {
			t.Fatal("Dielectric should never absorb")
		}

		expected := core.NewVec3(1, 1, 1)
		if scatter.Attenuation != expected {
			t.Fatalf("Expected attenuation %v, got %v", expected, scatter.Attenuation)
		}
	}
}

func TestDielectric_NormalIncidenceRefractsStraight(t *testing.T) {
	glass := NewDielectric(1.5)

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	// At normal incidence Schlick reflectance is ~4%, so most samples refract
	// straight through without bending
	random := rand.New(rand.NewSource(42))
	refracted := 0
	for i := 0; i < 1000; i++ {
		scatter, _ := glass.Scatter(rayIn, hit, random)
		dir := scatter.Scattered.Direction.Normalize()
		if dir.Subtract(core.NewVec3(0, -1, 0)).Length() < 1e-9 {
			refracted++
		}
	}

	if refracted < 900 {
		t.Errorf("Expected ~96%% straight refraction at normal incidence, got %d/1000", refracted)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))

	// Ray exiting glass at a shallow angle: sin(theta) * 1.5 > 1, so the ray
	// cannot refract and must reflect internally
	grazing := core.NewVec3(1, -0.1, 0).Normalize()
	rayIn := core.NewRay(core.NewVec3(0, 0.1, 0), grazing)
	hit := core.HitRecord{
		Point:     core.NewVec3(1, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false, // Exiting the material
	}

	scatter, didScatter := glass.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("Expected scatter")
	}

	expected := reflect(grazing, hit.Normal)
	const tolerance = 1e-9
	if scatter.Scattered.Direction.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected internal reflection %v, got %v", expected, scatter.Scattered.Direction)
	}
}

func TestReflectance_Schlick(t *testing.T) {
	// R0 at normal incidence for n=1.5 is ((1-1.5)/(2.5))^2 = 0.04
	r0 := Reflectance(1.0, 1.0/1.5)
	if math.Abs(r0-0.04) > 1e-9 {
		t.Errorf("Expected reflectance 0.04 at normal incidence, got %f", r0)
	}

	// Reflectance approaches 1 at grazing incidence
	grazing := Reflectance(0.0, 1.0/1.5)
	if math.Abs(grazing-1.0) > 1e-9 {
		t.Errorf("Expected reflectance 1.0 at grazing incidence, got %f", grazing)
	}
}
