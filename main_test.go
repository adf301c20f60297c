package main

import (
	"math/rand"
	"testing"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"cover scene", "cover", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			random := rand.New(rand.NewSource(42))
			scene, err := createScene(tt.sceneType, random)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
			}

			if scene.CameraConfig.Width <= 0 {
				t.Errorf("Scene camera width should be positive, got %d", scene.CameraConfig.Width)
			}
			if err := scene.CameraConfig.Validate(); err != nil {
				t.Errorf("Scene camera config should validate: %v", err)
			}
		})
	}
}

func TestRun_RejectsUnknownFormat(t *testing.T) {
	if err := run("default", 0, 0, 0, 42, "bmp"); err == nil {
		t.Error("Expected error for unknown output format")
	}
}

func TestRun_RejectsUnknownScene(t *testing.T) {
	if err := run("nonexistent", 0, 0, 0, 42, "ppm"); err == nil {
		t.Error("Expected error for unknown scene")
	}
}
