package scene

import (
	"triforce/engine/light"
	"triforce/engine/shading"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithLight attaches a point light to the scene.
//
// Parameters:
//   - l: the light to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLight(l light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lt = l
	}
}

// WithMode sets the initial shading mode. Defaults to shading.ModeBlinnPhong.
//
// Parameters:
//   - mode: the shading mode to start with
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMode(mode shading.Mode) SceneBuilderOption {
	return func(s *scene) {
		s.mode = mode
	}
}

// WithPrepWorkers sets the number of worker goroutines used during the parallel
// CPU prep phase of PrepareFrame. Defaults to runtime.NumCPU()-1.
// Lower values reduce scheduling overhead for scenes with few objects.
//
// Parameters:
//   - n: the number of prep workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPrepWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.prepWorkers = n
	}
}
