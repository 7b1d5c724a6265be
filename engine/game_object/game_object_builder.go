package game_object

import (
	"triforce/engine/model"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject is enabled for rendering.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithModel sets the Model for this GameObject.
//
// Parameters:
//   - m: the Model to associate
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Model
func WithModel(m model.Model) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mdl = m
	}
}

// WithPosition sets the world position of the GameObject.
//
// Parameters:
//   - x: the x position
//   - y: the y position
//   - z: the z position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = [3]float32{x, y, z}
	}
}

// WithScale sets the scale of the GameObject.
//
// Parameters:
//   - sx: the x scale factor
//   - sy: the y scale factor
//   - sz: the z scale factor
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = [3]float32{sx, sy, sz}
	}
}

// WithRotation sets the rotation of the GameObject as Euler angles in radians.
//
// Parameters:
//   - rx: the x rotation angle
//   - ry: the y rotation angle
//   - rz: the z rotation angle
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(rx, ry, rz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = [3]float32{rx, ry, rz}
	}
}
