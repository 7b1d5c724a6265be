package camera

import (
	"triforce/common"
)

type FlyControllerBuilderOption func(*flyControllerImpl)

// WithPosition sets the controller's position. The value also becomes the
// default pose position restored by Reset.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - FlyControllerBuilderOption: a function that sets the position
func WithPosition(x, y, z float32) FlyControllerBuilderOption {
	return func(f *flyControllerImpl) {
		f.position = [3]float32{x, y, z}
		f.defaultPosition = f.position
	}
}

// WithOrientation sets the controller's orientation quaternion. The value is
// normalized and also becomes the default pose orientation restored by Reset.
//
// Parameters:
//   - q: the orientation quaternion
//
// Returns:
//   - FlyControllerBuilderOption: a function that sets the orientation
func WithOrientation(q common.Quat) FlyControllerBuilderOption {
	return func(f *flyControllerImpl) {
		f.orientation = common.QuatNormalize(q)
		f.defaultOrientation = f.orientation
	}
}

// WithSpeed sets the translation speed in world units per second.
//
// Parameters:
//   - speed: the speed to set
//
// Returns:
//   - FlyControllerBuilderOption: a function that sets the speed
func WithSpeed(speed float32) FlyControllerBuilderOption {
	return func(f *flyControllerImpl) {
		f.speed = speed
	}
}

// WithYawSpeed sets the rotation speed in degrees per second.
//
// Parameters:
//   - yawSpeed: the rotation speed to set
//
// Returns:
//   - FlyControllerBuilderOption: a function that sets the rotation speed
func WithYawSpeed(yawSpeed float32) FlyControllerBuilderOption {
	return func(f *flyControllerImpl) {
		f.yawSpeed = yawSpeed
	}
}
