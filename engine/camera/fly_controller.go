package camera

import (
	"sync"

	"triforce/common"
)

// Base local axes for the identity orientation: right +X, up +Y, forward -Z.
var (
	baseRight   = [3]float32{1, 0, 0}
	baseUp      = [3]float32{0, 1, 0}
	baseForward = [3]float32{0, 0, -1}
)

type flyControllerImpl struct {
	mu *sync.Mutex

	position    [3]float32
	orientation common.Quat

	// Cached local axes, derived from orientation after every rotation.
	right, up, forward [3]float32

	// speed is the translation speed in world units per second.
	speed float32
	// yawSpeed is the rotation speed in degrees per second, shared by yaw,
	// pitch, and roll.
	yawSpeed float32

	// Default pose restored by Reset. Captured from the builder options so
	// Reset always lands on the same pose regardless of movement history.
	defaultPosition    [3]float32
	defaultOrientation common.Quat
}

// FlyController is a free-fly camera pose: a world-space position plus an
// orientation quaternion. Movement happens along the current local axes and
// rotation about them, so controls stay relative to where the camera faces.
// All methods are safe for concurrent use.
type FlyController interface {
	// Position returns the controller's world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Orientation returns the controller's orientation quaternion (unit length).
	//
	// Returns:
	//   - common.Quat: the orientation
	Orientation() common.Quat

	// RightAxis returns the current local right axis (unit length).
	//
	// Returns:
	//   - [3]float32: the right axis
	RightAxis() [3]float32

	// UpAxis returns the current local up axis (unit length).
	//
	// Returns:
	//   - [3]float32: the up axis
	UpAxis() [3]float32

	// ForwardAxis returns the current local forward axis (unit length).
	//
	// Returns:
	//   - [3]float32: the forward axis
	ForwardAxis() [3]float32

	// Speed returns the translation speed in world units per second.
	//
	// Returns:
	//   - float32: the speed
	Speed() float32

	// YawSpeed returns the rotation speed in degrees per second.
	//
	// Returns:
	//   - float32: the rotation speed
	YawSpeed() float32

	// SetSpeed sets the translation speed in world units per second.
	//
	// Parameters:
	//   - speed: the new speed
	SetSpeed(speed float32)

	// SetYawSpeed sets the rotation speed in degrees per second.
	//
	// Parameters:
	//   - yawSpeed: the new rotation speed
	SetYawSpeed(yawSpeed float32)

	// MoveRight translates along the current local right axis by
	// speed * delta world units. Negative delta moves left.
	//
	// Parameters:
	//   - delta: elapsed seconds, signed for direction
	MoveRight(delta float32)

	// MoveUp translates along the current local up axis by speed * delta
	// world units. Negative delta moves down.
	//
	// Parameters:
	//   - delta: elapsed seconds, signed for direction
	MoveUp(delta float32)

	// MoveForward translates along the current local forward axis by
	// speed * delta world units. Negative delta moves backward.
	//
	// Parameters:
	//   - delta: elapsed seconds, signed for direction
	MoveForward(delta float32)

	// Yaw rotates yawSpeed * delta degrees about the current local up axis.
	// Positive delta turns left (counterclockwise seen from above).
	//
	// Parameters:
	//   - delta: elapsed seconds, signed for direction
	Yaw(delta float32)

	// Pitch rotates yawSpeed * delta degrees about the current local right
	// axis. Positive delta tilts the view up.
	//
	// Parameters:
	//   - delta: elapsed seconds, signed for direction
	Pitch(delta float32)

	// Roll rotates yawSpeed * delta degrees about the current local forward
	// axis. Positive delta rolls counterclockwise from the camera's view.
	//
	// Parameters:
	//   - delta: elapsed seconds, signed for direction
	Roll(delta float32)

	// Reset restores the default pose exactly. Calling Reset repeatedly is
	// idempotent: the pose is always the configured default, never a function
	// of prior movement.
	Reset()
}

var _ FlyController = &flyControllerImpl{}

// NewFlyController creates a FlyController at the default pose: position
// (0, 3, 20), identity orientation (looking down -Z), speed 3 units/sec,
// rotation speed 50 degrees/sec. Options override both the current and the
// default pose, so Reset returns to the configured values.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - FlyController: the newly created controller
func NewFlyController(options ...FlyControllerBuilderOption) FlyController {
	f := &flyControllerImpl{
		mu:                 &sync.Mutex{},
		position:           [3]float32{0, 3, 20},
		orientation:        common.QuatIdentity(),
		speed:              3.0,
		yawSpeed:           50.0,
		defaultPosition:    [3]float32{0, 3, 20},
		defaultOrientation: common.QuatIdentity(),
	}
	for _, option := range options {
		option(f)
	}
	f.refreshAxes()
	return f
}

func (f *flyControllerImpl) Position() (x, y, z float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.position[0], f.position[1], f.position[2]
}

func (f *flyControllerImpl) Orientation() common.Quat {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orientation
}

func (f *flyControllerImpl) RightAxis() [3]float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.right
}

func (f *flyControllerImpl) UpAxis() [3]float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.up
}

func (f *flyControllerImpl) ForwardAxis() [3]float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.forward
}

func (f *flyControllerImpl) Speed() float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.speed
}

func (f *flyControllerImpl) YawSpeed() float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.yawSpeed
}

func (f *flyControllerImpl) SetSpeed(speed float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.speed = speed
}

func (f *flyControllerImpl) SetYawSpeed(yawSpeed float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.yawSpeed = yawSpeed
}

func (f *flyControllerImpl) MoveRight(delta float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.translate(f.right, delta)
}

func (f *flyControllerImpl) MoveUp(delta float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.translate(f.up, delta)
}

func (f *flyControllerImpl) MoveForward(delta float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.translate(f.forward, delta)
}

func (f *flyControllerImpl) Yaw(delta float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rotate(f.up, delta)
}

func (f *flyControllerImpl) Pitch(delta float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rotate(f.right, delta)
}

func (f *flyControllerImpl) Roll(delta float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rotate(f.forward, delta)
}

func (f *flyControllerImpl) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.position = f.defaultPosition
	f.orientation = f.defaultOrientation
	f.refreshAxes()
}

// translate moves the position along axis by speed * delta.
// Caller must hold the mutex.
func (f *flyControllerImpl) translate(axis [3]float32, delta float32) {
	f.position = common.Add3(f.position, common.Scale3(axis, f.speed*delta))
}

// rotate composes a rotation of yawSpeed * delta degrees about axis onto the
// orientation and refreshes the cached local axes. The quaternion is
// renormalized after every composition so drift never accumulates.
// Caller must hold the mutex.
func (f *flyControllerImpl) rotate(axis [3]float32, delta float32) {
	angle := common.DegToRad(f.yawSpeed * delta)
	dq := common.QuatFromAxisAngle(axis[0], axis[1], axis[2], angle)
	f.orientation = common.QuatNormalize(common.QuatMul(dq, f.orientation))
	f.refreshAxes()
}

// refreshAxes rederives the local axes from the orientation quaternion. Axes
// are never integrated incrementally, so they stay orthonormal.
// Caller must hold the mutex.
func (f *flyControllerImpl) refreshAxes() {
	f.right = common.RotateVec3(f.orientation, baseRight)
	f.up = common.RotateVec3(f.orientation, baseUp)
	f.forward = common.RotateVec3(f.orientation, baseForward)
}
