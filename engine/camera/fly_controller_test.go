package camera

import (
	"math"
	"testing"

	"triforce/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-4

func TestResetRestoresDefaultPose(t *testing.T) {
	ctrl := NewFlyController(
		WithPosition(1, 2, 3),
		WithSpeed(5),
		WithYawSpeed(90),
	)

	ctrl.MoveForward(0.5)
	ctrl.Yaw(0.25)
	ctrl.Pitch(-0.1)
	ctrl.MoveRight(1.5)
	ctrl.Roll(0.3)
	ctrl.MoveUp(-0.7)

	ctrl.Reset()

	x, y, z := ctrl.Position()
	assert.Equal(t, [3]float32{1, 2, 3}, [3]float32{x, y, z})
	assert.Equal(t, common.QuatIdentity(), ctrl.Orientation())

	// Reset is idempotent: a second reset changes nothing.
	ctrl.Reset()
	x2, y2, z2 := ctrl.Position()
	assert.Equal(t, [3]float32{x, y, z}, [3]float32{x2, y2, z2})
	assert.Equal(t, common.QuatIdentity(), ctrl.Orientation())
}

func TestForwardStepsAccumulate(t *testing.T) {
	const (
		speed = 3.0
		dt    = 0.1
		steps = 10
	)
	ctrl := NewFlyController(WithPosition(0, 0, 0), WithSpeed(speed))
	initialForward := ctrl.ForwardAxis()

	for range steps {
		ctrl.MoveForward(dt)
	}

	x, y, z := ctrl.Position()
	want := common.Scale3(initialForward, speed*dt*steps)
	assert.InDeltaSlice(t, want[:], []float32{x, y, z}, epsilon)
}

func TestYawStepsAccumulate(t *testing.T) {
	const (
		yawSpeed = 50.0
		dt       = 0.05
		steps    = 8
	)
	ctrl := NewFlyController(WithYawSpeed(yawSpeed))

	for range steps {
		ctrl.Yaw(dt)
	}

	angle := common.DegToRad(yawSpeed * dt * steps)
	want := common.RotateVec3(
		common.QuatFromAxisAngle(0, 1, 0, angle),
		[3]float32{0, 0, -1},
	)
	got := ctrl.ForwardAxis()
	assert.InDeltaSlice(t, want[:], got[:], epsilon)
}

func TestTranslationFollowsLocalAxes(t *testing.T) {
	ctrl := NewFlyController(WithPosition(0, 0, 0), WithSpeed(1), WithYawSpeed(90))

	// A 90 degree left yaw turns forward from -Z to -X.
	ctrl.Yaw(1.0)
	ctrl.MoveForward(2.0)

	x, y, z := ctrl.Position()
	assert.InDeltaSlice(t, []float32{-2, 0, 0}, []float32{x, y, z}, epsilon)
}

func TestAxesStayOrthonormal(t *testing.T) {
	ctrl := NewFlyController(WithYawSpeed(73))

	deltas := []float32{0.3, -0.7, 1.1, 0.05, -0.4}
	for _, d := range deltas {
		ctrl.Yaw(d)
		ctrl.Pitch(-d)
		ctrl.Roll(d * 0.5)
	}

	r, u, f := ctrl.RightAxis(), ctrl.UpAxis(), ctrl.ForwardAxis()
	assert.InDelta(t, 1.0, common.Dot3(r, r), epsilon)
	assert.InDelta(t, 1.0, common.Dot3(u, u), epsilon)
	assert.InDelta(t, 1.0, common.Dot3(f, f), epsilon)
	assert.InDelta(t, 0.0, common.Dot3(r, u), epsilon)
	assert.InDelta(t, 0.0, common.Dot3(r, f), epsilon)
	assert.InDelta(t, 0.0, common.Dot3(u, f), epsilon)

	// Right-handed frame: right x up = -forward (forward is -Z in local space).
	cross := common.Cross3(r, u)
	neg := common.Scale3(f, -1)
	assert.InDeltaSlice(t, neg[:], cross[:], epsilon)
}

func TestPitchPastVerticalStaysFinite(t *testing.T) {
	ctrl := NewFlyController(WithYawSpeed(60))

	// 120 degrees of pitch, well past straight up.
	ctrl.Pitch(2.0)

	f := ctrl.ForwardAxis()
	for _, v := range f {
		require.False(t, math.IsNaN(float64(v)))
	}
	assert.InDelta(t, 1.0, common.Dot3(f, f), epsilon)
	// Past vertical, forward tips behind the original facing (+Z component).
	assert.Greater(t, f[2], float32(0))
}

func TestZeroDeltaIsNoOp(t *testing.T) {
	ctrl := NewFlyController()
	x0, y0, z0 := ctrl.Position()
	q0 := ctrl.Orientation()

	ctrl.MoveForward(0)
	ctrl.Yaw(0)
	ctrl.Pitch(0)

	x, y, z := ctrl.Position()
	assert.Equal(t, [3]float32{x0, y0, z0}, [3]float32{x, y, z})
	assert.InDelta(t, float64(q0.W), float64(ctrl.Orientation().W), epsilon)
}
