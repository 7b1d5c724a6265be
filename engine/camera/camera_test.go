package camera

import (
	"testing"

	"triforce/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewMatrixInvertsPose(t *testing.T) {
	ctrl := NewFlyController(WithPosition(4, 3, 20), WithYawSpeed(90))
	ctrl.Yaw(0.5) // 45 degrees left
	ctrl.Pitch(-0.25)

	cam := NewCamera(WithController(ctrl))
	cam.Update()

	view := cam.ViewMatrix()

	// The camera's own position maps to the eye-space origin.
	px, py, pz := ctrl.Position()
	origin := common.TransformPoint3(view[:], [3]float32{px, py, pz})
	assert.InDeltaSlice(t, []float32{0, 0, 0}, origin[:], epsilon)

	// A point one unit ahead of the camera lands on the eye-space -Z axis.
	ahead := common.Add3([3]float32{px, py, pz}, ctrl.ForwardAxis())
	eye := common.TransformPoint3(view[:], ahead)
	assert.InDeltaSlice(t, []float32{0, 0, -1}, eye[:], epsilon)

	// A point one unit to the camera's right lands on the eye-space +X axis.
	right := common.Add3([3]float32{px, py, pz}, ctrl.RightAxis())
	eye = common.TransformPoint3(view[:], right)
	assert.InDeltaSlice(t, []float32{1, 0, 0}, eye[:], epsilon)
}

func TestSetAspectKeepsPose(t *testing.T) {
	ctrl := NewFlyController(WithPosition(1, 2, 3))
	cam := NewCamera(WithController(ctrl), WithAspect(4.0/3.0))
	cam.Update()
	viewBefore := cam.ViewMatrix()

	cam.SetAspect(16.0 / 9.0)

	assert.Equal(t, viewBefore, cam.ViewMatrix())
	assert.InDelta(t, 16.0/9.0, cam.Aspect(), epsilon)
}

func TestViewProjectionIsProduct(t *testing.T) {
	ctrl := NewFlyController(WithPosition(0, 1, 5))
	cam := NewCamera(
		WithController(ctrl),
		WithFov(common.DegToRad(67)),
		WithAspect(1.5),
		WithNear(0.1),
		WithFar(100),
	)
	cam.Update()

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()
	vp := cam.ViewProjectionMatrix()

	var want [16]float32
	common.Mul4(want[:], proj[:], view[:])
	assert.InDeltaSlice(t, want[:], vp[:], epsilon)
}

func TestCameraWithoutControllerIdentityView(t *testing.T) {
	cam := NewCamera()
	cam.Update()

	var id [16]float32
	common.Identity(id[:])
	assert.Equal(t, id, cam.ViewMatrix())
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	var u GPUCameraUniform
	require.Equal(t, 128, u.Size())

	ctrl := NewFlyController(WithPosition(0, 3, 20))
	cam := NewCamera(WithController(ctrl))
	cam.Update()
	u.View = cam.ViewMatrix()
	u.Projection = cam.ProjectionMatrix()

	buf := u.Marshal()
	require.Len(t, buf, 128)
	// First column of the identity-orientation view matrix.
	assert.Equal(t, byte(0x80), buf[2])
	assert.Equal(t, byte(0x3f), buf[3]) // 1.0f little-endian
}
