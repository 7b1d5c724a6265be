package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-5

func TestMul4Identity(t *testing.T) {
	var id, m, out [16]float32
	Identity(id[:])
	BuildModelMatrix(m[:], 1, 2, 3, 0.5, 1.0, 1.5, 2, 2, 2)

	Mul4(out[:], id[:], m[:])
	assert.InDeltaSlice(t, m[:], out[:], epsilon)

	Mul4(out[:], m[:], id[:])
	assert.InDeltaSlice(t, m[:], out[:], epsilon)
}

func TestPerspectiveDepthRange(t *testing.T) {
	var proj [16]float32
	Perspective(proj[:], DegToRad(67), 4.0/3.0, 0.1, 100)

	// A point on the near plane maps to clip depth 0 after the w divide.
	nearZ := proj[10]*-0.1 + proj[14]
	nearW := proj[11] * -0.1
	assert.InDelta(t, 0.0, nearZ/nearW, epsilon)

	// A point on the far plane maps to clip depth 1.
	farZ := proj[10]*-100 + proj[14]
	farW := proj[11] * -100
	assert.InDelta(t, 1.0, farZ/farW, epsilon)
}

func TestTranslationMovesPoint(t *testing.T) {
	var m [16]float32
	Translation(m[:], 5, -3, 2)
	p := TransformPoint3(m[:], [3]float32{1, 1, 1})
	assert.InDeltaSlice(t, []float32{6, -2, 3}, p[:], epsilon)
}

func TestQuatFromAxisAngleRotates(t *testing.T) {
	// 90 degrees about +Y sends -Z to -X.
	q := QuatFromAxisAngle(0, 1, 0, float32(math.Pi/2))
	v := RotateVec3(q, [3]float32{0, 0, -1})
	assert.InDeltaSlice(t, []float32{-1, 0, 0}, v[:], epsilon)
}

func TestQuatMulComposes(t *testing.T) {
	// Two 45 degree yaws equal one 90 degree yaw.
	half := QuatFromAxisAngle(0, 1, 0, float32(math.Pi/4))
	full := QuatFromAxisAngle(0, 1, 0, float32(math.Pi/2))
	composed := QuatNormalize(QuatMul(half, half))

	v := [3]float32{0, 0, -1}
	got := RotateVec3(composed, v)
	want := RotateVec3(full, v)
	assert.InDeltaSlice(t, want[:], got[:], epsilon)
}

func TestQuatConjugateInverts(t *testing.T) {
	q := QuatFromAxisAngle(0.267261, 0.534522, 0.801784, 1.2)
	v := [3]float32{3, -1, 2}
	back := RotateVec3(QuatConjugate(q), RotateVec3(q, v))
	assert.InDeltaSlice(t, v[:], back[:], epsilon)
}

func TestRotationFromQuatMatchesRotateVec3(t *testing.T) {
	q := QuatNormalize(QuatMul(
		QuatFromAxisAngle(0, 1, 0, 0.7),
		QuatFromAxisAngle(1, 0, 0, -0.3),
	))
	var m [16]float32
	RotationFromQuat(m[:], q)

	v := [3]float32{1, 2, 3}
	viaMatrix := TransformPoint3(m[:], v)
	viaQuat := RotateVec3(q, v)
	assert.InDeltaSlice(t, viaQuat[:], viaMatrix[:], epsilon)
}

func TestQuatNormalizeDegenerate(t *testing.T) {
	q := QuatNormalize(Quat{})
	assert.Equal(t, QuatIdentity(), q)
}

func TestVectorHelpers(t *testing.T) {
	assert.InDelta(t, 0.0, Dot3([3]float32{1, 0, 0}, [3]float32{0, 1, 0}), epsilon)

	n := Normalize3([3]float32{0, 3, 4})
	assert.InDeltaSlice(t, []float32{0, 0.6, 0.8}, n[:], epsilon)

	c := Cross3([3]float32{1, 0, 0}, [3]float32{0, 1, 0})
	assert.InDeltaSlice(t, []float32{0, 0, 1}, c[:], epsilon)

	require.Equal(t, [3]float32{0, 0, 0}, Normalize3([3]float32{}))
}

func TestSliceToBytesLength(t *testing.T) {
	data := []float32{1, 2, 3, 4}
	b := SliceToBytes(data)
	require.Len(t, b, 16)
	assert.Nil(t, SliceToBytes([]float32{}))
}
