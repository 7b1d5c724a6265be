package common

import (
	"math"
	"unsafe"
)

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (OpenGL/WebGPU convention).
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective creates a perspective projection matrix.
// Uses the WebGPU clip space depth convention [0, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
}

// Translation writes a 4x4 translation matrix into out (column-major).
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - x, y, z: translation components
func Translation(out []float32, x, y, z float32) {
	Identity(out)
	out[12] = x
	out[13] = y
	out[14] = z
}

// BuildModelMatrix constructs a 4x4 model matrix from position, Euler rotation, and scale.
// The rotation order is Y * X * Z (yaw-pitch-roll). All matrices are column-major.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - posX, posY, posZ: translation in world space
//   - rotX, rotY, rotZ: rotation angles in radians around each axis
//   - scaleX, scaleY, scaleZ: scale factors along each axis
func BuildModelMatrix(out []float32, posX, posY, posZ, rotX, rotY, rotZ, scaleX, scaleY, scaleZ float32) {
	cx := float32(math.Cos(float64(rotX)))
	sx := float32(math.Sin(float64(rotX)))
	cy := float32(math.Cos(float64(rotY)))
	sy := float32(math.Sin(float64(rotY)))
	cz := float32(math.Cos(float64(rotZ)))
	sz := float32(math.Sin(float64(rotZ)))

	// R = Ry * Rx * Rz, column-major
	out[0] = (cy*cz + sy*sx*sz) * scaleX
	out[1] = (cx * sz) * scaleX
	out[2] = (-sy*cz + cy*sx*sz) * scaleX
	out[3] = 0

	out[4] = (cy*-sz + sy*sx*cz) * scaleY
	out[5] = (cx * cz) * scaleY
	out[6] = (sy*sz + cy*sx*cz) * scaleY
	out[7] = 0

	out[8] = (sy * cx) * scaleZ
	out[9] = (-sx) * scaleZ
	out[10] = (cy * cx) * scaleZ
	out[11] = 0

	out[12] = posX
	out[13] = posY
	out[14] = posZ
	out[15] = 1
}

// Quat is a rotation quaternion in (w, x, y, z) order.
// The zero value is not a valid rotation; use QuatIdentity.
type Quat struct {
	W, X, Y, Z float32
}

// QuatIdentity returns the identity rotation.
//
// Returns:
//   - Quat: the identity quaternion (w=1)
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle builds a unit quaternion rotating angle radians about the
// given axis. The axis must be unit length.
//
// Parameters:
//   - ax, ay, az: rotation axis (unit length)
//   - angle: rotation angle in radians
//
// Returns:
//   - Quat: the rotation quaternion
func QuatFromAxisAngle(ax, ay, az, angle float32) Quat {
	half := float64(angle) / 2.0
	s := float32(math.Sin(half))
	return Quat{
		W: float32(math.Cos(half)),
		X: ax * s,
		Y: ay * s,
		Z: az * s,
	}
}

// QuatMul composes two rotations: applying the result is equivalent to
// applying b first, then a.
//
// Parameters:
//   - a: left-hand quaternion
//   - b: right-hand quaternion
//
// Returns:
//   - Quat: the product a * b
func QuatMul(a, b Quat) Quat {
	return Quat{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// QuatNormalize rescales q to unit length. Repeated composition drifts the
// magnitude away from 1, so callers normalize after every accumulation step.
//
// Parameters:
//   - q: the quaternion to normalize
//
// Returns:
//   - Quat: q scaled to unit length (identity if q is degenerate)
func QuatNormalize(q Quat) Quat {
	mag := math.Sqrt(float64(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z))
	if mag == 0 {
		return QuatIdentity()
	}
	inv := float32(1.0 / mag)
	return Quat{W: q.W * inv, X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv}
}

// QuatConjugate returns the conjugate of q. For a unit quaternion this is the
// inverse rotation.
//
// Parameters:
//   - q: the quaternion to conjugate
//
// Returns:
//   - Quat: the conjugate (w, -x, -y, -z)
func QuatConjugate(q Quat) Quat {
	return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// RotationFromQuat writes the 4x4 rotation matrix for a unit quaternion into
// out (column-major).
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - q: unit quaternion
func RotationFromQuat(out []float32, q Quat) {
	w, x, y, z := q.W, q.X, q.Y, q.Z

	out[0] = 1 - 2*y*y - 2*z*z
	out[1] = 2*x*y + 2*w*z
	out[2] = 2*x*z - 2*w*y
	out[3] = 0

	out[4] = 2*x*y - 2*w*z
	out[5] = 1 - 2*x*x - 2*z*z
	out[6] = 2*y*z + 2*w*x
	out[7] = 0

	out[8] = 2*x*z + 2*w*y
	out[9] = 2*y*z - 2*w*x
	out[10] = 1 - 2*x*x - 2*y*y
	out[11] = 0

	out[12] = 0
	out[13] = 0
	out[14] = 0
	out[15] = 1
}

// RotateVec3 rotates a 3-component vector by a unit quaternion.
//
// Parameters:
//   - q: unit quaternion
//   - v: the vector to rotate
//
// Returns:
//   - [3]float32: the rotated vector
func RotateVec3(q Quat, v [3]float32) [3]float32 {
	// v' = v + 2w(u x v) + 2(u x (u x v)), u = (x, y, z)
	ux, uy, uz := q.X, q.Y, q.Z
	cx := uy*v[2] - uz*v[1]
	cy := uz*v[0] - ux*v[2]
	cz := ux*v[1] - uy*v[0]

	ccx := uy*cz - uz*cy
	ccy := uz*cx - ux*cz
	ccz := ux*cy - uy*cx

	return [3]float32{
		v[0] + 2*(q.W*cx+ccx),
		v[1] + 2*(q.W*cy+ccy),
		v[2] + 2*(q.W*cz+ccz),
	}
}

// Dot3 returns the dot product of two 3-component vectors.
//
// Parameters:
//   - a, b: the vectors to multiply
//
// Returns:
//   - float32: a . b
func Dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Normalize3 rescales a 3-component vector to unit length. A zero vector is
// returned unchanged.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - [3]float32: v scaled to unit length
func Normalize3(v [3]float32) [3]float32 {
	mag := math.Sqrt(float64(Dot3(v, v)))
	if mag == 0 {
		return v
	}
	inv := float32(1.0 / mag)
	return [3]float32{v[0] * inv, v[1] * inv, v[2] * inv}
}

// Sub3 returns the component-wise difference a - b.
//
// Parameters:
//   - a, b: the operand vectors
//
// Returns:
//   - [3]float32: a - b
func Sub3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Add3 returns the component-wise sum a + b.
//
// Parameters:
//   - a, b: the operand vectors
//
// Returns:
//   - [3]float32: a + b
func Add3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Scale3 returns v scaled by s.
//
// Parameters:
//   - v: the vector to scale
//   - s: the scalar factor
//
// Returns:
//   - [3]float32: v * s
func Scale3(v [3]float32, s float32) [3]float32 {
	return [3]float32{v[0] * s, v[1] * s, v[2] * s}
}

// Cross3 returns the cross product a x b.
//
// Parameters:
//   - a, b: the operand vectors
//
// Returns:
//   - [3]float32: a x b
func Cross3(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// TransformPoint3 transforms a 3D point by a 4x4 column-major matrix,
// treating the point as having w = 1. The w divide is skipped; callers use
// this for affine transforms (view, model) only.
//
// Parameters:
//   - m: the transform matrix (16 elements, column-major)
//   - p: the point to transform
//
// Returns:
//   - [3]float32: the transformed point
func TransformPoint3(m []float32, p [3]float32) [3]float32 {
	return [3]float32{
		m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12],
		m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13],
		m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14],
	}
}

// DegToRad converts degrees to radians.
//
// Parameters:
//   - deg: angle in degrees
//
// Returns:
//   - float32: angle in radians
func DegToRad(deg float32) float32 {
	return deg * float32(math.Pi) / 180.0
}
