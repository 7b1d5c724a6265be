package camera

import (
	"math"
	"strconv"
	"sync"
	"sync/atomic"

	"triforce/common"
	"triforce/engine/renderer/bind_group_provider"

	"github.com/cogentcore/webgpu/wgpu"
)

// cameraCount is an atomic counter used to generate unique bind group provider names for each camera instance.
var cameraCount atomic.Uint64

type cameraImpl struct {
	mu *sync.Mutex

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32

	controller        FlyController
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Camera defines the interface for the camera system.
// The camera holds perspective settings and computes view/projection matrices
// from an attached FlyController each frame via Update().
type Camera interface {
	// Fov returns the field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the current combined view-projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// Controller returns the attached FlyController.
	// Returns nil if no controller is attached.
	//
	// Returns:
	//   - FlyController: the attached controller or nil
	Controller() FlyController

	// BindGroupProvider returns the camera's bind group provider for GPU resources.
	// Returns nil if not set.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider or nil
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// Update reads the pose from the controller and recomputes matrices.
	// Should be called once per frame before uniforms are uploaded.
	// If no controller is attached, this method does nothing.
	Update()

	// SetFov sets the field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	// The camera pose is untouched; only the projection changes.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// SetController attaches a FlyController to the camera.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl FlyController)

	// SetBindGroupProvider sets the camera's bind group provider.
	//
	// Parameters:
	//   - provider: the bind group provider to set
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings.
// A controller must be attached via SetController or WithController option
// before pose data is available; until then the view matrix is identity.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                   &sync.Mutex{},
		fov:                  67.0 * (math.Pi / 180.0), // radians
		aspect:               1.0,
		near:                 0.1,
		far:                  100.0,
		viewMatrix:           [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
		projectionMatrix:     [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
		viewProjectionMatrix: [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
		bindGroupProvider: bind_group_provider.NewBindGroupProvider(
			"camera_" + strconv.FormatUint(cameraCount.Load(), 10),
		),
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	cameraCount.Add(1)
	return c
}

// BindGroupLayoutDescriptor returns the layout for the camera uniform bind
// group (group 0): a single uniform buffer visible to both shader stages.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the camera bind group layout
func BindGroupLayoutDescriptor() wgpu.BindGroupLayoutDescriptor {
	var u GPUCameraUniform
	return wgpu.BindGroupLayoutDescriptor{
		Label: "camera_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(u.Size()),
				},
			},
		},
	}
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) Controller() FlyController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl FlyController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	c.updateMatrices()
}

func (c *cameraImpl) BindGroupProvider() bind_group_provider.BindGroupProvider {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bindGroupProvider
}

func (c *cameraImpl) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindGroupProvider = provider
}

// updateMatrices recalculates the view, projection, and view-projection
// matrices. The view matrix is the inverse of the controller's pose
// transform: rotate by the conjugate orientation, then translate by the
// negated position. Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	if c.controller != nil {
		px, py, pz := c.controller.Position()
		q := c.controller.Orientation()

		var rotInv, trans [16]float32
		common.RotationFromQuat(rotInv[:], common.QuatConjugate(q))
		common.Translation(trans[:], -px, -py, -pz)
		common.Mul4(c.viewMatrix[:], rotInv[:], trans[:])
	}

	common.Perspective(c.projectionMatrix[:],
		c.fov, c.aspect, c.near, c.far,
	)

	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}
