package game_object

import (
	"sync"
	"sync/atomic"

	"triforce/common"
	"triforce/engine/model"
	"triforce/engine/renderer/bind_group_provider"
)

type gameObject struct {
	mu sync.Mutex

	id      uint64
	enabled atomic.Bool
	mdl     model.Model

	position [3]float32
	rotation [3]float32
	scale    [3]float32

	// modelProvider holds the per-object model matrix uniform (group 1).
	modelProvider bind_group_provider.BindGroupProvider
}

// GameObject defines the interface for a scene entity: a model plus its world
// transform. The model matrix is rebuilt from position, rotation, and scale
// each frame by the scene and uploaded through the object's bind group provider.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Model returns the Model associated with this object, or nil if not set.
	//
	// Returns:
	//   - model.Model: the associated model or nil
	Model() model.Model

	// Position returns the object's world position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the object's rotation as Euler angles in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// Scale returns the object's scale factors.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// ModelMatrix builds the object's world transform matrix from its current
	// position, rotation, and scale.
	//
	// Returns:
	//   - [16]float32: the column-major model matrix
	ModelMatrix() [16]float32

	// BindGroupProvider returns the provider holding the object's model matrix
	// uniform, or nil if the object has not been added to a scene.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the provider or nil
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetModel assigns a Model to this object.
	//
	// Parameters:
	//   - m: the Model to associate
	SetModel(m model.Model)

	// SetPosition updates the object's world position.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation updates the object's rotation as Euler angles in radians.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles
	SetRotation(rx, ry, rz float32)

	// SetScale updates the object's scale factors.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// SetBindGroupProvider sets the provider holding the object's model matrix
	// uniform. Called by the scene when the object is added.
	//
	// Parameters:
	//   - provider: the bind group provider for this object
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects default to enabled with unit scale.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale: [3]float32{1, 1, 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Model() model.Model {
	return g.mdl
}

func (g *gameObject) Position() (x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scale[0], g.scale[1], g.scale[2]
}

func (g *gameObject) ModelMatrix() [16]float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	var m [16]float32
	common.BuildModelMatrix(m[:],
		g.position[0], g.position[1], g.position[2],
		g.rotation[0], g.rotation[1], g.rotation[2],
		g.scale[0], g.scale[1], g.scale[2],
	)
	return m
}

func (g *gameObject) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return g.modelProvider
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetModel(m model.Model) {
	g.mdl = m
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = [3]float32{x, y, z}
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	g.modelProvider = provider
}
