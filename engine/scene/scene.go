package scene

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"triforce/common"
	"triforce/engine/camera"
	"triforce/engine/game_object"
	"triforce/engine/light"
	"triforce/engine/model"
	"triforce/engine/renderer"
	"triforce/engine/renderer/bind_group_provider"
	"triforce/engine/renderer/material"
	"triforce/engine/renderer/pipeline"
	"triforce/engine/renderer/shader"
	"triforce/engine/shading"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/cogentcore/webgpu/wgpu"
)

// Scene manages a registry of GameObjects with a Camera, a point light, and a
// Renderer for rendering. All objects share one pipeline layout: camera uniform
// at group 0, per-object model matrix at group 1, material texture and sampler
// at group 2, and the point light at group 3. The active shading mode selects
// which registered pipeline draws the frame.
// Scenes can be hot-swapped via the Active flag to switch between different views or levels.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// SetRenderer replaces the scene's renderer.
	//
	// Parameters:
	//   - r: the new renderer
	SetRenderer(r renderer.Renderer)

	// Light returns the scene's point light, or nil if none is set.
	//
	// Returns:
	//   - light.Light: the scene light or nil
	Light() light.Light

	// SetLight replaces the scene's point light.
	//
	// Parameters:
	//   - l: the new light
	SetLight(l light.Light)

	// LightBindGroupProvider returns the bind group provider holding the GPU
	// light buffer resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the light provider
	LightBindGroupProvider() bind_group_provider.BindGroupProvider

	// Mode returns the active shading mode.
	//
	// Returns:
	//   - shading.Mode: the current mode
	Mode() shading.Mode

	// SetMode switches the active shading mode. The corresponding pipeline must
	// have been registered via RegisterPipelines; unknown modes are ignored at
	// draw time.
	//
	// Parameters:
	//   - mode: the shading mode to activate
	SetMode(mode shading.Mode)

	// RegisterPipelines creates one render pipeline per shading mode, all
	// sharing the scene's fixed bind group layout and the shared vertex shader.
	//
	// Parameters:
	//   - vertexShader: the vertex shader shared by every mode
	//   - fragmentShaders: a fragment shader per shading mode
	//
	// Returns:
	//   - error: an error if pipeline creation fails
	RegisterPipelines(vertexShader shader.Shader, fragmentShaders map[shading.Mode]shader.Shader) error

	// Count returns the number of GameObjects in the scene's registry.
	//
	// Returns:
	//   - int: count of GameObjects in the registry
	Count() int

	// Add adds a GameObject to the scene. The scene's Renderer must be attached
	// and the object must carry a Model. The scene initializes the model's mesh
	// buffers, the material's texture, sampler, and bind group, and creates the
	// object's model matrix bind group.
	//
	// Panics if the scene has no Renderer or the object has no Model.
	//
	// Parameters:
	//   - obj: the GameObject to add
	//
	// Returns:
	//   - uint64: the assigned object ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves a GameObject by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove removes a GameObject from the registry by ID.
	// Does not release GPU resources.
	//
	// Parameters:
	//   - id: the object's unique ID
	Remove(id uint64)

	// Clear removes all objects from the scene.
	// Does not release GPU resources.
	Clear()

	// PrepareFrame updates camera matrices, transforms the light position into
	// eye space, rebuilds per-object model matrices, and uploads all staged
	// buffer writes to the GPU in one submission.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	PrepareFrame(deltaTime float32)

	// DrawCalls issues a draw call for each enabled object using the active
	// shading mode's pipeline.
	// Must be called within a BeginFrame/EndFrame block on the renderer.
	//
	// Returns:
	//   - error: error if a draw call fails
	DrawCalls() error
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]game_object.GameObject
	order    []uint64 // insertion order for deterministic draw ordering
	nextID   uint64

	cam camera.Camera
	r   renderer.Renderer

	lt       light.Light
	lightBGP bind_group_provider.BindGroupProvider

	mode shading.Mode

	// Pre-allocated slices reused each frame to avoid per-frame allocations.
	writePool          []bind_group_provider.BufferWrite
	drawBindGroupsPool []bind_group_provider.BindGroupProvider

	// prepPool manages a bounded set of reusable goroutines for the parallel
	// CPU prep phase of PrepareFrame. Workers persist across frames, avoiding
	// per-frame goroutine spawn/teardown overhead.
	prepPool    worker.DynamicWorkerPool
	prepWorkers int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera and renderer. Both are
// required and NewScene panics if either is nil. The camera and light bind
// groups are initialized on the GPU immediately; the light itself can be
// supplied with WithLight or attached later via SetLight.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}

	s := &scene{
		mu:                 &sync.RWMutex{},
		name:               name,
		active:             false,
		cam:                cam,
		r:                  r,
		registry:           make(map[uint64]game_object.GameObject),
		nextID:             1,
		mode:               shading.ModeBlinnPhong,
		prepWorkers:        max(runtime.NumCPU()-1, 1),
		drawBindGroupsPool: make([]bind_group_provider.BindGroupProvider, 0, 4),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the prep pool after options so WithPrepWorkers can override the default.
	// Queue size of 256 accommodates typical object counts with headroom.
	s.prepPool = worker.NewDynamicWorkerPool(s.prepWorkers, 256, 1*time.Second)

	// Initialize the camera's bind group on the GPU.
	if bgp := cam.BindGroupProvider(); bgp != nil {
		if err := r.InitBindGroup(bgp, camera.BindGroupLayoutDescriptor(), nil, nil); err != nil {
			panic(fmt.Sprintf("scene: failed to init camera bind group: %v", err))
		}
	}

	// The light bind group always exists so every pipeline layout binds; the
	// light itself may be attached later.
	lightBGP := bind_group_provider.NewBindGroupProvider(name + "_light")
	if err := r.InitBindGroup(lightBGP, light.BindGroupLayoutDescriptor(), nil, nil); err != nil {
		panic(fmt.Sprintf("scene: failed to init light bind group: %v", err))
	}
	s.lightBGP = lightBGP

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) SetRenderer(r renderer.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r = r
}

func (s *scene) Light() light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lt
}

func (s *scene) SetLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lt = l
}

func (s *scene) LightBindGroupProvider() bind_group_provider.BindGroupProvider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lightBGP
}

func (s *scene) Mode() shading.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *scene) SetMode(mode shading.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

func (s *scene) RegisterPipelines(vertexShader shader.Shader, fragmentShaders map[shading.Mode]shader.Shader) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil {
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}
	if vertexShader == nil {
		return fmt.Errorf("scene %q: vertex shader is required", s.name)
	}

	// The fixed layout shared by every shading mode, ordered by group index.
	layouts := []wgpu.BindGroupLayoutDescriptor{
		camera.BindGroupLayoutDescriptor(),
		model.ModelBindGroupLayoutDescriptor(),
		material.BindGroupLayoutDescriptor(),
		light.BindGroupLayoutDescriptor(),
	}

	pipelines := make([]pipeline.Pipeline, 0, len(fragmentShaders))
	for _, mode := range shading.Modes() {
		fs, ok := fragmentShaders[mode]
		if !ok {
			return fmt.Errorf("scene %q: no fragment shader for mode %s", s.name, mode)
		}
		pipelines = append(pipelines, pipeline.NewPipeline(mode.PipelineKey(),
			pipeline.WithVertexShader(vertexShader),
			pipeline.WithFragmentShader(fs),
		))
	}

	return s.r.RegisterPipelines(layouts, model.VertexBufferLayout(), pipelines...)
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil {
		panic("scene: cannot Add without a Renderer attached")
	}

	mdl := obj.Model()
	if mdl == nil {
		panic("scene: cannot Add a GameObject without a Model")
	}

	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	}

	// Init mesh GPU resources if not already done — models shared by several
	// objects only upload once.
	meshBGP := mdl.MeshProvider()
	if meshBGP == nil {
		meshBGP = bind_group_provider.NewBindGroupProvider(mdl.Name() + "_mesh")
		mdl.SetMeshProvider(meshBGP)
	}
	if meshBGP.VertexBuffer() == nil {
		if err := s.r.InitMeshBuffers(meshBGP, mdl.VertexData(), mdl.IndexData(), mdl.IndexCount()); err != nil {
			panic(fmt.Sprintf("scene: failed to init mesh buffers for model %q: %v", mdl.Name(), err))
		}
	}

	// Init material GPU resources if not already done: texture view, sampler,
	// and the material bind group (group 2).
	if mat := mdl.RenderMaterial(); mat != nil && mat.BindGroupProvider() == nil {
		matBGP := bind_group_provider.NewBindGroupProvider(mdl.Name() + "_material")
		if err := s.r.InitTextureView(matBGP, 0, mat.Texture()); err != nil {
			panic(fmt.Sprintf("scene: failed to init texture for model %q: %v", mdl.Name(), err))
		}
		sampler := common.SamplerStagingData{}
		if staged := mat.Sampler(); staged != nil {
			sampler = *staged
		}
		if err := s.r.InitSampler(matBGP, 1, sampler); err != nil {
			panic(fmt.Sprintf("scene: failed to init sampler for model %q: %v", mdl.Name(), err))
		}
		if err := s.r.InitBindGroup(matBGP, material.BindGroupLayoutDescriptor(), nil, nil); err != nil {
			panic(fmt.Sprintf("scene: failed to init material bind group for model %q: %v", mdl.Name(), err))
		}
		mat.SetBindGroupProvider(matBGP)
	}

	// Create the per-object model matrix bind group (group 1).
	modelBGP := bind_group_provider.NewBindGroupProvider(fmt.Sprintf("%s_object_%d", s.name, obj.ID()))
	if err := s.r.InitBindGroup(modelBGP, model.ModelBindGroupLayoutDescriptor(), nil, nil); err != nil {
		panic(fmt.Sprintf("scene: failed to init model bind group for object %d: %v", obj.ID(), err))
	}
	obj.SetBindGroupProvider(modelBGP)

	s.registry[obj.ID()] = obj
	s.order = append(s.order, obj.ID())

	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.registry[id]; !exists {
		return
	}
	delete(s.registry, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry = make(map[uint64]game_object.GameObject)
	s.order = nil
}

func (s *scene) PrepareFrame(deltaTime float32) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.r == nil {
		return
	}

	allWrites := s.writePool[:0]

	// Update camera matrices and write the camera uniform once per frame.
	var view [16]float32
	if s.cam != nil {
		s.cam.Update()
		view = s.cam.ViewMatrix()
		if camBGP := s.cam.BindGroupProvider(); camBGP != nil {
			camUniform := camera.GPUCameraUniform{
				View:       view,
				Projection: s.cam.ProjectionMatrix(),
			}
			allWrites = append(allWrites, bind_group_provider.BufferWrite{
				Provider: camBGP,
				Binding:  0,
				Offset:   0,
				Data:     camUniform.Marshal(),
			})
		}
	}

	// Transform the light position from world to eye space on the CPU so the
	// fragment shader lights entirely in eye coordinates.
	if s.lt != nil && s.lightBGP != nil {
		var gpuLight light.GPUPointLight
		gpuLight.FromLight(s.lt, common.TransformPoint3(view[:], s.lt.Position()))
		allWrites = append(allWrites, bind_group_provider.BufferWrite{
			Provider: s.lightBGP,
			Binding:  0,
			Offset:   0,
			Data:     gpuLight.Marshal(),
		})
	}

	// Parallel CPU prep — rebuild each object's model matrix on the prep pool.
	// Workers are reused across frames (no goroutine spawn overhead). A
	// WaitGroup provides per-frame barrier sync since pool.Wait() blocks until
	// workers idle-exit which is unsuitable for frame-rate workloads.
	objectWrites := make([]bind_group_provider.BufferWrite, len(s.order))
	var wg sync.WaitGroup
	for i, id := range s.order {
		obj := s.registry[id]
		if obj == nil || !obj.Enabled() || obj.BindGroupProvider() == nil {
			continue
		}

		wg.Add(1)
		idx := i
		objCap := obj // capture for closure
		s.prepPool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				data := model.GPUModelData{Model: objCap.ModelMatrix()}
				objectWrites[idx] = bind_group_provider.BufferWrite{
					Provider: objCap.BindGroupProvider(),
					Binding:  0,
					Offset:   0,
					Data:     data.Marshal(),
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	// Coalesced GPU submission — a single WriteBuffers call per frame reduces
	// mutex acquisitions from N to 1 for writes.
	for _, w := range objectWrites {
		if w.Provider != nil {
			allWrites = append(allWrites, w)
		}
	}
	s.writePool = allWrites

	if len(allWrites) > 0 {
		s.r.WriteBuffers(allWrites)
	}
}

func (s *scene) DrawCalls() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.r == nil {
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}

	pipelineKey := s.mode.PipelineKey()

	for _, id := range s.order {
		obj := s.registry[id]
		if obj == nil || !obj.Enabled() {
			continue
		}

		mdl := obj.Model()
		if mdl == nil {
			continue
		}
		meshProvider := mdl.MeshProvider()
		if meshProvider == nil {
			continue
		}
		mat := mdl.RenderMaterial()
		if mat == nil || mat.BindGroupProvider() == nil {
			continue
		}

		bindGroups := append(s.drawBindGroupsPool[:0],
			s.cam.BindGroupProvider(),
			obj.BindGroupProvider(),
			mat.BindGroupProvider(),
			s.lightBGP,
		)
		if err := s.r.DrawCall(pipelineKey, meshProvider, 1, bindGroups); err != nil {
			return fmt.Errorf("draw call failed for object %d in scene %q: %w", id, s.name, err)
		}
	}

	return nil
}
