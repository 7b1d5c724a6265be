package scene

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

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
	"triforce/engine/texture"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records calls without touching the GPU.
type fakeRenderer struct {
	pipelineCache  map[string]pipeline.Pipeline
	bindGroupInits []string
	meshInits      int
	textureInits   int
	samplerInits   int
	writeBatches   [][]bind_group_provider.BufferWrite
	drawKeys       []string
	drawBindGroups [][]bind_group_provider.BindGroupProvider
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{pipelineCache: make(map[string]pipeline.Pipeline)}
}

func (f *fakeRenderer) Pipeline(key string) pipeline.Pipeline { return f.pipelineCache[key] }

func (f *fakeRenderer) Pipelines() map[string]pipeline.Pipeline { return f.pipelineCache }

func (f *fakeRenderer) RegisterPipelines(_ []wgpu.BindGroupLayoutDescriptor, _ []wgpu.VertexBufferLayout, pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		f.pipelineCache[p.PipelineKey()] = p
	}
	return nil
}

func (f *fakeRenderer) SetPipeline(key string, p pipeline.Pipeline) { f.pipelineCache[key] = p }

func (f *fakeRenderer) SetPipelines(pipelines map[string]pipeline.Pipeline) {
	f.pipelineCache = pipelines
}

func (f *fakeRenderer) Resize(width, height int) {}

func (f *fakeRenderer) InitMeshBuffers(_ bind_group_provider.BindGroupProvider, _, _ []byte, _ int) error {
	f.meshInits++
	return nil
}

func (f *fakeRenderer) InitBindGroup(_ bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, _ map[int]wgpu.BufferUsage, _ map[int]uint64) error {
	f.bindGroupInits = append(f.bindGroupInits, descriptor.Label)
	return nil
}

func (f *fakeRenderer) InitTextureView(_ bind_group_provider.BindGroupProvider, _ int, _ common.TextureStagingData) error {
	f.textureInits++
	return nil
}

func (f *fakeRenderer) InitSampler(_ bind_group_provider.BindGroupProvider, _ int, _ common.SamplerStagingData) error {
	f.samplerInits++
	return nil
}

func (f *fakeRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	batch := make([]bind_group_provider.BufferWrite, len(writes))
	copy(batch, writes)
	f.writeBatches = append(f.writeBatches, batch)
}

func (f *fakeRenderer) BeginFrame() error { return nil }

func (f *fakeRenderer) DrawCall(pipelineKey string, _ bind_group_provider.BindGroupProvider, _ uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	f.drawKeys = append(f.drawKeys, pipelineKey)
	groups := make([]bind_group_provider.BindGroupProvider, len(bindGroups))
	copy(groups, bindGroups)
	f.drawBindGroups = append(f.drawBindGroups, groups)
	return nil
}

func (f *fakeRenderer) EndFrame() {}

func (f *fakeRenderer) Present() {}

func (f *fakeRenderer) SetPresentMode(mode renderer.PresentMode) {}

var _ renderer.Renderer = &fakeRenderer{}

func newTestObject(name string) game_object.GameObject {
	verts, indices := model.BuildTriforce(1.0)
	mdl := model.NewModel(
		model.WithName(name),
		model.WithGeometry(verts, indices),
		model.WithRenderMaterial(material.NewMaterial(
			material.WithName(name+"_mat"),
			material.WithTexture(texture.Solid(color.RGBA{R: 255, G: 255, B: 255, A: 255})),
		)),
	)
	return game_object.NewGameObject(game_object.WithModel(mdl))
}

func TestNewScenePanicsWithoutCamera(t *testing.T) {
	assert.Panics(t, func() {
		NewScene("test", nil, newFakeRenderer())
	})
}

func TestNewScenePanicsWithoutRenderer(t *testing.T) {
	assert.Panics(t, func() {
		NewScene("test", camera.NewCamera(), nil)
	})
}

func TestNewSceneInitializesCameraAndLightBindGroups(t *testing.T) {
	r := newFakeRenderer()
	s := NewScene("test", camera.NewCamera(), r)

	require.Len(t, r.bindGroupInits, 2)
	assert.Equal(t, "camera_bind_group_layout", r.bindGroupInits[0])
	assert.Equal(t, "light_bind_group_layout", r.bindGroupInits[1])
	assert.NotNil(t, s.LightBindGroupProvider())
}

func TestSceneDefaultsToBlinnPhong(t *testing.T) {
	s := NewScene("test", camera.NewCamera(), newFakeRenderer())

	assert.Equal(t, shading.ModeBlinnPhong, s.Mode())

	s.SetMode(shading.ModeAmbient)
	assert.Equal(t, shading.ModeAmbient, s.Mode())
}

func TestAddAssignsIDsAndInitializesGPUResources(t *testing.T) {
	r := newFakeRenderer()
	s := NewScene("test", camera.NewCamera(), r)

	id1 := s.Add(newTestObject("tri"))
	id2 := s.Add(newTestObject("plane"))

	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(2), id2)
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, 2, r.meshInits)
	assert.Equal(t, 2, r.textureInits)
	assert.Equal(t, 2, r.samplerInits)

	obj := s.Get(id1)
	require.NotNil(t, obj)
	assert.NotNil(t, obj.BindGroupProvider())
	assert.NotNil(t, obj.Model().MeshProvider())
	assert.NotNil(t, obj.Model().RenderMaterial().BindGroupProvider())
}

func TestAddPanicsWithoutModel(t *testing.T) {
	s := NewScene("test", camera.NewCamera(), newFakeRenderer())

	assert.Panics(t, func() {
		s.Add(game_object.NewGameObject())
	})
}

func TestRemoveAndClear(t *testing.T) {
	s := NewScene("test", camera.NewCamera(), newFakeRenderer())

	id := s.Add(newTestObject("tri"))
	s.Add(newTestObject("plane"))

	s.Remove(id)
	assert.Equal(t, 1, s.Count())
	assert.Nil(t, s.Get(id))

	s.Clear()
	assert.Equal(t, 0, s.Count())
}

func TestPrepareFrameCoalescesWrites(t *testing.T) {
	r := newFakeRenderer()
	lt := light.NewLight(light.WithPosition(0, 8, 4))
	s := NewScene("test", camera.NewCamera(), r, WithLight(lt), WithPrepWorkers(2))

	s.Add(newTestObject("tri"))
	s.Add(newTestObject("plane"))

	s.PrepareFrame(0.016)

	// One coalesced WriteBuffers call: camera + light + two object matrices.
	require.Len(t, r.writeBatches, 1)
	batch := r.writeBatches[0]
	require.Len(t, batch, 4)

	var camUniform camera.GPUCameraUniform
	assert.Len(t, batch[0].Data, camUniform.Size())
	var gpuLight light.GPUPointLight
	assert.Len(t, batch[1].Data, gpuLight.Size())
	var modelData model.GPUModelData
	assert.Len(t, batch[2].Data, modelData.Size())
	assert.Len(t, batch[3].Data, modelData.Size())
}

func TestPrepareFrameWithoutLightSkipsLightWrite(t *testing.T) {
	r := newFakeRenderer()
	s := NewScene("test", camera.NewCamera(), r)

	s.PrepareFrame(0.016)

	require.Len(t, r.writeBatches, 1)
	assert.Len(t, r.writeBatches[0], 1) // camera only
}

func TestDrawCallsUseActiveModePipeline(t *testing.T) {
	r := newFakeRenderer()
	s := NewScene("test", camera.NewCamera(), r, WithLight(light.NewLight()))

	s.Add(newTestObject("tri"))
	s.Add(newTestObject("plane"))

	require.NoError(t, s.DrawCalls())
	require.Len(t, r.drawKeys, 2)
	assert.Equal(t, shading.ModeBlinnPhong.PipelineKey(), r.drawKeys[0])
	assert.Len(t, r.drawBindGroups[0], 4)

	s.SetMode(shading.ModeDiffuse)
	require.NoError(t, s.DrawCalls())
	assert.Equal(t, shading.ModeDiffuse.PipelineKey(), r.drawKeys[2])
}

func TestDrawCallsSkipDisabledObjects(t *testing.T) {
	r := newFakeRenderer()
	s := NewScene("test", camera.NewCamera(), r)

	id := s.Add(newTestObject("tri"))
	s.Get(id).SetEnabled(false)

	require.NoError(t, s.DrawCalls())
	assert.Empty(t, r.drawKeys)
}

func TestRegisterPipelinesRequiresAllModes(t *testing.T) {
	dir := t.TempDir()
	vertPath := filepath.Join(dir, "scene.vert.wgsl")
	fragPath := filepath.Join(dir, "frag.wgsl")
	require.NoError(t, os.WriteFile(vertPath, []byte("@vertex\nfn vs_main() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(fragPath, []byte("@fragment\nfn fs_main() {}\n"), 0o644))

	r := newFakeRenderer()
	s := NewScene("test", camera.NewCamera(), r)

	vs := shader.NewShader("scene_vertex", shader.ShaderTypeVertex, vertPath)

	err := s.RegisterPipelines(vs, map[shading.Mode]shader.Shader{
		shading.ModeAmbient: shader.NewShader("ambient", shader.ShaderTypeFragment, fragPath),
	})
	require.Error(t, err)

	fragments := make(map[shading.Mode]shader.Shader, len(shading.Modes()))
	for _, mode := range shading.Modes() {
		fragments[mode] = shader.NewShader(mode.PipelineKey(), shader.ShaderTypeFragment, fragPath)
	}
	require.NoError(t, s.RegisterPipelines(vs, fragments))

	for _, mode := range shading.Modes() {
		assert.NotNil(t, r.Pipeline(mode.PipelineKey()))
	}
}
