package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"triforce/common"
	"triforce/config"
	"triforce/engine"
	"triforce/engine/camera"
	"triforce/engine/game_object"
	"triforce/engine/light"
	"triforce/engine/model"
	"triforce/engine/renderer"
	"triforce/engine/renderer/material"
	"triforce/engine/renderer/shader"
	"triforce/engine/scene"
	"triforce/engine/shading"
	"triforce/engine/texture"
	"triforce/engine/window"
	"triforce/logger"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := logger.Init(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// ── Engine + Window ─────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithProfiling(true),
		engine.WithTickRate(60),
		engine.WithWindow(window.NewWindow(
			window.WithTitle(cfg.Window.Title),
			window.WithWidth(cfg.Window.Width),
			window.WithHeight(cfg.Window.Height),
		)),
	)

	// ── Renderer ────────────────────────────────────────────────────────
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		eng.Window(),
		renderer.WithPresentMode(renderer.PresentModeVSync),
	)

	// ── Camera ──────────────────────────────────────────────────────────
	cam := camera.NewCamera(
		camera.WithFov(common.DegToRad(cfg.Camera.FovDegrees)),
		camera.WithAspect(float32(eng.Window().Width())/float32(eng.Window().Height())),
		camera.WithNear(cfg.Camera.Near),
		camera.WithFar(cfg.Camera.Far),
		camera.WithController(camera.NewFlyController(
			camera.WithPosition(cfg.Camera.Position[0], cfg.Camera.Position[1], cfg.Camera.Position[2]),
			camera.WithSpeed(cfg.Camera.Speed),
			camera.WithYawSpeed(cfg.Camera.YawSpeed),
		)),
	)

	// ── Light ───────────────────────────────────────────────────────────
	lt := light.NewLight(
		light.WithPosition(cfg.Light.Position[0], cfg.Light.Position[1], cfg.Light.Position[2]),
		light.WithAmbient(cfg.Light.Ambient[0], cfg.Light.Ambient[1], cfg.Light.Ambient[2]),
		light.WithDiffuse(cfg.Light.Diffuse[0], cfg.Light.Diffuse[1], cfg.Light.Diffuse[2]),
		light.WithSpecular(cfg.Light.Specular[0], cfg.Light.Specular[1], cfg.Light.Specular[2]),
		light.WithSpecularExponent(cfg.Light.SpecularExponent),
	)

	// ── Scene + Pipelines ───────────────────────────────────────────────
	sc := scene.NewScene("triforce", cam, r,
		scene.WithActive(true),
		scene.WithLight(lt),
		scene.WithMode(shading.ModeBlinnPhong),
	)

	vert := shader.NewShader("scene_vertex", shader.ShaderTypeVertex,
		filepath.Join(cfg.ShaderPath, "scene.vert.wgsl"))
	fragments := make(map[shading.Mode]shader.Shader, len(shading.Modes()))
	for _, mode := range shading.Modes() {
		fragments[mode] = shader.NewShader(mode.PipelineKey(), shader.ShaderTypeFragment,
			filepath.Join(cfg.ShaderPath, mode.ShaderFile()))
	}
	if err := sc.RegisterPipelines(vert, fragments); err != nil {
		slog.Error("failed to register pipelines", "error", err)
		os.Exit(1)
	}

	// ── Triforce ────────────────────────────────────────────────────────
	triVerts, triIdx := model.BuildTriforce(4.0)
	tri := game_object.NewGameObject(
		game_object.WithModel(model.NewModel(
			model.WithName("triforce"),
			model.WithGeometry(triVerts, triIdx),
			model.WithRenderMaterial(material.NewMaterial(
				material.WithName("triforce_material"),
				material.WithTexture(texture.Solid(color.RGBA{R: 218, G: 165, B: 32, A: 255})),
			)),
		)),
		game_object.WithPosition(0, 0, 0),
	)
	sc.Add(tri)

	// ── Ground Plane ────────────────────────────────────────────────────
	checker, err := texture.Checkerboard(512, 512, 64,
		color.RGBA{R: 200, G: 200, B: 200, A: 255},
		color.RGBA{R: 60, G: 60, B: 60, A: 255},
	)
	if err != nil {
		slog.Error("failed to build checkerboard texture", "error", err)
		os.Exit(1)
	}
	groundVerts, groundIdx := model.BuildGroundPlane(40.0, 0.0, 8.0)
	ground := game_object.NewGameObject(
		game_object.WithModel(model.NewModel(
			model.WithName("ground"),
			model.WithGeometry(groundVerts, groundIdx),
			model.WithRenderMaterial(material.NewMaterial(
				material.WithName("ground_material"),
				material.WithTexture(checker),
			)),
		)),
	)
	sc.Add(ground)

	eng.AddScene(0, sc)

	// ── Input Handling ──────────────────────────────────────────────────
	setupInput(eng, sc, cam)

	fmt.Println("Triforce demo")
	fmt.Println("  W/S: forward/back   A/D: strafe   Q/E: down/up")
	fmt.Println("  Left/Right: yaw     Up/Down: pitch   Z/C: roll")
	fmt.Println("  Backspace: reset camera")
	fmt.Println("  1/2/3: ambient / diffuse / blinn-phong shading")
	fmt.Println("  Esc: quit")

	slog.Info("starting triforce demo",
		"width", eng.Window().Width(),
		"height", eng.Window().Height(),
	)
	eng.Run()
}

// keyTracker records which keys are currently held. GLFW key callbacks run on
// the locked main thread while the tick callback reads from the engine
// goroutine, so access is mutex-guarded.
type keyTracker struct {
	mu   sync.Mutex
	held map[uint32]bool
}

func newKeyTracker() *keyTracker {
	return &keyTracker{held: make(map[uint32]bool)}
}

func (k *keyTracker) set(keyCode uint32, down bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held[keyCode] = down
}

func (k *keyTracker) isHeld(keyCode uint32) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[keyCode]
}

// setupInput wires keyboard controls: held movement keys tracked in a key
// tracker and applied in the tick callback, one-shot keys (mode switching,
// camera reset) handled directly on key-down.
//
// Parameters:
//   - eng: the engine instance providing window callbacks and tick
//   - sc: the scene whose shading mode the number keys switch
//   - cam: the camera to fly
func setupInput(eng engine.Engine, sc scene.Scene, cam camera.Camera) {
	keys := newKeyTracker()

	eng.Window().SetKeyDownCallback(func(keyCode uint32) {
		keys.set(keyCode, true)

		switch keyCode {
		case common.Key1:
			sc.SetMode(shading.ModeAmbient)
			slog.Info("shading mode", "mode", shading.ModeAmbient)
		case common.Key2:
			sc.SetMode(shading.ModeDiffuse)
			slog.Info("shading mode", "mode", shading.ModeDiffuse)
		case common.Key3:
			sc.SetMode(shading.ModeBlinnPhong)
			slog.Info("shading mode", "mode", shading.ModeBlinnPhong)
		case common.KeyBackspace:
			cam.Controller().Reset()
		}
	})

	eng.Window().SetKeyUpCallback(func(keyCode uint32) {
		keys.set(keyCode, false)
	})

	eng.SetTickCallback(func(dt float32) {
		ctrl := cam.Controller()
		if ctrl == nil {
			return
		}

		if keys.isHeld(common.KeyA) {
			ctrl.MoveRight(-dt)
		}
		if keys.isHeld(common.KeyD) {
			ctrl.MoveRight(dt)
		}
		if keys.isHeld(common.KeyQ) {
			ctrl.MoveUp(-dt)
		}
		if keys.isHeld(common.KeyE) {
			ctrl.MoveUp(dt)
		}
		if keys.isHeld(common.KeyW) {
			ctrl.MoveForward(dt)
		}
		if keys.isHeld(common.KeyS) {
			ctrl.MoveForward(-dt)
		}
		if keys.isHeld(common.KeyLeft) {
			ctrl.Yaw(dt)
		}
		if keys.isHeld(common.KeyRight) {
			ctrl.Yaw(-dt)
		}
		if keys.isHeld(common.KeyUp) {
			ctrl.Pitch(dt)
		}
		if keys.isHeld(common.KeyDown) {
			ctrl.Pitch(-dt)
		}
		if keys.isHeld(common.KeyZ) {
			ctrl.Roll(dt)
		}
		if keys.isHeld(common.KeyC) {
			ctrl.Roll(-dt)
		}
	})
}
