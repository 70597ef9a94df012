// Package app wires the orbital diagram together and runs its frame loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/pengfeiw/solar-system/internal/config"
	"github.com/pengfeiw/solar-system/internal/engine/camera"
	"github.com/pengfeiw/solar-system/internal/engine/debug"
	"github.com/pengfeiw/solar-system/internal/engine/geometry"
	"github.com/pengfeiw/solar-system/internal/engine/input"
	"github.com/pengfeiw/solar-system/internal/engine/lighting"
	"github.com/pengfeiw/solar-system/internal/engine/renderer"
	"github.com/pengfeiw/solar-system/internal/engine/texture"
	"github.com/pengfeiw/solar-system/internal/engine/window"
	"github.com/pengfeiw/solar-system/internal/logger"
	"github.com/pengfeiw/solar-system/internal/solar"
	"github.com/pengfeiw/solar-system/pkg/math"
)

// Title is the window title.
const Title = "Solar System"

// App is one running diagram session.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	textures    *texture.Loader
	screenshots *debug.ScreenshotCapture

	scene       *solar.Scene
	composer    solar.Composer
	dolly       camera.Dolly
	orbitModels []math.Mat4
	gpu         sceneBuffers

	frame       solar.FrameState
	captureNext bool
}

// sceneBuffers holds the uploaded meshes and their textures.
// Planets, Rings and PlanetTex are index-aligned with the scene's planets.
type sceneBuffers struct {
	background *renderer.MeshBuffer
	sun        *renderer.MeshBuffer
	orbit      *renderer.MeshBuffer
	planets    []*renderer.MeshBuffer
	rings      []*renderer.MeshBuffer

	backgroundTex *texture.Handle
	sunTex        *texture.Handle
	planetTex     []*texture.Handle
}

// New validates the scene, opens the window and uploads every mesh.
// Textures keep loading in the background after New returns.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:         cfg,
		log:         logger.Named("app"),
		composer:    composerFrom(cfg.Scene.Rates),
		dolly:       dollyFrom(cfg.Scene.Camera),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "orrery"),
	}

	var err error
	a.scene, err = solar.NewScene(cfg.Scene, solar.SeededPhases(cfg.Scene.Seed))
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}
	a.orbitModels = a.scene.OrbitModels()

	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		FOVDegrees: cfg.Graphics.FOVDegrees,
		Near:       cfg.Graphics.Near,
		Far:        cfg.Graphics.Far,
		LineColor:  renderer.DefaultLineColor,
		Light:      lighting.DefaultSun(),
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.textures = texture.NewLoader(cfg.Assets.MaxTextureSize, texture.Upload, texture.Delete)

	a.upload()

	a.log.Info("diagram initialized",
		zap.Int("planets", len(a.scene.Planets)),
		zap.Int("sphere_horizontal", cfg.Scene.Sphere.Horizontal),
		zap.Int("sphere_vertical", cfg.Scene.Sphere.Vertical),
		zap.Int("textures_pending", a.textures.Pending()),
	)
	return a, nil
}

// upload generates every mesh once and requests every texture.
func (a *App) upload() {
	meshes := a.scene.BuildMeshes(a.cfg.Scene.Sphere.Horizontal, a.cfg.Scene.Sphere.Vertical)
	dir := a.cfg.Assets.TextureDir

	g := &a.gpu
	g.background = renderer.Upload(geometry.ScreenQuad(), renderer.Triangles)
	g.sun = renderer.Upload(meshes.Sun, renderer.Triangles)
	g.orbit = renderer.Upload(meshes.Orbit, renderer.LineStrip)
	g.planets = make([]*renderer.MeshBuffer, len(meshes.Planets))
	g.rings = make([]*renderer.MeshBuffer, len(meshes.Rings))
	for i := range meshes.Planets {
		g.planets[i] = renderer.Upload(meshes.Planets[i], renderer.Triangles)
		g.rings[i] = renderer.Upload(meshes.Rings[i], renderer.Triangles)
	}

	g.backgroundTex = a.request(texturePath(dir, a.cfg.Assets.Background))
	g.sunTex = a.request(texturePath(dir, a.scene.Sun.Texture))
	g.planetTex = make([]*texture.Handle, len(a.scene.Planets))
	for i, p := range a.scene.Planets {
		g.planetTex[i] = a.request(texturePath(dir, p.Texture))
	}
}

func (a *App) request(path string) *texture.Handle {
	if path == "" {
		return nil
	}
	return a.textures.Request(path)
}

// Run drives the frame loop until the window is closed or Escape is pressed.
func (a *App) Run() error {
	start := time.Now()
	var fps fpsCounter
	fps.reset(start)

	a.log.Info("starting frame loop")

	for {
		if a.input.Update() {
			break
		}
		if a.input.IsKeyPressed(sdl.SCANCODE_F12) {
			a.captureNext = true
		}

		a.syncSize()

		if err := a.textures.Poll(); err != nil {
			return fmt.Errorf("loading textures: %w", err)
		}

		now := time.Now()
		a.frame = solar.Step(a.frame, now.Sub(start), a.dolly)
		a.render()

		if a.captureNext {
			a.captureNext = false
			a.capture()
		}

		a.window.SwapBuffers()

		if n, ok := fps.tick(now); ok {
			a.log.Debug("fps",
				zap.Int("count", n),
				zap.Uint64("frame", a.frame.Count),
				zap.Bool("dolly_done", a.dolly.Done(a.frame.Dolly)),
			)
			if a.cfg.Debug.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s - %d FPS", Title, n))
			}
		}
	}

	a.log.Info("frame loop stopped", zap.Uint64("frames", a.frame.Count))
	return nil
}

// syncSize resizes the viewport when the drawable size has changed.
func (a *App) syncSize() {
	w, h := a.window.DrawableSize()
	if rw, rh := a.renderer.Size(); w != rw || h != rh {
		a.renderer.Resize(w, h)
	}
}

func (a *App) render() {
	poses := a.scene.Poses(a.composer, a.frame.Elapsed)
	g := &a.gpu
	r := a.renderer

	r.Begin(a.dolly.View(a.frame.Dolly))
	r.DrawBackground(g.background, g.backgroundTex.ID())
	r.DrawUnlit(g.sun, poses.Sun, g.sunTex.ID())

	for i := range a.scene.Planets {
		tex := g.planetTex[i].ID()
		r.DrawLit(g.planets[i], poses.Planets[i], tex)
		if ring := poses.Rings[i]; ring.Present {
			r.DrawLit(g.rings[i], ring.Model, tex)
		}
		r.DrawLines(g.orbit, a.orbitModels[i])
	}

	r.End()
}

func (a *App) capture() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	a.log.Info("closing diagram")

	if a.textures != nil {
		a.textures.Close()
	}

	g := &a.gpu
	buffers := []*renderer.MeshBuffer{g.background, g.sun, g.orbit}
	buffers = append(buffers, g.planets...)
	buffers = append(buffers, g.rings...)
	for _, mb := range buffers {
		if mb != nil {
			mb.Delete()
		}
	}

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
