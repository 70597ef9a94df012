// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/pengfeiw/solar-system/internal/engine/lighting"
	"github.com/pengfeiw/solar-system/internal/engine/renderer/shaders"
	"github.com/pengfeiw/solar-system/internal/engine/shader"
	"github.com/pengfeiw/solar-system/internal/logger"
	"github.com/pengfeiw/solar-system/pkg/math"
)

// DefaultLineColor is the orbit outline color.
var DefaultLineColor = math.Vec3{X: 0.13, Y: 0.14, Z: 0.17}

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	FOVDegrees float32
	Near       float32
	Far        float32
	LineColor  math.Vec3
	Light      lighting.Sun
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config     Config
	projection math.Mat4
	view       math.Mat4

	background *shader.Program
	unlit      *shader.Program
	lit        *shader.Program
	line       *shader.Program
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		view:   math.Identity(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)

	programs := []struct {
		name string
		dst  **shader.Program
		vert string
		frag string
	}{
		{"background", &r.background, shaders.BackgroundVertexShader, shaders.BackgroundFragmentShader},
		{"unlit", &r.unlit, shaders.UnlitVertexShader, shaders.UnlitFragmentShader},
		{"lit", &r.lit, shaders.LitVertexShader, shaders.LitFragmentShader},
		{"line", &r.line, shaders.LineVertexShader, shaders.LineFragmentShader},
	}
	for _, p := range programs {
		prog, err := shader.NewProgram(p.vert, p.frag)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("%s program: %w", p.name, err)
		}
		*p.dst = prog
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, p := range []*shader.Program{r.background, r.unlit, r.lit, r.line} {
		if p != nil {
			p.Delete()
		}
	}
}

// Resize sets the viewport and recomputes the projection for the new aspect.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.projection = Projection(r.config)
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Projection returns the perspective matrix for cfg's viewport.
// A degenerate height is treated as 1 so the aspect stays finite.
func Projection(cfg Config) math.Mat4 {
	aspect := float32(cfg.Width) / float32(max(cfg.Height, 1))
	fov := cfg.FOVDegrees * gomath.Pi / 180
	return math.Perspective(fov, aspect, cfg.Near, cfg.Far)
}

// Begin starts a new frame seen through view.
func (r *Renderer) Begin(view math.Mat4) {
	r.view = view
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// DrawBackground fills the viewport with tex behind everything else.
func (r *Renderer) DrawBackground(mb *MeshBuffer, tex uint32) {
	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)

	r.background.Use()
	r.bindTexture(r.background, tex)
	mb.draw()

	gl.DepthMask(true)
	gl.Enable(gl.DEPTH_TEST)
}

// DrawUnlit draws textured geometry at full brightness.
func (r *Renderer) DrawUnlit(mb *MeshBuffer, model math.Mat4, tex uint32) {
	r.unlit.Use()
	r.setMatrices(r.unlit, model)
	r.bindTexture(r.unlit, tex)
	mb.draw()
}

// DrawLit draws textured geometry lit by the configured sun.
func (r *Renderer) DrawLit(mb *MeshBuffer, model math.Mat4, tex uint32) {
	light := r.config.Light
	r.lit.Use()
	r.setMatrices(r.lit, model)
	r.lit.SetVec3("uLightPos", light.Position)
	r.lit.SetVec3("uLightColor", light.Color)
	r.lit.SetFloat("uAmbient", light.Ambient)
	r.bindTexture(r.lit, tex)
	mb.draw()
}

// DrawLines draws mb in the outline color.
func (r *Renderer) DrawLines(mb *MeshBuffer, model math.Mat4) {
	r.line.Use()
	r.setMatrices(r.line, model)
	r.line.SetVec3("uColor", r.config.LineColor)
	mb.draw()
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func (r *Renderer) setMatrices(p *shader.Program, model math.Mat4) {
	p.SetMat4("uModel", model)
	p.SetMat4("uView", r.view)
	p.SetMat4("uProjection", r.projection)
}

func (r *Renderer) bindTexture(p *shader.Program, tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	p.SetInt("uTexture", 0)
}
