package app

import (
	"path/filepath"
	"time"

	"github.com/pengfeiw/solar-system/internal/config"
	"github.com/pengfeiw/solar-system/internal/engine/camera"
	"github.com/pengfeiw/solar-system/internal/solar"
)

func composerFrom(r config.RatesConfig) solar.Composer {
	return solar.Composer{RevolutionRate: r.Revolution, SpinRate: r.Spin}
}

func dollyFrom(c config.CameraConfig) camera.Dolly {
	return camera.Dolly{
		StepX:   c.StepX,
		StepY:   c.StepY,
		TargetX: c.TargetX,
		TargetY: c.TargetY,
		Z:       c.Z,
	}
}

// texturePath resolves a texture name against dir. Absolute names are kept
// and an empty name means no texture.
func texturePath(dir, name string) string {
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// fpsCounter counts frames over one-second windows.
type fpsCounter struct {
	frames int
	since  time.Time
}

func (c *fpsCounter) reset(now time.Time) {
	c.frames = 0
	c.since = now
}

// tick records a frame. Once a second has passed it returns the frame count
// of that window and starts a new one.
func (c *fpsCounter) tick(now time.Time) (int, bool) {
	c.frames++
	if now.Sub(c.since) < time.Second {
		return 0, false
	}
	n := c.frames
	c.reset(now)
	return n, true
}
