package shadertest

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// TimeScale is the rate at which u_time advances, in radians per second.
const TimeScale = math.Pi / 5

// FrameState is the per-frame input to the uniforms.
type FrameState struct {
	Time   float32
	Mouse  mgl32.Vec2
	Width  int
	Height int
}

// WrapTime maps an elapsed duration to the u_time value in [0, 2π).
func WrapTime(elapsed time.Duration) float32 {
	t := math.Mod(elapsed.Seconds()*TimeScale, 2*math.Pi)
	if t < 0 {
		t += 2 * math.Pi
	}

	// Values just below 2π round up when narrowed.
	wrapped := float32(t)
	if wrapped >= 2*math.Pi {
		return 0
	}

	return wrapped
}

// FlipY converts a top-left origin cursor position into framebuffer
// coordinates with a bottom-left origin.
func FlipY(x, y float64, height int) mgl32.Vec2 {
	return mgl32.Vec2{float32(x), float32(height) - float32(y)}
}
