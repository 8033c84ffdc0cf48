package opengl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shadertest"
)

// Window adapts a GLFW window to shadertest.Window.
type Window struct {
	window *glfw.Window
	events []shadertest.Event
}

var _ shadertest.Window = (*Window)(nil)

// NewWindow initializes GLFW, creates a window with an OpenGL 4.1 core
// context and makes the context current. Call Destroy when done.
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return NewWindowAdapter(window), nil
}

// NewWindowAdapter wraps an existing GLFW window and installs the size and
// cursor callbacks.
func NewWindowAdapter(window *glfw.Window) *Window {
	w := &Window{window: window}

	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	window.SetSizeCallback(w.sizeCallback)
	window.SetCursorPosCallback(w.cursorPosCallback)

	return w
}

// PollEvents processes pending GLFW events, queueing them via callbacks.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// DrainEvents returns the events queued since the last call.
func (w *Window) DrainEvents() []shadertest.Event {
	events := w.events
	w.events = nil
	return events
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	w.window.Destroy()
	glfw.Terminate()
}

func (w *Window) sizeCallback(_ *glfw.Window, width, height int) {
	w.events = append(w.events, shadertest.ResizeEvent{Width: width, Height: height})
}

func (w *Window) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	w.events = append(w.events, shadertest.CursorMoveEvent{X: xpos, Y: ypos})
}
