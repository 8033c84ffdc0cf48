package shadertest

import (
	"fmt"
	"log/slog"
	"time"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// State is a step in the app lifecycle.
type State int

const (
	StateCreated State = iota
	StateGLLoaded
	StateInitialized
	StateRunning
	StateClosed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateGLLoaded:
		return "gl-loaded"
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Full-screen quad as two triangles.
var (
	quadVertices = [4]mgl32.Vec2{
		{1, 1},
		{-1, 1},
		{-1, -1},
		{1, -1},
	}
	quadElements = [6]uint32{0, 1, 2, 0, 2, 3}
)

const positionAttrib = 0

// App compiles the shader pair, uploads the quad and drives the frame loop.
type App struct {
	window Window
	gl     GL
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
	state  State

	compiler *ShaderCompiler

	vertShader, fragShader uint32
	program                uint32
	arrayBuffer            uint32
	elementBuffer          uint32
	vertexArray            uint32

	uTime, uResolution, uMouse int32

	frame FrameState
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithClock sets the time source for u_time.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// New creates an app presenting to window.
func New(window Window, cfg Config, opts ...Option) *App {
	a := &App{
		window: window,
		cfg:    cfg,
		logger: slog.Default(),
		now:    time.Now,
		state:  StateCreated,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// State returns the current lifecycle state.
func (a *App) State() State {
	return a.state
}

// Frame returns the frame state used for the most recent draw.
func (a *App) Frame() FrameState {
	return a.frame
}

// LoadGL binds the GPU command interface returned by load. It runs load only
// once; later calls keep the first interface.
func (a *App) LoadGL(load func() (GL, error)) error {
	if a.state != StateCreated {
		return nil
	}

	gl, err := load()
	if err != nil {
		return fmt.Errorf("load gl: %w", err)
	}

	a.gl = gl
	a.state = StateGLLoaded
	return nil
}

// Begin builds the program, the quad buffers and the vertex array, stopping
// at the first failure.
func (a *App) Begin() error {
	if a.state != StateGLLoaded {
		return fmt.Errorf("begin in state %s: %w", a.state, ErrInvalidState)
	}

	a.logger.Info("OpenGL",
		slog.String("vendor", a.gl.GetString(Vendor)),
		slog.String("renderer", a.gl.GetString(Renderer)),
		slog.String("version", a.gl.GetString(Version)))

	steps := []func() error{
		a.initProgram,
		a.initBuffer,
		a.initVertexArray,
	}

	for _, step := range steps {
		if err := step(); err != nil {
			a.state = StateFailed
			return err
		}
	}

	a.state = StateInitialized
	return nil
}

func (a *App) initProgram() error {
	a.compiler = NewShaderCompiler(a.gl, a.logger)
	a.vertShader = a.compiler.Create(VertexShader, a.cfg.VertexShader)
	a.fragShader = a.compiler.Create(FragmentShader, a.cfg.FragmentShader)

	a.program = a.gl.CreateProgram()
	a.gl.AttachShader(a.program, a.vertShader)
	a.gl.AttachShader(a.program, a.fragShader)
	a.gl.BindAttribLocation(a.program, positionAttrib, "Position")
	a.gl.LinkProgram(a.program)

	a.uTime = a.uniformLocation("u_time")
	a.uResolution = a.uniformLocation("u_resolution")
	a.uMouse = a.uniformLocation("u_mouse")

	if !a.compiler.Check() {
		return fmt.Errorf("init program: %w", ErrShaderCompile)
	}
	if !a.compiler.CheckProgram(a.program) {
		return fmt.Errorf("init program: %w", ErrProgramLink)
	}

	return checkGLError(a.gl, a.logger, "init_program")
}

// uniformLocation resolves name. A missing uniform is reported as -1 and is
// not an error; drivers strip uniforms the shader does not use.
func (a *App) uniformLocation(name string) int32 {
	location := a.gl.GetUniformLocation(a.program, name)
	if location < 0 {
		a.logger.Debug("Uniform not found", slog.String("name", name))
	}
	return location
}

func (a *App) initBuffer() error {
	a.arrayBuffer = a.gl.GenBuffer()
	a.gl.BindBuffer(ArrayBuffer, a.arrayBuffer)
	a.gl.BufferData(ArrayBuffer, len(quadVertices)*int(unsafe.Sizeof(mgl32.Vec2{})),
		unsafe.Pointer(&quadVertices[0]))
	a.gl.BindBuffer(ArrayBuffer, 0)

	a.elementBuffer = a.gl.GenBuffer()
	a.gl.BindBuffer(ElementArrayBuffer, a.elementBuffer)
	a.gl.BufferData(ElementArrayBuffer, len(quadElements)*int(unsafe.Sizeof(uint32(0))),
		unsafe.Pointer(&quadElements[0]))
	a.gl.BindBuffer(ElementArrayBuffer, 0)

	return checkGLError(a.gl, a.logger, "init_buffer")
}

func (a *App) initVertexArray() error {
	a.vertexArray = a.gl.GenVertexArray()
	a.gl.BindVertexArray(a.vertexArray)

	a.gl.BindBuffer(ArrayBuffer, a.arrayBuffer)
	a.gl.VertexAttribPointer(positionAttrib, 2, 0, 0)
	a.gl.BindBuffer(ArrayBuffer, 0)

	// The element binding is recorded in the vertex array.
	a.gl.BindBuffer(ElementArrayBuffer, a.elementBuffer)
	a.gl.EnableVertexAttribArray(positionAttrib)
	a.gl.BindVertexArray(0)

	return checkGLError(a.gl, a.logger, "init_vertex_array")
}

// Run initializes the app if needed and renders until the window is asked to
// close or a frame fails.
func (a *App) Run() error {
	if a.state == StateGLLoaded {
		if err := a.Begin(); err != nil {
			return err
		}
	}

	if a.state != StateInitialized {
		return fmt.Errorf("run in state %s: %w", a.state, ErrInvalidState)
	}

	a.state = StateRunning
	start := a.now()

	for {
		a.window.PollEvents()
		a.handleEvents()

		a.frame.Time = WrapTime(a.now().Sub(start))

		a.render()
		if err := checkGLError(a.gl, a.logger, "render"); err != nil {
			a.state = StateFailed
			return err
		}

		if a.window.ShouldClose() {
			a.state = StateClosed
			return nil
		}

		a.window.SwapBuffers()
	}
}

func (a *App) handleEvents() {
	for _, event := range a.window.DrainEvents() {
		switch e := event.(type) {
		case ResizeEvent:
			a.gl.Viewport(0, 0, int32(e.Width), int32(e.Height))
		case CursorMoveEvent:
			_, height := a.window.FramebufferSize()
			a.frame.Mouse = FlipY(e.X, e.Y, height)
		}
	}
}

func (a *App) render() {
	a.frame.Width, a.frame.Height = a.window.FramebufferSize()

	a.gl.Viewport(0, 0, int32(a.frame.Width), int32(a.frame.Height))

	c := a.cfg.ClearColor
	a.gl.ClearColor(c.X(), c.Y(), c.Z(), c.W())
	a.gl.ClearDepth(1)
	a.gl.Clear()

	a.gl.UseProgram(a.program)
	a.gl.Uniform2f(a.uResolution, float32(a.frame.Width), float32(a.frame.Height))
	a.gl.Uniform2f(a.uMouse, a.frame.Mouse.X(), a.frame.Mouse.Y())
	a.gl.Uniform1f(a.uTime, a.frame.Time)

	a.gl.BindVertexArray(a.vertexArray)
	a.gl.DrawElements(int32(len(quadElements)))
}

// Close releases the GPU objects the app created. It is safe to call more
// than once.
func (a *App) Close() {
	if a.gl == nil {
		return
	}

	if a.vertexArray != 0 {
		a.gl.DeleteVertexArray(a.vertexArray)
		a.vertexArray = 0
	}
	if a.elementBuffer != 0 {
		a.gl.DeleteBuffer(a.elementBuffer)
		a.elementBuffer = 0
	}
	if a.arrayBuffer != 0 {
		a.gl.DeleteBuffer(a.arrayBuffer)
		a.arrayBuffer = 0
	}
	if a.program != 0 {
		a.gl.DeleteProgram(a.program)
		a.program = 0
	}
	if a.fragShader != 0 {
		a.gl.DeleteShader(a.fragShader)
		a.fragShader = 0
	}
	if a.vertShader != 0 {
		a.gl.DeleteShader(a.vertShader)
		a.vertShader = 0
	}
}
