package shadertest_test

import (
	"bytes"
	"log/slog"
	"strings"
	"unsafe"

	"github.com/go-theft-auto/shadertest"
)

// fakeGL records commands and simulates a driver. A shader fails to compile
// when its source contains "ERROR" or is a missing-file placeholder.
type fakeGL struct {
	next uint32

	sources  map[uint32]string
	attached map[uint32][]uint32
	linked   map[uint32]bool

	// emptyLogs makes every info log report a length of zero.
	emptyLogs bool
	// linkFails forces link failure even when all shaders compiled.
	linkFails bool
	linkLog   string
	// errors is returned by successive GetError calls.
	errors    []shadertest.ErrorCode

	calls        []string
	programQuery int
	infoLogReads int

	buffers   map[shadertest.BufferTarget]int
	viewport  [4]int32
	uniform1f map[int32]float32
	uniform2f map[int32][2]float32
	draws     int
	deleted   map[string]int
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		sources:   make(map[uint32]string),
		attached:  make(map[uint32][]uint32),
		linked:    make(map[uint32]bool),
		buffers:   make(map[shadertest.BufferTarget]int),
		uniform1f: make(map[int32]float32),
		uniform2f: make(map[int32][2]float32),
		deleted:   make(map[string]int),
	}
}

func (f *fakeGL) call(name string) {
	f.calls = append(f.calls, name)
}

func (f *fakeGL) called(name string) int {
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeGL) handle() uint32 {
	f.next++
	return f.next
}

func (f *fakeGL) compiled(shader uint32) bool {
	src := f.sources[shader]
	return !strings.Contains(src, "ERROR") && !strings.HasPrefix(src, "File ")
}

func (f *fakeGL) compileLog(shader uint32) string {
	return "0:1(1): error: syntax error, unexpected IDENTIFIER\x00"
}

func (f *fakeGL) CreateShader(stage shadertest.ShaderStage) uint32 {
	f.call("CreateShader")
	return f.handle()
}

func (f *fakeGL) ShaderSource(shader uint32, source string) {
	f.call("ShaderSource")
	f.sources[shader] = source
}

func (f *fakeGL) CompileShader(shader uint32) { f.call("CompileShader") }

func (f *fakeGL) GetShaderiv(shader uint32, param shadertest.ObjectParam) int32 {
	f.call("GetShaderiv")
	switch param {
	case shadertest.CompileStatus:
		if f.compiled(shader) {
			return 1
		}
		return 0
	case shadertest.InfoLogLength:
		if f.emptyLogs || f.compiled(shader) {
			return 0
		}
		return int32(len(f.compileLog(shader)))
	}
	return 0
}

func (f *fakeGL) GetShaderInfoLog(shader uint32, buf []byte) int {
	f.infoLogReads++
	return copy(buf, f.compileLog(shader))
}

func (f *fakeGL) DeleteShader(shader uint32) { f.deleted["shader"]++ }

func (f *fakeGL) CreateProgram() uint32 {
	f.call("CreateProgram")
	return f.handle()
}

func (f *fakeGL) AttachShader(program, shader uint32) {
	f.attached[program] = append(f.attached[program], shader)
}

func (f *fakeGL) BindAttribLocation(program, index uint32, name string) {
	f.call("BindAttribLocation:" + name)
}

func (f *fakeGL) LinkProgram(program uint32) {
	f.call("LinkProgram")
	ok := !f.linkFails
	for _, shader := range f.attached[program] {
		ok = ok && f.compiled(shader)
	}
	f.linked[program] = ok
}

func (f *fakeGL) GetProgramiv(program uint32, param shadertest.ObjectParam) int32 {
	f.programQuery++
	switch param {
	case shadertest.LinkStatus:
		if f.linked[program] {
			return 1
		}
		return 0
	case shadertest.InfoLogLength:
		if f.emptyLogs {
			return 0
		}
		return int32(len(f.linkLog))
	}
	return 0
}

func (f *fakeGL) GetProgramInfoLog(program uint32, buf []byte) int {
	f.infoLogReads++
	return copy(buf, f.linkLog)
}

// GetUniformLocation resolves names declared by an attached shader, in
// declaration order across the program.
func (f *fakeGL) GetUniformLocation(program uint32, name string) int32 {
	if !f.linked[program] {
		return -1
	}
	var loc int32
	for _, shader := range f.attached[program] {
		for _, line := range strings.Split(f.sources[shader], "\n") {
			if !strings.HasPrefix(strings.TrimSpace(line), "uniform ") {
				continue
			}
			if strings.Contains(line, " "+name+";") {
				return loc
			}
			loc++
		}
	}
	return -1
}

func (f *fakeGL) UseProgram(program uint32)    { f.call("UseProgram") }
func (f *fakeGL) DeleteProgram(program uint32) { f.deleted["program"]++ }

func (f *fakeGL) GenBuffer() uint32 {
	f.call("GenBuffer")
	return f.handle()
}

func (f *fakeGL) BindBuffer(target shadertest.BufferTarget, buffer uint32) {}

func (f *fakeGL) BufferData(target shadertest.BufferTarget, size int, data unsafe.Pointer) {
	f.buffers[target] = size
}

func (f *fakeGL) DeleteBuffer(buffer uint32) { f.deleted["buffer"]++ }

func (f *fakeGL) GenVertexArray() uint32 {
	f.call("GenVertexArray")
	return f.handle()
}

func (f *fakeGL) BindVertexArray(array uint32) {}

func (f *fakeGL) VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr) {
	f.call("VertexAttribPointer")
}

func (f *fakeGL) EnableVertexAttribArray(index uint32) {}
func (f *fakeGL) DeleteVertexArray(array uint32)       { f.deleted["vertexArray"]++ }

func (f *fakeGL) Viewport(x, y, width, height int32) {
	f.viewport = [4]int32{x, y, width, height}
}

func (f *fakeGL) ClearColor(r, g, b, a float32) {}
func (f *fakeGL) ClearDepth(depth float32)      {}
func (f *fakeGL) Clear()                        {}

func (f *fakeGL) Uniform1f(location int32, v float32) {
	f.uniform1f[location] = v
}

func (f *fakeGL) Uniform2f(location int32, x, y float32) {
	f.uniform2f[location] = [2]float32{x, y}
}

func (f *fakeGL) DrawElements(count int32) {
	f.call("DrawElements")
	f.draws++
}

func (f *fakeGL) GetError() shadertest.ErrorCode {
	if len(f.errors) == 0 {
		return shadertest.NoError
	}
	code := f.errors[0]
	f.errors = f.errors[1:]
	return code
}

func (f *fakeGL) GetString(name shadertest.StringName) string {
	return "fake"
}

// fakeWindow replays scripted events, one batch per poll, and requests close
// after closeAfter polls.
type fakeWindow struct {
	width, height int
	script        [][]shadertest.Event
	closeAfter    int

	polls   int
	swaps   int
	pending []shadertest.Event
}

func (w *fakeWindow) PollEvents() {
	if w.polls < len(w.script) {
		for _, e := range w.script[w.polls] {
			// Resizing also resizes the framebuffer, as GLFW does.
			if r, ok := e.(shadertest.ResizeEvent); ok {
				w.width, w.height = r.Width, r.Height
			}
			w.pending = append(w.pending, e)
		}
	}
	w.polls++
}

func (w *fakeWindow) DrainEvents() []shadertest.Event {
	events := w.pending
	w.pending = nil
	return events
}

func (w *fakeWindow) ShouldClose() bool {
	return w.polls >= w.closeAfter
}

func (w *fakeWindow) SwapBuffers() { w.swaps++ }

func (w *fakeWindow) FramebufferSize() (int, int) {
	return w.width, w.height
}

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), &buf
}
