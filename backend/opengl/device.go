// Package opengl provides the OpenGL 4.1 and GLFW backends for shadertest.
package opengl

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shadertest"
)

var (
	loadOnce sync.Once
	loadErr  error
)

// Device issues shadertest GPU commands through go-gl.
type Device struct{}

var _ shadertest.GL = (*Device)(nil)

// Load binds the GL function pointers for the current context and returns
// the device. The bindings are resolved once per process; a context must be
// current on the calling thread.
func Load() (*Device, error) {
	loadOnce.Do(func() {
		if err := gl.Init(); err != nil {
			loadErr = fmt.Errorf("gl init: %w", err)
		}
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return &Device{}, nil
}

func shaderType(stage shadertest.ShaderStage) uint32 {
	if stage == shadertest.FragmentShader {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func objectParam(param shadertest.ObjectParam) uint32 {
	switch param {
	case shadertest.CompileStatus:
		return gl.COMPILE_STATUS
	case shadertest.LinkStatus:
		return gl.LINK_STATUS
	default:
		return gl.INFO_LOG_LENGTH
	}
}

func bufferTarget(target shadertest.BufferTarget) uint32 {
	if target == shadertest.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func (d *Device) CreateShader(stage shadertest.ShaderStage) uint32 {
	return gl.CreateShader(shaderType(stage))
}

func (d *Device) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (d *Device) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (d *Device) GetShaderiv(shader uint32, param shadertest.ObjectParam) int32 {
	var v int32
	gl.GetShaderiv(shader, objectParam(param), &v)
	return v
}

func (d *Device) GetShaderInfoLog(shader uint32, buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	var written int32
	gl.GetShaderInfoLog(shader, int32(len(buf)), &written, &buf[0])
	return int(written)
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Device) BindAttribLocation(program, index uint32, name string) {
	gl.BindAttribLocation(program, index, gl.Str(name+"\x00"))
}

func (d *Device) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (d *Device) GetProgramiv(program uint32, param shadertest.ObjectParam) int32 {
	var v int32
	gl.GetProgramiv(program, objectParam(param), &v)
	return v
}

func (d *Device) GetProgramInfoLog(program uint32, buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	var written int32
	gl.GetProgramInfoLog(program, int32(len(buf)), &written, &buf[0])
	return int(written)
}

func (d *Device) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (d *Device) BindBuffer(target shadertest.BufferTarget, buffer uint32) {
	gl.BindBuffer(bufferTarget(target), buffer)
}

func (d *Device) BufferData(target shadertest.BufferTarget, size int, data unsafe.Pointer) {
	gl.BufferData(bufferTarget(target), size, data, gl.STATIC_DRAW)
}

func (d *Device) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (d *Device) GenVertexArray() uint32 {
	var array uint32
	gl.GenVertexArrays(1, &array)
	return array
}

func (d *Device) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (d *Device) VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, offset)
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *Device) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (d *Device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Device) ClearDepth(depth float32) {
	gl.ClearDepthf(depth)
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (d *Device) Uniform2f(location int32, x, y float32) {
	gl.Uniform2f(location, x, y)
}

func (d *Device) DrawElements(count int32) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, count, gl.UNSIGNED_INT, 0)
}

func (d *Device) GetError() shadertest.ErrorCode {
	return shadertest.ErrorCode(gl.GetError())
}

// GetString returns an empty string when the driver has no value.
func (d *Device) GetString(name shadertest.StringName) string {
	var enum uint32
	switch name {
	case shadertest.Vendor:
		enum = gl.VENDOR
	case shadertest.Renderer:
		enum = gl.RENDERER
	default:
		enum = gl.VERSION
	}

	s := gl.GetString(enum)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}
