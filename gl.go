package shadertest

import "unsafe"

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	VertexShader ShaderStage = iota
	FragmentShader
)

func (s ShaderStage) String() string {
	switch s {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

// ObjectParam selects a shader or program parameter query.
type ObjectParam int

const (
	CompileStatus ObjectParam = iota
	LinkStatus
	InfoLogLength
)

// BufferTarget selects the binding point for buffer operations.
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// StringName selects a driver information string.
type StringName int

const (
	Vendor StringName = iota
	Renderer
	Version
)

// GL is the GPU command interface the core depends on.
// Implementations issue the calls on the thread that owns the context.
type GL interface {
	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, param ObjectParam) int32
	// GetShaderInfoLog fills buf and returns the number of bytes written.
	GetShaderInfoLog(shader uint32, buf []byte) int
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	BindAttribLocation(program, index uint32, name string)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, param ObjectParam) int32
	GetProgramInfoLog(program uint32, buf []byte) int
	GetUniformLocation(program uint32, name string) int32
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	BufferData(target BufferTarget, size int, data unsafe.Pointer)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	// VertexAttribPointer describes a tightly packed float attribute.
	VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	DeleteVertexArray(array uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float32)
	// Clear clears the colour and depth buffers.
	Clear()
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, x, y float32)
	// DrawElements draws indexed triangles using uint32 indices.
	DrawElements(count int32)

	GetError() ErrorCode
	GetString(name StringName) string
}
