package shadertest

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
)

// ShaderCompiler creates shader objects from source files and validates
// them afterwards.
//
// Create never reports failure. A missing file is compiled as a placeholder
// source so the driver's compile log becomes the single place where problems
// surface. Check sweeps every shader created so far; the pending set is never
// drained, so repeated calls re-validate the same shaders.
type ShaderCompiler struct {
	gl     GL
	logger *slog.Logger

	files   map[uint32]string
	names   map[string]uint32
	pending map[string]uint32
}

// NewShaderCompiler creates a compiler issuing commands through gl.
func NewShaderCompiler(gl GL, logger *slog.Logger) *ShaderCompiler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ShaderCompiler{
		gl:      gl,
		logger:  logger,
		files:   make(map[uint32]string),
		names:   make(map[string]uint32),
		pending: make(map[string]uint32),
	}
}

// Create reads path, submits it as a shader of the given stage and starts
// compilation. The result is observed later through Check.
func (c *ShaderCompiler) Create(stage ShaderStage, path string) uint32 {
	source, err := os.ReadFile(path)
	if err != nil {
		c.logger.Debug("Shader source unreadable",
			slog.String("path", path),
			slog.String("error", err.Error()))
		source = []byte(fmt.Sprintf("File %s not found", path))
	}

	shader := c.gl.CreateShader(stage)
	c.gl.ShaderSource(shader, string(source))
	c.gl.CompileShader(shader)

	c.files[shader] = path
	c.names[path] = shader
	c.pending[path] = shader

	return shader
}

// Path returns the source path a shader was created from.
func (c *ShaderCompiler) Path(shader uint32) (string, bool) {
	path, ok := c.files[shader]
	return path, ok
}

// Shader returns the shader created from path.
func (c *ShaderCompiler) Shader(path string) (uint32, bool) {
	shader, ok := c.names[path]
	return shader, ok
}

// Check reports whether every pending shader compiled. It inspects all of
// them before returning, logging the info log of each failure.
func (c *ShaderCompiler) Check() bool {
	success := true

	for path, shader := range c.pending {
		status := c.gl.GetShaderiv(shader, CompileStatus)
		c.logger.Debug("Shader compile status",
			slog.String("path", path),
			slog.Int("status", int(status)))

		if status == 1 {
			continue
		}

		success = false

		length := c.gl.GetShaderiv(shader, InfoLogLength)
		c.logger.Debug("Shader info log length",
			slog.String("path", path),
			slog.Int("length", int(length)))

		if length <= 0 {
			continue
		}

		buf := make([]byte, length)
		n := c.gl.GetShaderInfoLog(shader, buf)

		c.logger.Error("Shader compilation failed",
			slog.String("path", path),
			slog.String("log", decodeInfoLog(buf, n)))
	}

	return success
}

// CheckProgram reports whether program linked successfully. The zero handle
// is never a valid program and is rejected without querying the driver.
func (c *ShaderCompiler) CheckProgram(program uint32) bool {
	if program == 0 {
		return false
	}

	if c.gl.GetProgramiv(program, LinkStatus) == 1 {
		return true
	}

	length := c.gl.GetProgramiv(program, InfoLogLength)
	if length > 0 {
		buf := make([]byte, length)
		n := c.gl.GetProgramInfoLog(program, buf)

		c.logger.Error("Program link failed",
			slog.Uint64("program", uint64(program)),
			slog.String("log", decodeInfoLog(buf, n)))
	}

	return false
}

// decodeInfoLog converts the first n bytes of a driver log to text,
// dropping the terminating NUL.
func decodeInfoLog(buf []byte, n int) string {
	if n < 0 || n > len(buf) {
		n = len(buf)
	}

	return string(bytes.TrimRight(buf[:n], "\x00"))
}
