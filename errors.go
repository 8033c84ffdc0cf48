package shadertest

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrShaderCompile = errors.New("shader compilation failed")
	ErrProgramLink   = errors.New("program link failed")
	ErrInvalidState  = errors.New("invalid app state")
)

// ErrorCode is a value returned by the GL error query.
type ErrorCode uint32

const (
	NoError                     ErrorCode = 0
	InvalidEnum                 ErrorCode = 0x0500
	InvalidValue                ErrorCode = 0x0501
	InvalidOperation            ErrorCode = 0x0502
	OutOfMemory                 ErrorCode = 0x0505
	InvalidFramebufferOperation ErrorCode = 0x0506
)

func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	default:
		return "UNKNOWN"
	}
}

// GLError is a GL error observed after the named stage.
type GLError struct {
	Code  ErrorCode
	Stage string
}

func (e *GLError) Error() string {
	return fmt.Sprintf("opengl error %s: %s", e.Code, e.Stage)
}

// checkGLError polls the GL error flag once.
func checkGLError(gl GL, logger *slog.Logger, stage string) error {
	code := gl.GetError()
	if code == NoError {
		return nil
	}

	logger.Error("OpenGL error",
		slog.String("error", code.String()),
		slog.String("stage", stage))

	return &GLError{Code: code, Stage: stage}
}
