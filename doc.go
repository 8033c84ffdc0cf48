/*
Package shadertest compiles a vertex and fragment shader pair, draws a
full-screen quad with it and animates the quad's uniforms every frame.

# Overview

The package does not depend on any GPU binding or windowing library. It
talks to the GPU through the GL interface and to the platform through the
Window interface; the opengl backend provides both on top of go-gl and GLFW.

	window, _ := opengl.NewWindow(800, 600, "Shader test", true)
	defer window.Destroy()

	app := shadertest.New(window, shadertest.DefaultConfig())
	defer app.Close()

	_ = app.LoadGL(func() (shadertest.GL, error) { return opengl.Load() })
	err := app.Run()

# Lifecycle

An App moves through the following states:

	created -> gl-loaded -> initialized -> running -> closed
	                              \             \
	                               `-> failed    `-> failed

LoadGL hands the app its GL interface. Begin compiles and links the program,
uploads the quad and configures the vertex array, stopping at the first
failure. Run calls Begin when needed and then renders until the window asks
to close or a GL error is reported.

# Uniforms

The fragment shader may declare any of:

	uniform float u_time;       // seconds * π/5, wrapped into [0, 2π)
	uniform vec2  u_resolution; // framebuffer size in pixels
	uniform vec2  u_mouse;      // cursor position, bottom-left origin

Uniforms the shader does not use resolve to -1 and are ignored by the driver.

# Diagnostics

ShaderCompiler never fails on its own. A shader file that cannot be read is
compiled as placeholder text, so the driver's compile log reports it like any
other syntax error. Compile and link logs are written through log/slog.
*/
package shadertest
