// Command shadertest opens a window and renders the shader pair in ./shaders
// over a full-screen quad, animating u_time, u_resolution and u_mouse.
//
// Settings are read from shadertest.yml in the working directory, or from the
// file named by $SHADERTEST_CONFIG:
//
//	width: 800
//	height: 600
//	title: Shader test
//	vertex_shader: ./shaders/vert.glsl
//	fragment_shader: ./shaders/frag.glsl
//	clear_color: [0.2, 0.3, 0.3, 0.1]
//	vsync: true
//	profile: cpu   # or mem
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/pkg/profile"

	"github.com/go-theft-auto/shadertest"
	"github.com/go-theft-auto/shadertest/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))

	if err := run(); err != nil {
		slog.Error("shadertest failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := shadertest.LoadConfig(shadertest.ConfigPath())
	if err != nil {
		return err
	}

	if prof := startProfile(cfg.Profile); prof != nil {
		defer prof.Stop()
	}

	window, err := opengl.NewWindow(cfg.Width, cfg.Height, cfg.Title, cfg.VSync)
	if err != nil {
		return err
	}
	defer window.Destroy()

	app := shadertest.New(window, cfg)
	defer app.Close()

	err = app.LoadGL(func() (shadertest.GL, error) {
		return opengl.Load()
	})
	if err != nil {
		return err
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

func startProfile(mode string) interface{ Stop() } {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.NoShutdownHook)
	case "mem":
		return profile.Start(profile.MemProfile, profile.NoShutdownHook)
	default:
		return nil
	}
}
