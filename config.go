package shadertest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// ConfigFilename is the config file looked up in the working directory.
const ConfigFilename = "shadertest.yml"

// ConfigEnv names the environment variable that overrides the config path.
const ConfigEnv = "SHADERTEST_CONFIG"

// Config holds window and shader settings.
type Config struct {
	Width          int        `yaml:"width"`
	Height         int        `yaml:"height"`
	Title          string     `yaml:"title"`
	VertexShader   string     `yaml:"vertex_shader"`
	FragmentShader string     `yaml:"fragment_shader"`
	ClearColor     mgl32.Vec4 `yaml:"clear_color,flow"`
	VSync          bool       `yaml:"vsync"`
	// Profile selects a profiling mode: "", "cpu" or "mem".
	Profile string `yaml:"profile"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         600,
		Title:          "Shader test",
		VertexShader:   "./shaders/vert.glsl",
		FragmentShader: "./shaders/frag.glsl",
		ClearColor:     mgl32.Vec4{0.2, 0.3, 0.3, 0.1},
		VSync:          true,
	}
}

// ConfigPath returns the path named by ConfigEnv, or ConfigFilename.
func ConfigPath() string {
	if path := os.Getenv(ConfigEnv); path != "" {
		return path
	}
	return ConfigFilename
}

// LoadConfig reads the YAML file at path over the defaults.
// A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the settings for values the window cannot use.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}

	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("unknown profile mode %q", c.Profile)
	}

	return nil
}
