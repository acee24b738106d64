// Package config holds the settings for both icon commands.
//
// Every setting has a built-in default, so the commands run without any
// configuration file. A YAML file passed with --config overrides individual
// values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/appicon-tools/internal/iconset"
	"github.com/ironsheep/appicon-tools/internal/imaging"
)

// Config holds the application configuration
type Config struct {
	// WorkDir is the directory relative paths are resolved against.
	// Empty means the process working directory.
	WorkDir string `yaml:"work_dir"`

	Source     SourceConfig     `yaml:"source"`
	Background BackgroundConfig `yaml:"background"`
	Canvas     CanvasConfig     `yaml:"canvas"`
	Artwork    ArtworkConfig    `yaml:"artwork"`
	Export     ExportConfig     `yaml:"export"`
	Placement  PlacementConfig  `yaml:"placement"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SourceConfig locates the image convert-image-to-icon starts from
type SourceConfig struct {
	Path string `yaml:"path"`
}

// BackgroundConfig controls near-black background removal
type BackgroundConfig struct {
	Tolerance int `yaml:"tolerance"` // Channel threshold, 0-255 (default: 30)
}

// CanvasConfig controls the rounded-square canvas
type CanvasConfig struct {
	Size         int     `yaml:"size"`          // Side length in pixels (default: 1024)
	Coverage     float64 `yaml:"coverage"`      // Max artwork fraction per dimension (default: 0.9)
	CornerRadius float64 `yaml:"corner_radius"` // Radius at 1024px (default: 180)
	Color        string  `yaml:"color"`         // Tile color behind converted artwork (default: #14141E)
}

// ArtworkConfig controls the icon create-icon synthesizes
type ArtworkConfig struct {
	GradientTop    string `yaml:"gradient_top"`
	GradientBottom string `yaml:"gradient_bottom"`

	Glyph        string  `yaml:"glyph"`
	GlyphFont    string  `yaml:"glyph_font"`
	GlyphSize    float64 `yaml:"glyph_size"`
	GlyphLift    float64 `yaml:"glyph_lift"`
	ShadowOffset float64 `yaml:"shadow_offset"`
	ShadowColor  string  `yaml:"shadow_color"`
	ShadowBlur   float64 `yaml:"shadow_blur"`

	Badge        string  `yaml:"badge"`
	BadgeFont    string  `yaml:"badge_font"`
	BadgeSize    float64 `yaml:"badge_size"`
	BadgeTop     float64 `yaml:"badge_top"`
	GlowRadius   int     `yaml:"glow_radius"`
	GlowStep     int     `yaml:"glow_step"`
	GlowStrength float64 `yaml:"glow_strength"`
}

// ExportConfig controls the preview and the .icns container
type ExportConfig struct {
	Preview    string `yaml:"preview"` // Empty uses each command's own preview name
	Output     string `yaml:"output"`
	StagingDir string `yaml:"staging_dir"`
	Packer     string `yaml:"packer"` // auto, iconutil or native (default: auto)
}

// PlacementConfig is where convert-image-to-icon moves the container
type PlacementConfig struct {
	Destination string `yaml:"destination"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"` // debug or info (default: info)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Path: "CCUsageMac/Resources/Gemini_Generated_Image_s58u6js58u6js58u.jpeg",
		},
		Background: BackgroundConfig{
			Tolerance: imaging.DefaultTolerance,
		},
		Canvas: CanvasConfig{
			Size:         1024,
			Coverage:     0.9,
			CornerRadius: 180,
			Color:        "#14141E",
		},
		Artwork: ArtworkConfig{
			GradientTop:    "#1E2850",
			GradientBottom: "#3C1E78",
			Glyph:          "🧠",
			GlyphFont:      "/System/Library/Fonts/Apple Color Emoji.ttc",
			GlyphSize:      600,
			GlyphLift:      50,
			ShadowOffset:   20,
			ShadowColor:    "#00000080",
			Badge:          "$",
			BadgeFont:      "/System/Library/Fonts/Helvetica.ttc",
			BadgeSize:      120,
			BadgeTop:       300,
			GlowRadius:     10,
			GlowStep:       2,
			GlowStrength:   0.3,
		},
		Export: ExportConfig{
			Output:     "icon.icns",
			StagingDir: iconset.DefaultStagingDir,
			Packer:     iconset.PackerAuto,
		},
		Placement: PlacementConfig{
			Destination: "CCUsageMac/Resources/AppIcon.icns",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
//
// Keys missing from the file keep their default value.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and that colors parse.
func (c *Config) Validate() error {
	if c.Canvas.Size <= 0 {
		return fmt.Errorf("canvas.size must be positive, got %d", c.Canvas.Size)
	}
	if c.Canvas.Coverage <= 0 || c.Canvas.Coverage > 1 {
		return fmt.Errorf("canvas.coverage must be in (0,1], got %v", c.Canvas.Coverage)
	}
	if c.Canvas.CornerRadius < 0 {
		return fmt.Errorf("canvas.corner_radius must not be negative, got %v", c.Canvas.CornerRadius)
	}
	if c.Background.Tolerance < 0 || c.Background.Tolerance > 255 {
		return fmt.Errorf("background.tolerance must be in 0-255, got %d", c.Background.Tolerance)
	}

	colors := map[string]string{
		"canvas.color":            c.Canvas.Color,
		"artwork.gradient_top":    c.Artwork.GradientTop,
		"artwork.gradient_bottom": c.Artwork.GradientBottom,
		"artwork.shadow_color":    c.Artwork.ShadowColor,
	}
	for key, value := range colors {
		if _, err := imaging.ParseHexColor(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	switch c.Export.Packer {
	case iconset.PackerAuto, iconset.PackerIconutil, iconset.PackerNative:
	default:
		return fmt.Errorf("export.packer must be %s, %s or %s, got %q",
			iconset.PackerAuto, iconset.PackerIconutil, iconset.PackerNative, c.Export.Packer)
	}
	if c.Export.Output == "" {
		return fmt.Errorf("export.output is required")
	}
	if !strings.HasSuffix(c.Export.StagingDir, ".iconset") {
		return fmt.Errorf("export.staging_dir must end with .iconset, got %q", c.Export.StagingDir)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info":
	default:
		return fmt.Errorf("logging.level must be debug or info, got %q", c.Logging.Level)
	}
	return nil
}

// Resolve returns path joined to WorkDir unless it is already absolute.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.WorkDir == "" {
		return path
	}
	return filepath.Join(c.WorkDir, path)
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.Logging.Level, "debug")
}
