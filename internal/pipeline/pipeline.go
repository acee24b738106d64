// Package pipeline runs the two icon commands end to end.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/ironsheep/appicon-tools/internal/artwork"
	"github.com/ironsheep/appicon-tools/internal/config"
	"github.com/ironsheep/appicon-tools/internal/iconset"
	"github.com/ironsheep/appicon-tools/internal/imaging"
)

// ErrSourceNotFound is returned (wrapped) by Convert when the source image
// does not exist.
var ErrSourceNotFound = imaging.ErrNotFound

// Preview file names used when export.preview is empty.
const (
	ConvertPreview = "icon_preview_new.png"
	CreatePreview  = "icon_preview.png"
)

// Runner executes the pipeline stages with one configuration.
type Runner struct {
	cfg    *config.Config
	packer iconset.Packer
	out    io.Writer
}

// New creates a Runner. Progress lines are written to out.
func New(cfg *config.Config, packer iconset.Packer, out io.Writer) *Runner {
	return &Runner{cfg: cfg, packer: packer, out: out}
}

// Check verifies the packer can run. Convert and Create call it before any
// file is written.
func (r *Runner) Check() error {
	return r.packer.Check()
}

// Convert turns the configured source image into an app icon: background
// removal, compositing, preview, export and placement.
//
// When the source does not exist nothing is written and the error wraps
// ErrSourceNotFound. The source is checked before the packer.
func (r *Runner) Convert(ctx context.Context) error {
	src := r.cfg.Resolve(r.cfg.Source.Path)
	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w at %s", ErrSourceNotFound, r.cfg.Source.Path)
		}
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if err := r.Check(); err != nil {
		return err
	}

	opts, err := r.composeOptions()
	if err != nil {
		return err
	}

	r.progress("Loading image...")
	img, err := imaging.Load(src)
	if err != nil {
		return err
	}
	if r.cfg.Debug() {
		if info, err := imaging.LoadInfo(src); err == nil {
			log.Printf("Loaded %s: %dx%d %s alpha=%t %d bytes",
				src, info.Width, info.Height, info.Format, info.HasAlpha, info.FileSizeBytes)
		}
	}

	r.progress("Removing black background...")
	trimmed := imaging.RemoveBackground(img, uint8(r.cfg.Background.Tolerance))
	r.debugf("Cropped to %dx%d", trimmed.Bounds().Dx(), trimmed.Bounds().Dy())

	r.progress("Creating square icon...")
	icon := imaging.Compose(trimmed, opts)

	if err := r.writePreview(icon, ConvertPreview); err != nil {
		return err
	}
	if err := r.export(ctx, icon); err != nil {
		return err
	}

	dst := r.cfg.Placement.Destination
	if err := Place(r.cfg.Resolve(r.cfg.Export.Output), r.cfg.Resolve(dst)); err != nil {
		return err
	}
	r.progress("Moved icon to %s", dst)
	return nil
}

// Create synthesizes the gradient-and-glyph icon, writes its preview and
// exports the container. The container stays at export.output.
func (r *Runner) Create(ctx context.Context) error {
	if err := r.Check(); err != nil {
		return err
	}
	opts, err := r.artworkOptions()
	if err != nil {
		return err
	}

	icon := artwork.Render(opts)

	if err := r.writePreview(icon, CreatePreview); err != nil {
		return err
	}
	return r.export(ctx, icon)
}

func (r *Runner) writePreview(icon *image.NRGBA, fallback string) error {
	name := r.cfg.Export.Preview
	if name == "" {
		name = fallback
	}
	if err := imaging.SavePNG(icon, r.cfg.Resolve(name)); err != nil {
		return err
	}
	r.progress("Created %s", name)
	return nil
}

func (r *Runner) export(ctx context.Context, icon *image.NRGBA) error {
	exp := &iconset.Exporter{
		StagingDir: r.cfg.Resolve(r.cfg.Export.StagingDir),
		Packer:     r.packer,
	}
	out := r.cfg.Resolve(r.cfg.Export.Output)
	if err := exp.Export(ctx, icon, out); err != nil {
		return err
	}
	r.progress("Created %s", r.cfg.Export.Output)
	if r.cfg.Debug() {
		r.logContainer(out)
	}
	return nil
}

// logContainer lists the elements of a written container.
func (r *Runner) logContainer(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Cannot reopen %s: %v", path, err)
		return
	}
	defer f.Close()

	entries, err := iconset.ReadICNS(f)
	if err != nil {
		log.Printf("Cannot parse %s: %v", path, err)
		return
	}
	for _, e := range entries {
		log.Printf("  %s", e)
	}
}

func (r *Runner) composeOptions() (imaging.ComposeOptions, error) {
	bg, err := imaging.ParseHexColor(r.cfg.Canvas.Color)
	if err != nil {
		return imaging.ComposeOptions{}, fmt.Errorf("canvas.color: %w", err)
	}
	return imaging.ComposeOptions{
		CanvasSize:   r.cfg.Canvas.Size,
		Coverage:     r.cfg.Canvas.Coverage,
		CornerRadius: r.cfg.Canvas.CornerRadius,
		Background:   bg,
	}, nil
}

func (r *Runner) artworkOptions() (artwork.Options, error) {
	a := r.cfg.Artwork
	colors := []struct {
		key   string
		value string
	}{
		{"artwork.gradient_top", a.GradientTop},
		{"artwork.gradient_bottom", a.GradientBottom},
		{"artwork.shadow_color", a.ShadowColor},
	}
	parsed := make([]color.NRGBA, len(colors))
	for i, c := range colors {
		v, err := imaging.ParseHexColor(c.value)
		if err != nil {
			return artwork.Options{}, fmt.Errorf("%s: %w", c.key, err)
		}
		parsed[i] = v
	}

	return artwork.Options{
		Size:         r.cfg.Canvas.Size,
		CornerRadius: r.cfg.Canvas.CornerRadius,
		Top:          parsed[0],
		Bottom:       parsed[1],
		Glyph:        a.Glyph,
		GlyphFont:    a.GlyphFont,
		GlyphSize:    a.GlyphSize,
		GlyphLift:    a.GlyphLift,
		ShadowOffset: a.ShadowOffset,
		ShadowColor:  parsed[2],
		ShadowBlur:   a.ShadowBlur,
		Badge:        a.Badge,
		BadgeFont:    a.BadgeFont,
		BadgeSize:    a.BadgeSize,
		BadgeTop:     a.BadgeTop,
		GlowRadius:   a.GlowRadius,
		GlowStep:     a.GlowStep,
		GlowStrength: a.GlowStrength,
		Logf:         r.debugf,
	}, nil
}

func (r *Runner) progress(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Runner) debugf(format string, args ...any) {
	if r.cfg.Debug() {
		log.Printf(format, args...)
	}
}
