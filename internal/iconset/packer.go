package iconset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrPackerUnavailable is returned when the selected packer cannot run on
	// this machine.
	ErrPackerUnavailable = errors.New("icon packer unavailable")

	// ErrUnknownIconFile is returned when the staging directory holds a file
	// that is not an iconset rendition.
	ErrUnknownIconFile = errors.New("unknown iconset file")
)

// Packer merges a directory of iconset PNGs into a single .icns file.
type Packer interface {
	// Check reports whether the packer can run, before any work is done.
	Check() error

	// Pack reads every PNG in iconsetDir and writes the container to outPath.
	Pack(ctx context.Context, iconsetDir, outPath string) error
}

// Packer kinds accepted by NewPacker.
const (
	PackerAuto     = "auto"
	PackerIconutil = "iconutil"
	PackerNative   = "native"
)

// NewPacker returns the packer for kind. "auto" prefers iconutil when it is
// on PATH.
func NewPacker(kind string) (Packer, error) {
	switch kind {
	case PackerIconutil:
		return &IconutilPacker{}, nil
	case PackerNative:
		return NativePacker{}, nil
	case PackerAuto, "":
		p := &IconutilPacker{}
		if p.Check() == nil {
			return p, nil
		}
		return NativePacker{}, nil
	default:
		return nil, fmt.Errorf("unknown packer %q (want %s, %s or %s)", kind, PackerAuto, PackerIconutil, PackerNative)
	}
}

// IconutilPacker runs Apple's iconutil command.
type IconutilPacker struct {
	// Path overrides the iconutil executable; empty means look it up on PATH.
	Path string
}

func (p *IconutilPacker) binary() string {
	if p.Path != "" {
		return p.Path
	}
	return "iconutil"
}

// Check verifies the iconutil executable can be found.
func (p *IconutilPacker) Check() error {
	if _, err := exec.LookPath(p.binary()); err != nil {
		return fmt.Errorf("%w: %s not found (install the Xcode command line tools with "+
			"`xcode-select --install`, or set export.packer to %q): %v",
			ErrPackerUnavailable, p.binary(), PackerNative, err)
	}
	return nil
}

// Pack runs `iconutil -c icns -o outPath iconsetDir`.
func (p *IconutilPacker) Pack(ctx context.Context, iconsetDir, outPath string) error {
	if err := p.Check(); err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, p.binary(), "-c", "icns", "-o", outPath, iconsetDir)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("iconutil failed: %w: %s", err, strings.TrimSpace(out.String()))
	}
	return nil
}

// NativePacker writes the ICNS container directly, embedding each staged PNG
// unchanged.
type NativePacker struct{}

// Check always succeeds.
func (NativePacker) Check() error { return nil }

// Pack encodes every rendition found in iconsetDir into outPath. Entries are
// ordered from the smallest rendition to the largest.
func (NativePacker) Pack(ctx context.Context, iconsetDir, outPath string) error {
	files, err := os.ReadDir(iconsetDir)
	if err != nil {
		return fmt.Errorf("failed to read iconset: %w", err)
	}

	type staged struct {
		v    Variant
		path string
	}
	var found []staged
	for _, f := range files {
		if f.IsDir() || strings.HasPrefix(f.Name(), ".") {
			continue
		}
		v, ok := ParseFilename(f.Name())
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownIconFile, f.Name())
		}
		if _, ok := OSType(v); !ok {
			return fmt.Errorf("%w: no icns type for %s", ErrUnknownIconFile, f.Name())
		}
		found = append(found, staged{v: v, path: filepath.Join(iconsetDir, f.Name())})
	}
	if len(found) == 0 {
		return fmt.Errorf("iconset %s is empty", iconsetDir)
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].v.Pixels() != found[j].v.Pixels() {
			return found[i].v.Pixels() < found[j].v.Pixels()
		}
		return found[i].v.Scale < found[j].v.Scale
	})

	entries := make([]Entry, 0, len(found))
	for _, s := range found {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := os.ReadFile(s.path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", s.path, err)
		}
		t, _ := OSType(s.v)
		entries = append(entries, Entry{Type: t, Data: data})
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	if err := WriteICNS(f, entries); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return f.Close()
}
