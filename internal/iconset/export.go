package iconset

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	iconimg "github.com/ironsheep/appicon-tools/internal/imaging"
)

// DefaultStagingDir is the directory renditions are written to before
// packing. iconutil requires the ".iconset" extension.
const DefaultStagingDir = "icon.iconset"

// WriteSet renders img at every Variant and saves the PNGs into dir, which
// must exist. Resizing uses the Lanczos filter.
func WriteSet(img image.Image, dir string) (Set, error) {
	set := make(Set, len(Variants))
	for _, v := range Variants {
		px := v.Pixels()
		resized := imaging.Resize(img, px, px, imaging.Lanczos)
		path := filepath.Join(dir, v.Filename())
		if err := iconimg.SavePNG(resized, path); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", v, err)
		}
		set[v] = path
	}
	return set, nil
}

// Exporter turns a square image into an .icns file.
type Exporter struct {
	// StagingDir receives the renditions; it is created and removed by Export.
	StagingDir string

	// Packer merges the staged renditions.
	Packer Packer
}

// Export stages every rendition of img, packs them into outPath, and removes
// the staging directory.
//
// The staging directory is removed even when packing fails. A failure to
// remove it is logged, not returned.
func (e *Exporter) Export(ctx context.Context, img image.Image, outPath string) error {
	staging := e.StagingDir
	if staging == "" {
		staging = DefaultStagingDir
	}

	if err := os.MkdirAll(staging, 0o755); err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(staging); err != nil {
			log.Printf("Failed to remove %s: %v", staging, err)
		}
	}()

	if _, err := WriteSet(img, staging); err != nil {
		return err
	}

	if err := e.Packer.Pack(ctx, staging, outPath); err != nil {
		return fmt.Errorf("failed to pack %s: %w", outPath, err)
	}
	return nil
}
