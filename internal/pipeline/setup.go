package pipeline

import (
	"log"
	"os"

	"github.com/ironsheep/appicon-tools/internal/config"
	"github.com/ironsheep/appicon-tools/internal/iconset"
)

// Settings are the command-line overrides shared by both commands.
type Settings struct {
	ConfigPath string
	Packer     string
	LogLevel   string
}

// Setup loads the configuration, applies overrides, configures the standard
// logger and selects the packer.
func Setup(s Settings) (*config.Config, iconset.Packer, error) {
	cfg := config.Default()
	if s.ConfigPath != "" {
		loaded, err := config.LoadFromFile(s.ConfigPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	if s.Packer != "" {
		cfg.Export.Packer = s.Packer
	}
	if s.LogLevel != "" {
		cfg.Logging.Level = s.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	// Diagnostics go to stderr; stdout carries progress lines
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	packer, err := iconset.NewPacker(cfg.Export.Packer)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Debug() {
		log.Printf("Using %T for export.packer=%s", packer, cfg.Export.Packer)
	}
	return cfg, packer, nil
}
