package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ironsheep/appicon-tools/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	app := &cli.Command{
		Name:    "convert-image-to-icon",
		Usage:   "Turn a generated image into the app's AppIcon.icns",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Description: "Removes the near-black background from the source image, centers it on a\n" +
			"rounded dark square, writes a preview PNG, builds icon.icns and moves it into\n" +
			"the resource directory. With no flags the built-in paths are used.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
			},
			&cli.StringFlag{
				Name:  "packer",
				Usage: "Container writer: auto, iconutil or native",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: info or debug",
				Sources: cli.EnvVars("APPICON_LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, packer, err := pipeline.Setup(pipeline.Settings{
				ConfigPath: cmd.String("config"),
				Packer:     cmd.String("packer"),
				LogLevel:   cmd.String("log-level"),
			})
			if err != nil {
				return err
			}

			runner := pipeline.New(cfg, packer, os.Stdout)
			return runner.Convert(ctx)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
