package main

import (
	"fmt"
	"os"

	"github.com/df07/go-weekend-pathtracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render scenes using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = cmd.GlobalFlags
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Render one of the built-in scenes. The output encoding is picked from the
file suffix: .ppm (plain P3), .pnm (binary P6) or .png, optionally followed
by .zst or .sz for zstd or snappy compression.

Flags left unset fall back to the scene's recommended settings.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:   "serve",
			Usage:  "serve a live progressive preview over websockets",
			Flags:  cmd.ServeFlags,
			Action: cmd.Serve,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
