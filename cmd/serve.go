package cmd

import (
	"github.com/df07/go-weekend-pathtracer/web/server"
	"github.com/urfave/cli"
)

// ServeFlags are the flags accepted by the serve command
var ServeFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "addr",
		Value:  ":8080",
		Usage:  "listen address",
		EnvVar: "PATHTRACER_ADDR",
	},
	cli.StringFlag{
		Name:   "static",
		Usage:  "directory of static files served at /",
		EnvVar: "PATHTRACER_STATIC",
	},
	cli.StringFlag{
		Name:   "textures",
		Value:  "textures",
		Usage:  "directory searched for image textures",
		EnvVar: "PATHTRACER_TEXTURES",
	},
	cli.IntFlag{
		Name:   "workers",
		Usage:  "render workers per request (0 = CPU count)",
		EnvVar: "PATHTRACER_WORKERS",
	},
}

// Serve runs the live preview server until it fails.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	srv := server.NewServer(server.Options{
		TextureDir: ctx.String("textures"),
		StaticDir:  ctx.String("static"),
		NumWorkers: ctx.Int("workers"),
	})
	logger.Noticef("visit ws://localhost%s/ws/render?scene=cornell-box to start rendering", ctx.String("addr"))
	return srv.ListenAndServe(ctx.String("addr"))
}
