package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/df07/go-weekend-pathtracer/pkg/output"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderFlags are the flags accepted by the render command. Zero values keep
// the scene's recommended setting.
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "scene, s",
		Value:  "two-spheres",
		Usage:  "scene to render (see the scenes command)",
		EnvVar: "PATHTRACER_SCENE",
	},
	cli.IntFlag{
		Name:   "width",
		Usage:  "frame width",
		EnvVar: "PATHTRACER_WIDTH",
	},
	cli.IntFlag{
		Name:   "height",
		Usage:  "frame height",
		EnvVar: "PATHTRACER_HEIGHT",
	},
	cli.IntFlag{
		Name:   "spp",
		Usage:  "samples per pixel",
		EnvVar: "PATHTRACER_SPP",
	},
	cli.IntFlag{
		Name:   "depth",
		Usage:  "maximum number of bounces",
		EnvVar: "PATHTRACER_DEPTH",
	},
	cli.Int64Flag{
		Name:   "seed",
		Value:  renderer.DefaultSamplingConfig().Seed,
		Usage:  "seed for scene layout and every sample stream",
		EnvVar: "PATHTRACER_SEED",
	},
	cli.IntFlag{
		Name:   "workers",
		Usage:  "number of render workers (0 = CPU count)",
		EnvVar: "PATHTRACER_WORKERS",
	},
	cli.IntFlag{
		Name:   "passes",
		Value:  1,
		Usage:  "number of progressive passes",
		EnvVar: "PATHTRACER_PASSES",
	},
	cli.IntFlag{
		Name:   "tile",
		Value:  renderer.DefaultProgressiveConfig().TileSize,
		Usage:  "tile size in pixels",
		EnvVar: "PATHTRACER_TILE",
	},
	cli.StringFlag{
		Name:   "textures",
		Value:  "textures",
		Usage:  "directory searched for image textures",
		EnvVar: "PATHTRACER_TEXTURES",
	},
	cli.StringFlag{
		Name:   "out, o",
		Usage:  "output file; defaults to <scene>.ppm",
		EnvVar: "PATHTRACER_OUT",
	},
}

// RenderScene renders a built-in scene and writes it to disk.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sceneID := ctx.String("scene")
	out := ctx.String("out")
	if out == "" {
		out = sceneID + ".ppm"
	}
	// Fail before spending time on the render
	if _, _, err := output.ParseFilename(out); err != nil {
		return err
	}

	sc, err := scene.New(sceneID, scene.Options{
		Seed:       ctx.Int64("seed"),
		TextureDir: ctx.String("textures"),
	})
	if err != nil {
		return err
	}

	sampling := samplingFromFlags(ctx, sc.SamplingConfig)
	rt, err := sc.NewRaytracer(sampling)
	if err != nil {
		return err
	}

	config := renderer.DefaultProgressiveConfig()
	config.TileSize = ctx.Int("tile")
	config.MaxSamplesPerPixel = sampling.SamplesPerPixel
	config.MaxPasses = ctx.Int("passes")
	config.NumWorkers = ctx.Int("workers")
	progressive, err := renderer.NewProgressiveRaytracer(rt, config)
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering %s at %dx%d with %d samples per pixel", sceneID, sampling.Width, sampling.Height, sampling.SamplesPerPixel)
	result, err := progressive.Render(renderCtx, func(pass renderer.PassResult) {
		logger.Infof("pass %d/%d done (%.1f samples/pixel)", pass.PassNumber, pass.TotalPasses, pass.Stats.AverageSamples)
	})
	if err != nil {
		return fmt.Errorf("rendering %s: %w", sceneID, err)
	}

	if err := output.Save(out, result.Image); err != nil {
		return err
	}

	displayRenderStats(sceneID, result)
	logger.Noticef("wrote %s", out)
	return nil
}

// samplingFromFlags overrides the scene's recommended settings with any flags given
func samplingFromFlags(ctx *cli.Context, sampling renderer.SamplingConfig) renderer.SamplingConfig {
	if v := ctx.Int("width"); v != 0 {
		sampling.Width = v
	}
	if v := ctx.Int("height"); v != 0 {
		sampling.Height = v
	}
	if v := ctx.Int("spp"); v != 0 {
		sampling.SamplesPerPixel = v
	}
	if v := ctx.Int("depth"); v != 0 {
		sampling.MaxDepth = v
	}
	sampling.Seed = ctx.Int64("seed")
	return sampling
}

func displayRenderStats(sceneID string, result renderer.PassResult) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Pixels", "Samples", "Avg spp", "Min spp", "Max spp", "Passes"})
	stats := result.Stats
	table.Append([]string{
		sceneID,
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.1f", stats.AverageSamples),
		fmt.Sprintf("%d", stats.MinSamples),
		fmt.Sprintf("%d", stats.MaxSamplesUsed),
		fmt.Sprintf("%d", result.PassNumber),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL", stats.Elapsed.String()})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
