package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"
)

// ProgressiveRaytracer renders in passes of increasing sample counts.
// Every pixel keeps its own random stream across passes, so the final
// pass equals a single-pass render with the same total samples.
type ProgressiveRaytracer struct {
	raytracer *Raytracer
	config    ProgressiveConfig
	tiles     []*Tile
	frame     *Frame
}

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber  int
	TotalPasses int
	Image       *image.RGBA // Snapshot of the frame after this pass
	Stats       RenderStats
	IsLast      bool
}

// NewProgressiveRaytracer creates a new progressive raytracer
func NewProgressiveRaytracer(raytracer *Raytracer, config ProgressiveConfig) (*ProgressiveRaytracer, error) {
	if err := raytracer.Config().Validate(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	sampling := raytracer.Config()
	return &ProgressiveRaytracer{
		raytracer: raytracer,
		config:    config,
		tiles:     NewTileGrid(sampling.Width, sampling.Height, config.TileSize),
		frame:     NewFrame(sampling.Width, sampling.Height, sampling.Seed),
	}, nil
}

// Frame returns the accumulated frame; read it only once rendering has finished
func (pr *ProgressiveRaytracer) Frame() *Frame {
	return pr.frame
}

// getSamplesForPass calculates the target total samples for a given pass
func (pr *ProgressiveRaytracer) getSamplesForPass(passNumber int) int {
	// Special case: if only 1 pass, use all samples
	if pr.config.MaxPasses == 1 {
		return pr.config.MaxSamplesPerPixel
	}

	// For multiple passes: first pass is quick preview
	if passNumber == 1 {
		return pr.config.InitialSamples
	}

	// Divide remaining samples evenly across remaining passes
	remainingSamples := pr.config.MaxSamplesPerPixel - pr.config.InitialSamples
	remainingPasses := pr.config.MaxPasses - 1
	samplesPerPass := remainingSamples / remainingPasses

	targetSamples := pr.config.InitialSamples + (passNumber-1)*samplesPerPass

	// For the final pass, use all remaining samples
	if passNumber == pr.config.MaxPasses {
		targetSamples = pr.config.MaxSamplesPerPixel
	}

	return targetSamples
}

// renderPass submits every tile for one pass and waits for all of them
func (pr *ProgressiveRaytracer) renderPass(pool *WorkerPool, passNumber int) (RenderStats, error) {
	targetSamples := pr.getSamplesForPass(passNumber)

	logger.Infof("pass %d: target %d samples per pixel (using %d workers)",
		passNumber, targetSamples, pool.GetNumWorkers())

	for taskID, tile := range pr.tiles {
		pool.SubmitTask(TileTask{
			Tile:          tile,
			PassNumber:    passNumber,
			TargetSamples: targetSamples,
			TaskID:        taskID,
			Frame:         pr.frame,
		})
	}

	// Every result must be collected, even after a failure, so the next pass starts clean
	var firstErr error
	for i := 0; i < len(pr.tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			return RenderStats{}, errors.New("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		pr.tiles[result.TaskID].PassesCompleted++
	}
	if firstErr != nil {
		return RenderStats{}, firstErr
	}

	return pr.frameStats(targetSamples), nil
}

// frameStats calculates statistics from the accumulated pixels
func (pr *ProgressiveRaytracer) frameStats(targetSamples int) RenderStats {
	stats := newRenderStats(len(pr.frame.Pixels), targetSamples)
	for i := range pr.frame.Pixels {
		stats.addPixel(pr.frame.Pixels[i].SampleCount)
	}
	stats.finalize()
	return stats
}

// RenderProgressive renders with channel-based communication.
// Passes are sent as they complete; the error channel receives at most one
// error (ctx.Err() on cancellation) and both channels are closed when done.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)

		pool := NewWorkerPool(ctx, pr.raytracer, pr.config.NumWorkers, len(pr.tiles))
		pool.Start()
		defer pool.Stop()

		logger.Infof("starting progressive rendering with %d passes", pr.config.MaxPasses)
		renderStart := time.Now()

		for pass := 1; pass <= pr.config.MaxPasses; pass++ {
			// Check if the caller gave up before starting this pass
			if err := ctx.Err(); err != nil {
				logger.Infof("rendering cancelled before pass %d", pass)
				errChan <- err
				return
			}

			startTime := time.Now()
			stats, err := pr.renderPass(pool, pass)
			if err != nil {
				errChan <- fmt.Errorf("pass %d: %w", pass, err)
				return
			}
			stats.Elapsed = time.Since(renderStart)

			logger.Infof("pass %d completed in %v (%.1f samples/pixel)",
				pass, time.Since(startTime), stats.AverageSamples)

			isLast := pass == pr.config.MaxPasses || stats.MinSamples >= pr.config.MaxSamplesPerPixel
			result := PassResult{
				PassNumber:  pass,
				TotalPasses: pr.config.MaxPasses,
				Image:       pr.frame.Image(),
				Stats:       stats,
				IsLast:      isLast,
			}

			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}

			if isLast {
				logger.Debugf("reached %d samples per pixel after %d passes", pr.config.MaxSamplesPerPixel, pass)
				return
			}
		}
	}()

	return passChan, errChan
}

// Render runs every pass and returns the last one
func (pr *ProgressiveRaytracer) Render(ctx context.Context, onPass func(PassResult)) (PassResult, error) {
	passChan, errChan := pr.RenderProgressive(ctx)

	var last PassResult
	for result := range passChan {
		if onPass != nil {
			onPass(result)
		}
		last = result
	}
	if err := <-errChan; err != nil {
		return last, err
	}
	return last, nil
}
