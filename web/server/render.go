package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string // Scene id (e.g., "cornell-box")
	Width      int    // Image width
	Height     int    // Image height
	MaxSamples int    // Maximum samples per pixel
	MaxPasses  int    // Maximum number of passes
	Seed       int64  // Seed for the scene and every sample stream
}

// ProgressUpdate is sent once per completed pass
type ProgressUpdate struct {
	PassNumber  int    `json:"passNumber"`
	TotalPasses int    `json:"totalPasses"`
	ImageData   string `json:"imageData"` // Base64 encoded PNG
	Stats       Stats  `json:"stats"`
	IsComplete  bool   `json:"isComplete"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int64   `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	MaxSamples     int     `json:"maxSamples"`
	MinSamples     int     `json:"minSamples"`
	MaxSamplesUsed int     `json:"maxSamplesUsed"`
}

// ErrorMessage reports a failed request to the client
type ErrorMessage struct {
	Error string `json:"error"`
}

// handleRender upgrades to a websocket and streams one message per pass.
// The render is cancelled as soon as the client goes away.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warningf("upgrade: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reader: the client never sends anything we act on, a read error means it left
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	req, err := parseRenderRequest(r)
	if err != nil {
		sendError(conn, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	progressive, err := s.setupRender(req)
	if err != nil {
		sendError(conn, err.Error())
		return
	}

	logger.Infof("rendering %s at %dx%d, %d spp over %d passes", req.Scene, req.Width, req.Height, req.MaxSamples, req.MaxPasses)
	startTime := time.Now()
	passChan, errChan := progressive.RenderProgressive(ctx)

	for result := range passChan {
		update, err := newProgressUpdate(result, startTime)
		if err != nil {
			sendError(conn, fmt.Sprintf("failed to encode image: %v", err))
			cancel()
			break
		}
		if err := send(conn, update); err != nil {
			logger.Infof("client gone during pass %d: %v", result.PassNumber, err)
			cancel()
			break
		}
	}

	// Drain so the renderer goroutine can exit
	for range passChan {
	}
	if err := <-errChan; err != nil {
		if ctx.Err() == nil {
			sendError(conn, fmt.Sprintf("Render error: %v", err))
		}
		logger.Infof("render of %s stopped: %v", req.Scene, err)
		return
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "complete"),
		time.Now().Add(writeTimeout))
}

// setupRender creates the scene and its progressive raytracer
func (s *Server) setupRender(req *RenderRequest) (*renderer.ProgressiveRaytracer, error) {
	sc, err := scene.New(req.Scene, scene.Options{Seed: req.Seed, TextureDir: s.opts.TextureDir})
	if err != nil {
		return nil, err
	}

	sampling := sc.SamplingConfig
	sampling.Width = req.Width
	sampling.Height = req.Height
	sampling.SamplesPerPixel = req.MaxSamples
	sampling.Seed = req.Seed

	rt, err := sc.NewRaytracer(sampling)
	if err != nil {
		return nil, err
	}

	config := renderer.DefaultProgressiveConfig()
	config.MaxSamplesPerPixel = req.MaxSamples
	config.MaxPasses = req.MaxPasses
	config.NumWorkers = s.opts.NumWorkers
	return renderer.NewProgressiveRaytracer(rt, config)
}

// parseRenderRequest parses request parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "cornell-box" // Default scene
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 400, 1, 2000); err != nil {
		return nil, err
	}
	if req.MaxSamples, err = parseIntParam(query, "maxSamples", 50, 1, 10000); err != nil {
		return nil, err
	}
	if req.MaxPasses, err = parseIntParam(query, "maxPasses", 7, 1, 10000); err != nil {
		return nil, err
	}
	if seed := query.Get("seed"); seed != "" {
		if req.Seed, err = strconv.ParseInt(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid seed: %q", seed)
		}
	} else {
		req.Seed = renderer.DefaultSamplingConfig().Seed
	}

	if req.Width*req.Height > 800*600 && req.MaxSamples > 100 {
		logger.Warning("large image with high samples may render slowly")
	}
	return req, nil
}

func newProgressUpdate(result renderer.PassResult, startTime time.Time) (ProgressUpdate, error) {
	imageData, err := imageToBase64PNG(result.Image)
	if err != nil {
		return ProgressUpdate{}, err
	}

	return ProgressUpdate{
		PassNumber:  result.PassNumber,
		TotalPasses: result.TotalPasses,
		ImageData:   imageData,
		Stats: Stats{
			TotalPixels:    result.Stats.TotalPixels,
			TotalSamples:   int64(result.Stats.TotalSamples),
			AverageSamples: result.Stats.AverageSamples,
			MaxSamples:     result.Stats.MaxSamples,
			MinSamples:     result.Stats.MinSamples,
			MaxSamplesUsed: result.Stats.MaxSamplesUsed,
		},
		IsComplete: result.IsLast,
		ElapsedMs:  time.Since(startTime).Milliseconds(),
	}, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func send(conn *websocket.Conn, v interface{}) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(v)
}

func sendError(conn *websocket.Conn, message string) {
	if err := send(conn, ErrorMessage{Error: message}); err != nil {
		logger.Debugf("could not deliver error %q: %v", message, err)
	}
}
