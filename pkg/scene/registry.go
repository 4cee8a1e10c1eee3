package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned when a scene id is not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a registered scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

// Options are the inputs every scene constructor accepts
type Options struct {
	Seed       int64  // Seed for randomly placed content
	TextureDir string // Directory searched for image textures
}

type entry struct {
	info  SceneInfo
	build func(Options) *Scene
}

var registry = map[string]entry{}

func register(info SceneInfo, build func(Options) *Scene) {
	registry[info.ID] = entry{info: info, build: build}
}

func init() {
	register(SceneInfo{"two-spheres", "Two Spheres", "A diffuse sphere resting on a huge ground sphere under a sky gradient"}, NewTwoSpheresScene)
	register(SceneInfo{"random-spheres", "Random Spheres", "Grid of small random spheres, some moving, on a checker ground"}, NewRandomSpheresScene)
	register(SceneInfo{"perlin-spheres", "Perlin Spheres", "Two marble-textured spheres"}, NewPerlinSpheresScene)
	register(SceneInfo{"simple-light", "Simple Light", "Marble spheres lit only by a sphere and a rectangle light"}, NewSimpleLightScene)
	register(SceneInfo{"cornell-box", "Cornell Box", "Classic Cornell box with two rotated boxes"}, NewCornellScene)
	register(SceneInfo{"earth", "Earth", "An image-textured globe"}, NewEarthScene)
}

// List returns all registered scenes sorted by id
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(registry))
	for _, e := range registry {
		infos = append(infos, e.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// New creates the scene registered under id
func New(id string, opts Options) (*Scene, error) {
	e, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	s := e.build(opts)
	logger.Debugf("created scene %s with %d surfaces", id, len(s.Surfaces))
	return s, nil
}
