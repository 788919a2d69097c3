// Package catalog loads named shape definitions from a TOML file and
// turns them into generated geometry. It is the configuration surface
// of the library: the generators themselves only ever see positional
// parameters.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/tessera/buffer"
	"github.com/spaghettifunk/tessera/core"
	"github.com/spaghettifunk/tessera/primitive"
)

// Recognized shape kinds.
const (
	KindPlane         = "plane"
	KindSphere        = "sphere"
	KindCube          = "cube"
	KindCylinder      = "cylinder"
	KindTruncatedCone = "truncated_cone"
	KindTorus         = "torus"
	KindDisc          = "disc"
	KindXYQuad        = "xy_quad"
	KindFMesh         = "f"
)

// ShapeConfig is one [[shape]] entry of a catalog file. Only the fields
// relevant to the entry's kind are read; zero dimensions default to the
// generator's conventions with a warning.
type ShapeConfig struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"`

	Width        float32 `toml:"width"`
	Depth        float32 `toml:"depth"`
	Height       float32 `toml:"height"`
	Size         float32 `toml:"size"`
	Radius       float32 `toml:"radius"`
	InnerRadius  float32 `toml:"inner_radius"`
	TopRadius    float32 `toml:"top_radius"`
	BottomRadius float32 `toml:"bottom_radius"`
	Thickness    float32 `toml:"thickness"`
	XOffset      float32 `toml:"x_offset"`
	YOffset      float32 `toml:"y_offset"`
	StackPower   float32 `toml:"stack_power"`

	SubdivisionsWidth    int `toml:"subdivisions_width"`
	SubdivisionsDepth    int `toml:"subdivisions_depth"`
	SubdivisionsAxis     int `toml:"subdivisions_axis"`
	SubdivisionsHeight   int `toml:"subdivisions_height"`
	RadialSubdivisions   int `toml:"radial_subdivisions"`
	VerticalSubdivisions int `toml:"vertical_subdivisions"`
	BodySubdivisions     int `toml:"body_subdivisions"`
	Divisions            int `toml:"divisions"`
	Stacks               int `toml:"stacks"`

	// caps are on unless disabled, so the TOML zero value keeps the
	// default behaviour
	NoTopCap    bool `toml:"no_top_cap"`
	NoBottomCap bool `toml:"no_bottom_cap"`
}

type catalogFile struct {
	Shapes []ShapeConfig `toml:"shape"`
}

// Geometry is one generated catalog entry, stamped with a unique
// identifier for downstream registries.
type Geometry struct {
	ID            uuid.UUID
	Name          string
	Kind          string
	VertexCount   uint32
	TriangleCount uint32
	Buffers       buffer.Set
}

// Catalog holds the shape definitions of one catalog file. Safe for
// concurrent readers; Reload swaps the definitions atomically.
type Catalog struct {
	mutex  sync.RWMutex
	shapes map[string]ShapeConfig
}

// Load reads and decodes a catalog file.
func Load(path string) (*Catalog, error) {
	c := &Catalog{
		shapes: make(map[string]ShapeConfig),
	}
	if err := c.Reload(path); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the catalog file and replaces the current definitions
// in one swap. On failure the previous definitions are kept.
func (c *Catalog) Reload(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("decode catalog %s: %w", path, err)
	}

	shapes := make(map[string]ShapeConfig, len(file.Shapes))
	for _, s := range file.Shapes {
		if s.Name == "" {
			core.LogWarn("catalog %s: skipping %s shape without a name", path, s.Kind)
			continue
		}
		if _, exists := shapes[s.Name]; exists {
			core.LogWarn("catalog %s: duplicate shape %q, keeping the last one", path, s.Name)
		}
		shapes[s.Name] = s
	}

	c.mutex.Lock()
	c.shapes = shapes
	c.mutex.Unlock()
	return nil
}

// Names returns the defined shape names in sorted order.
func (c *Catalog) Names() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	names := make([]string, 0, len(c.shapes))
	for name := range c.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate builds the named shape and stamps it with a fresh ID.
func (c *Catalog) Generate(name string) (*Geometry, error) {
	c.mutex.RLock()
	cfg, ok := c.shapes[name]
	c.mutex.RUnlock()
	if !ok {
		err := fmt.Errorf("catalog has no shape %q: %w", name, core.ErrInvalidParameter)
		core.LogError(err.Error())
		return nil, err
	}

	set, err := generate(cfg)
	if err != nil {
		return nil, err
	}
	return &Geometry{
		ID:            uuid.New(),
		Name:          cfg.Name,
		Kind:          cfg.Kind,
		VertexCount:   uint32(set.NumElements()),
		TriangleCount: uint32(set.NumTriangles()),
		Buffers:       set,
	}, nil
}

// GenerateAll builds every defined shape, failing on the first invalid
// entry.
func (c *Catalog) GenerateAll() ([]*Geometry, error) {
	names := c.Names()
	geometries := make([]*Geometry, 0, len(names))
	for _, name := range names {
		g, err := c.Generate(name)
		if err != nil {
			return nil, err
		}
		geometries = append(geometries, g)
	}
	return geometries, nil
}

func generate(cfg ShapeConfig) (buffer.Set, error) {
	switch cfg.Kind {
	case KindPlane:
		return primitive.Plane(cfg.Width, cfg.Depth, cfg.SubdivisionsWidth, cfg.SubdivisionsDepth, mgl32.Ident4())
	case KindSphere:
		return primitive.Sphere(defaultF32(cfg.Radius, 1), defaultInt(cfg.SubdivisionsAxis, 12), defaultInt(cfg.SubdivisionsHeight, 6))
	case KindCube:
		return primitive.Cube(defaultF32(cfg.Size, 1))
	case KindCylinder:
		return primitive.Cylinder(defaultF32(cfg.Radius, 1), defaultF32(cfg.Height, 1),
			defaultInt(cfg.RadialSubdivisions, 12), defaultInt(cfg.VerticalSubdivisions, 1),
			!cfg.NoTopCap, !cfg.NoBottomCap)
	case KindTruncatedCone:
		return primitive.TruncatedCone(cfg.BottomRadius, cfg.TopRadius, defaultF32(cfg.Height, 1),
			defaultInt(cfg.RadialSubdivisions, 12), defaultInt(cfg.VerticalSubdivisions, 1),
			!cfg.NoTopCap, !cfg.NoBottomCap)
	case KindTorus:
		return primitive.Torus(defaultF32(cfg.Radius, 1), defaultF32(cfg.Thickness, 0.25),
			defaultInt(cfg.RadialSubdivisions, 24), defaultInt(cfg.BodySubdivisions, 12))
	case KindDisc:
		return primitive.DiscSector(defaultF32(cfg.Radius, 1), defaultInt(cfg.Divisions, 12),
			defaultInt(cfg.Stacks, 1), cfg.InnerRadius, defaultF32(cfg.StackPower, 1))
	case KindXYQuad:
		return primitive.XYQuad(defaultF32(cfg.Size, 2), cfg.XOffset, cfg.YOffset)
	case KindFMesh:
		return primitive.FMesh()
	default:
		err := fmt.Errorf("unknown shape kind %q for %q: %w", cfg.Kind, cfg.Name, core.ErrInvalidParameter)
		core.LogError(err.Error())
		return nil, err
	}
}

func defaultF32(v, def float32) float32 {
	if v == 0 {
		return def
	}
	return v
}

func defaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
