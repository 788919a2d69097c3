package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/tessera/core"
)

const testCatalog = `
[[shape]]
name = "ground"
kind = "plane"
width = 10.0
depth = 10.0
subdivisions_width = 4
subdivisions_depth = 4

[[shape]]
name = "ball"
kind = "sphere"
radius = 2.0
subdivisions_axis = 12
subdivisions_height = 6

[[shape]]
name = "letter"
kind = "f"
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shapes.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndNames(t *testing.T) {
	c, err := Load(writeCatalog(t, testCatalog))
	require.NoError(t, err)
	assert.Equal(t, []string{"ball", "ground", "letter"}, c.Names())
}

func TestGenerate(t *testing.T) {
	c, err := Load(writeCatalog(t, testCatalog))
	require.NoError(t, err)

	g, err := c.Generate("ground")
	require.NoError(t, err)
	assert.Equal(t, "ground", g.Name)
	assert.Equal(t, KindPlane, g.Kind)
	assert.Equal(t, uint32(25), g.VertexCount)
	assert.Equal(t, uint32(32), g.TriangleCount)
	require.NoError(t, g.Buffers.Validate())

	// every generation gets its own identity
	g2, err := c.Generate("ground")
	require.NoError(t, err)
	assert.NotEqual(t, g.ID, g2.ID)
}

func TestGenerateUnknownShape(t *testing.T) {
	c, err := Load(writeCatalog(t, testCatalog))
	require.NoError(t, err)
	_, err = c.Generate("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidParameter))
}

func TestGenerateAll(t *testing.T) {
	c, err := Load(writeCatalog(t, testCatalog))
	require.NoError(t, err)
	geometries, err := c.GenerateAll()
	require.NoError(t, err)
	require.Len(t, geometries, 3)
	for _, g := range geometries {
		assert.NoError(t, g.Buffers.Validate(), g.Name)
	}
}

func TestUnknownKindFailsGeneration(t *testing.T) {
	c, err := Load(writeCatalog(t, `
[[shape]]
name = "mystery"
kind = "dodecahedron"
`))
	require.NoError(t, err)
	_, err = c.Generate("mystery")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidParameter))
}

func TestShapesWithoutNameAreSkipped(t *testing.T) {
	c, err := Load(writeCatalog(t, `
[[shape]]
kind = "cube"
size = 1.0
`))
	require.NoError(t, err)
	assert.Empty(t, c.Names())
}

func TestReloadSwapsDefinitions(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	c, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`
[[shape]]
name = "box"
kind = "cube"
size = 2.0
`), 0o644))
	require.NoError(t, c.Reload(path))
	assert.Equal(t, []string{"box"}, c.Names())
}

func TestReloadKeepsDefinitionsOnError(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	c, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))
	require.Error(t, c.Reload(path))
	assert.Equal(t, []string{"ball", "ground", "letter"}, c.Names())
}

func TestWatcherCloseWithoutStart(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	c, err := Load(path)
	require.NoError(t, err)

	w, err := NewWatcher(c, path, nil)
	require.NoError(t, err)

	// closing before Start must release the fsnotify handle itself,
	// since no goroutine is around to do it
	w.Close()
	w.Close()
	require.Error(t, w.Start())

	// the underlying watcher is gone, adding a path must fail
	assert.Error(t, w.fsnotify.Add(filepath.Dir(path)))
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	c, err := Load(path)
	require.NoError(t, err)

	reloaded := make(chan struct{}, 1)
	w, err := NewWatcher(c, path, func(*Catalog) {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte(`
[[shape]]
name = "donut"
kind = "torus"
`), 0o644))

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload the catalog")
	}
	assert.Equal(t, []string{"donut"}, c.Names())
}
