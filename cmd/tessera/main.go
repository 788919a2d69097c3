/*
Inspection tool for shape catalogs: generates every shape in a catalog
file and reports vertex/triangle counts, optionally watching the file
and regenerating on change.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/spaghettifunk/tessera/catalog"
	"github.com/spaghettifunk/tessera/core"
)

func main() {
	path := flag.String("catalog", "shapes.toml", "path to the shape catalog file")
	watch := flag.Bool("watch", false, "keep running and regenerate when the catalog changes")
	flag.Parse()

	core.SetLevel(log.InfoLevel)

	c, err := catalog.Load(*path)
	if err != nil {
		core.LogFatal(err.Error())
	}
	report(c)

	if !*watch {
		return
	}

	watcher, err := catalog.NewWatcher(c, *path, report)
	if err != nil {
		core.LogFatal(err.Error())
	}
	if err := watcher.Start(); err != nil {
		core.LogFatal(err.Error())
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	<-sigCh
	watcher.Close()
}

func report(c *catalog.Catalog) {
	geometries, err := c.GenerateAll()
	if err != nil {
		core.LogError(err.Error())
		return
	}
	for _, g := range geometries {
		if err := g.Buffers.Validate(); err != nil {
			core.LogError("%s: %s", g.Name, err.Error())
			continue
		}
		core.LogInfo("%s (%s): %d vertices, %d triangles, id %s",
			g.Name, g.Kind, g.VertexCount, g.TriangleCount, g.ID)
	}
}
