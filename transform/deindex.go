// Package transform provides the buffer-set transforms that run between
// generation and upload: deindexing, flat-normal computation, rigid
// reorientation and vertex colouring. Deindex and RandomColors build new
// buffers; FlattenNormals and Reorient mutate in place.
package transform

import (
	"fmt"

	"github.com/spaghettifunk/tessera/buffer"
	"github.com/spaghettifunk/tessera/core"
)

// Deindex expands an indexed buffer set into an equivalent set where
// every triangle owns independent vertices: for each index value, the
// referenced element of every non-index attribute is copied into the
// next output slot, in index order. The returned set has no indices
// entry; the input set is left untouched.
func Deindex(s buffer.Set) (buffer.Set, error) {
	indices, ok := s.Indices()
	if !ok {
		err := fmt.Errorf("deindex: %w", core.ErrNoIndices)
		core.LogError(err.Error())
		return nil, err
	}
	idx := indices.Data()
	out := make(buffer.Set, len(s)-1)
	for name, attr := range s {
		if name == buffer.AttrIndices {
			continue
		}
		out[name] = attr.Gather(idx)
	}
	return out, nil
}
