package transform

import (
	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/tessera/buffer"
)

// ColorOptions controls RandomColors.
type ColorOptions struct {
	// VertsPerColor is the number of consecutive vertices sharing one
	// colour when the set is unindexed. Defaults to 3, one colour per
	// triangle.
	VertsPerColor int
	// Sample returns the value of the given channel (0=R 1=G 2=B 3=A)
	// for the given vertex or group index, in [0,255]. Defaults to
	// uniform random RGB with alpha 255.
	Sample func(index, channel int) uint8
}

func defaultSample(_, channel int) uint8 {
	if channel < 3 {
		return uint8(rand.Intn(256))
	}
	return 255
}

// RandomColors adds (or overwrites) a 4-component uint8 colour buffer
// on the set. Indexed sets get one independently sampled colour per
// vertex element; unindexed sets get one colour per group of
// VertsPerColor vertices, shared by the whole group.
func RandomColors(s buffer.Set, opts *ColorOptions) buffer.Set {
	vertsPerColor := 3
	sample := defaultSample
	if opts != nil {
		if opts.VertsPerColor > 0 {
			vertsPerColor = opts.VertsPerColor
		}
		if opts.Sample != nil {
			sample = opts.Sample
		}
	}

	numElements := s.NumElements()
	colors := buffer.New[uint8](4, numElements, buffer.RoleOpaque)
	data := make([]uint8, 4*numElements)
	_, indexed := s.Indices()
	if indexed {
		for v := 0; v < numElements; v++ {
			for c := 0; c < 4; c++ {
				data[v*4+c] = sample(v, c)
			}
		}
	} else {
		// one colour per group, sampled once and replicated so every
		// vertex of the group shares it
		var color [4]uint8
		for v := 0; v < numElements; v++ {
			if v%vertsPerColor == 0 {
				group := v / vertsPerColor
				for c := 0; c < 4; c++ {
					color[c] = sample(group, c)
				}
			}
			copy(data[v*4:], color[:])
		}
	}
	if err := colors.PushSlice(data); err != nil {
		return s
	}
	s[buffer.AttrColor] = colors
	return s
}
