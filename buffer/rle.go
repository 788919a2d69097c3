package buffer

// ExpandRLE decodes a run-length encoded attribute stream. The input is
// a sequence of (runLength, v0, v1, v2) tuples; each tuple emits
// (v0, v1, v2, padding...) runLength times, in input order. The result
// is a flat sequence ready for PushSlice.
//
// Used by the hand-authored mesh tables, where normals and colours
// repeat for many vertices in a row.
func ExpandRLE[T Scalar](encoded []T, padding ...T) []T {
	total := 0
	for i := 0; i+3 < len(encoded); i += 4 {
		total += int(encoded[i]) * (3 + len(padding))
	}
	out := make([]T, 0, total)
	for i := 0; i+3 < len(encoded); i += 4 {
		run := int(encoded[i])
		for j := 0; j < run; j++ {
			out = append(out, encoded[i+1], encoded[i+2], encoded[i+3])
			out = append(out, padding...)
		}
	}
	return out
}
