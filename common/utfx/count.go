package utfx

type Stats struct {
	Units   int
	Valid   int
	Invalid int
}

// Count tallies the valid sequences of p, skipping a single unit past
// each invalid position.
func Count[T Unit](p []T) Stats {
	stats := Stats{Units: len(p)}
	for len(p) > 0 {
		n := Len(p, true)
		if n == 0 {
			stats.Invalid++
			p = p[1:]
			continue
		}
		stats.Valid++
		p = p[n:]
	}
	return stats
}
