package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sampler yields uniform values in [0, 1). *rand.Rand satisfies it.
type Sampler interface {
	Float64() float64
}

// scanLimit is the population below which clearance is checked by a
// plain scan instead of a grid.
const scanLimit = 32

// SamplePlacement draws uniform candidates in [0,width)x[0,height) until one
// is at least minSep from every existing point. maxAttempts bounds the loop;
// 0 means resample until a valid point is found. Returns the candidate, the
// number of draws, and whether it is valid.
func SamplePlacement(rng Sampler, width, height float64, existing []r2.Vec, minSep float64, maxAttempts int) (r2.Vec, int, bool) {
	var grid *PointGrid
	if minSep > 0 && len(existing) > scanLimit {
		// Cells sized to the mean spacing keep the cell count near len(existing)
		// whatever the radius.
		cell := max(minSep, math.Sqrt(width*height/float64(len(existing))))
		grid = NewPointGrid(width, height, cell)
		for _, p := range existing {
			grid.Insert(p)
		}
	}

	var candidate r2.Vec
	for attempts := 1; maxAttempts <= 0 || attempts <= maxAttempts; attempts++ {
		candidate = r2.Vec{X: rng.Float64() * width, Y: rng.Float64() * height}
		if isClear(candidate, existing, grid, minSep) {
			return candidate, attempts, true
		}
	}
	return candidate, maxAttempts, false
}

func isClear(p r2.Vec, existing []r2.Vec, grid *PointGrid, minSep float64) bool {
	switch {
	case minSep <= 0:
		return true
	case grid != nil:
		return !grid.AnyWithin(p, minSep)
	}
	sepSq := minSep * minSep
	for _, q := range existing {
		if r2.Norm2(r2.Sub(p, q)) < sepSq {
			return false
		}
	}
	return true
}
