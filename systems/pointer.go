package systems

import "gonum.org/v1/gonum/spatial/r2"

// IsUnderPointer reports whether pointer lies strictly within radius of pos.
func IsUnderPointer(pos, pointer r2.Vec, radius float64) bool {
	return r2.Norm(r2.Sub(pos, pointer)) < radius
}
