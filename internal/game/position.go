package game

import "math"

// Position is a point on the 2D map.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the euclidean distance between two positions.
func (p Position) Distance(o Position) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}
