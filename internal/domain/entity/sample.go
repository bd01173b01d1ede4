package entity

// Point is a world-coordinate sample position.
type Point struct {
	X, Y float64
}

// PointBatch groups escaped samples that share a palette slot.
// Point order inside a batch carries no meaning.
type PointBatch struct {
	PaletteIndex int
	Points       []Point
}
