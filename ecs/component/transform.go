package component

// Transform is a world position. For physics-backed entities it is copied
// from the body after each step and never written by gameplay code.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}
