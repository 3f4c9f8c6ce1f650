package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sizer is implemented by anything that can report its grid dimensions.
type Sizer interface {
	Size() Size
}
