package rastervec

// Connectivity selects how region pixels are considered connected.
type Connectivity int

const (
	// Conn4 connects pixels through edges only.
	Conn4 Connectivity = iota
	// Conn8 also connects pixels through corners.
	Conn8
)

// ClassifyOptions configures ClassifyRegions.
type ClassifyOptions struct {
	// Connectivity for component labeling. Conn4 keeps diagonally-touching
	// regions separate, which matches most classification workflows.
	Connectivity Connectivity

	// MinPixels drops components smaller than this many pixels.
	MinPixels int

	// Transform georeferences the image. Zero value means identity.
	Transform GeoTransform
}

// DefaultClassifyOptions returns defaults: 4-connectivity, 4-pixel minimum,
// identity transform.
func DefaultClassifyOptions() ClassifyOptions {
	return ClassifyOptions{
		Connectivity: Conn4,
		MinPixels:    4,
		Transform:    IdentityTransform(),
	}
}

// TraceOptions configures TraceCenterlines.
type TraceOptions struct {
	// Thin controls whether the mask is skeletonized before tracing.
	// Disable only when the input is already one pixel wide.
	Thin bool

	// MergeTolerance joins traced arcs whose world-space endpoints fall
	// within this distance. Zero disables merging.
	MergeTolerance float64

	// MinPoints drops traced paths shorter than this many pixels.
	MinPoints int
}

// DefaultTraceOptions returns defaults: thinning on, no merging, 2-point
// minimum.
func DefaultTraceOptions() TraceOptions {
	return TraceOptions{
		Thin:      true,
		MinPoints: 2,
	}
}
