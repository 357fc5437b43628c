package parameter

// Camera follow and zoom configuration
const (
	// DefaultZoom is the starting zoom of the active camera
	// Camera render scale is 1/zoom, projected entities scale by zoom
	DefaultZoom = 4.0

	// MinZoom bounds zoom from below so the camera scale never reaches zero or flips sign
	MinZoom = 0.25

	// MaxZoom bounds zoom from above so 1/zoom stays representable for renderers
	MaxZoom = 16.0

	// CameraHoverOffset is the z distance the camera keeps above a tracked entity
	CameraHoverOffset = 10.0

	// CameraStartZ is the initial height of the camera entity
	CameraStartZ = 10.0
)
