package component

// CameraComponent mirrors the camera controller's zoom for projection readers
type CameraComponent struct {
	Zoom float32
}
