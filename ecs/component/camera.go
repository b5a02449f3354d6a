package component

type Camera struct {
	TargetName string
	// Zoom is the zoom used this frame; BaseZoom is where it settles back to.
	Zoom       float64
	BaseZoom   float64
	ZoomDecay  float64
	Smoothness float64
	// ScaleInfluence makes the camera pull back as the target's altitude
	// scale grows.
	ScaleInfluence float64

	ShakeFrames    int
	ShakeIntensity float64
	// ShakeX and ShakeY are this frame's screen offset.
	ShakeX, ShakeY float64
}

var CameraComponent = NewComponent[Camera]()
