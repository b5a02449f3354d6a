package component

// CameraShakeRequest asks the camera system for a short shake and an optional
// zoom pulse. Intensity is in world units at zoom 1; ZoomPulse is added to
// the camera zoom and decays back to its base.
type CameraShakeRequest struct {
	Frames    int
	Intensity float64
	ZoomPulse float64
}

var CameraShakeRequestComponent = NewComponent[CameraShakeRequest]()
