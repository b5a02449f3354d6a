package component

// Fade darkens the screen over Frames ticks.
type Fade struct {
	Frames int
	Total  int
}

// Alpha is the overlay opacity in [0, 1].
func (f Fade) Alpha() float64 {
	if f.Total <= 0 {
		return 0
	}
	return 1 - float64(f.Frames)/float64(f.Total)
}

var FadeComponent = NewComponent[Fade]()
