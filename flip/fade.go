package flip

// Page opacity and scale over a flip, p is progress in [0,1]
const (
	FullAlpha     = 255.0
	OutgoingScale = 0.9
)

// Alpha maps progress to page opacity: outgoing 255→0, incoming 0→255
func Alpha(p float64, outgoing bool) float64 {
	p = clampUnit(p)
	if outgoing {
		return FullAlpha * (1 - p)
	}
	return FullAlpha * p
}

// Scale maps progress to page scale: outgoing 1.0→0.9, incoming stays 1.0
func Scale(p float64, outgoing bool) float64 {
	if !outgoing {
		return 1
	}
	return 1 - (1-OutgoingScale)*clampUnit(p)
}

func clampUnit(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
