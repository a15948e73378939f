package pathbar

const (
	// RevealerDuration is the default revealer transition time, in ms.
	RevealerDuration = 2000
	// InvertSpeed is the default invert scrolling speed, in px/ms.
	InvertSpeed = 1.2
	// InvertMaxTime caps the invert animation, in ms.
	InvertMaxTime = 750
)

// Options tunes the animations of a Container. The zero value is not useful;
// start from DefaultOptions.
type Options struct {
	RevealerDuration uint    // ms
	InvertSpeed      float64 // px/ms
	InvertMaxTime    float64 // ms
}

// DefaultOptions returns the stock animation timings.
func DefaultOptions() Options {
	return Options{
		RevealerDuration: RevealerDuration,
		InvertSpeed:      InvertSpeed,
		InvertMaxTime:    InvertMaxTime,
	}
}

// sanitize replaces degenerate values with defaults so that nothing down the
// line divides by zero.
func (o Options) sanitize() Options {
	if o.InvertSpeed <= 0 {
		o.InvertSpeed = InvertSpeed
	}
	if o.InvertMaxTime <= 0 {
		o.InvertMaxTime = InvertMaxTime
	}
	return o
}
