package domain

import "image/color"

// gradientStops define the cold-to-hot palette (a reversed RdYlBu sequential
// scheme): deep blue through pale yellow to dark red, interpolated linearly
// in RGB between adjacent stops.
var gradientStops = []color.RGBA{
	{R: 0x31, G: 0x36, B: 0x95, A: 0xff}, // deep blue
	{R: 0x74, G: 0xad, B: 0xd1, A: 0xff}, // light blue
	{R: 0xff, G: 0xff, B: 0xbf, A: 0xff}, // pale yellow
	{R: 0xf4, G: 0x6d, B: 0x43, A: 0xff}, // orange
	{R: 0xa5, G: 0x00, B: 0x26, A: 0xff}, // dark red
}

// ColorScale maps a temperature in [Min, Max] onto the fixed cold-to-hot
// gradient. It is a pure value: derived once from configuration, never
// mutated.
type ColorScale struct {
	min float64
	max float64
}

// NewColorScale builds a scale over the inclusive domain [min, max].
func NewColorScale(min, max float64) ColorScale {
	return ColorScale{min: min, max: max}
}

// Min returns the cold end of the domain.
func (s ColorScale) Min() float64 { return s.min }

// Max returns the hot end of the domain.
func (s ColorScale) Max() float64 { return s.max }

// At maps v to its gradient color. Values outside the domain clamp to the
// nearest endpoint color rather than extrapolating.
func (s ColorScale) At(v float64) color.RGBA {
	if s.max <= s.min {
		// Degenerate domain: split on the single boundary value.
		if v >= s.max {
			return gradientStops[len(gradientStops)-1]
		}
		return gradientStops[0]
	}

	t := (v - s.min) / (s.max - s.min)
	if t <= 0 {
		return gradientStops[0]
	}
	if t >= 1 {
		return gradientStops[len(gradientStops)-1]
	}

	// Locate the segment between adjacent stops and interpolate within it.
	scaled := t * float64(len(gradientStops)-1)
	i := int(scaled)
	frac := scaled - float64(i)

	return lerpRGBA(gradientStops[i], gradientStops[i+1], frac)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: 0xff,
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
