package domain

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorScale_Clamping(t *testing.T) {
	scale := NewColorScale(0, 40)

	t.Run("out-of-range high clamps to the hot endpoint", func(t *testing.T) {
		assert.Equal(t, scale.At(40), scale.At(50))
		assert.Equal(t, gradientStops[len(gradientStops)-1], scale.At(50))
	})

	t.Run("out-of-range low clamps to the cold endpoint", func(t *testing.T) {
		assert.Equal(t, scale.At(0), scale.At(-10))
		assert.Equal(t, gradientStops[0], scale.At(-10))
	})
}

func TestColorScale_Interpolation(t *testing.T) {
	scale := NewColorScale(0, 40)

	t.Run("midpoint hits the middle stop", func(t *testing.T) {
		assert.Equal(t, gradientStops[2], scale.At(20))
	})

	t.Run("in-range values stay between adjacent stops", func(t *testing.T) {
		// 25 °C sits between the pale yellow and orange stops.
		c := scale.At(25)
		assert.NotEqual(t, gradientStops[2], c)
		assert.NotEqual(t, gradientStops[3], c)
		assert.Equal(t, uint8(0xff), c.A)
	})

	t.Run("interpolation is monotone toward the next stop", func(t *testing.T) {
		// Between deep blue and light blue the red channel rises.
		a := scale.At(2)
		b := scale.At(8)
		assert.Less(t, a.R, b.R)
	})
}

func TestColorScale_DegenerateDomain(t *testing.T) {
	scale := NewColorScale(20, 20)

	assert.Equal(t, gradientStops[len(gradientStops)-1], scale.At(20))
	assert.Equal(t, gradientStops[len(gradientStops)-1], scale.At(25))
	assert.Equal(t, gradientStops[0], scale.At(15))
}

func TestColorScale_Domain(t *testing.T) {
	scale := NewColorScale(-5, 35)
	assert.Equal(t, -5.0, scale.Min())
	assert.Equal(t, 35.0, scale.Max())

	var _ color.Color = scale.At(10)
}
