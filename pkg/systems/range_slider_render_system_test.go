package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/rangeslider/pkg/components"
	"github.com/stretchr/testify/assert"
)

func TestThumbFillColor(t *testing.T) {
	style := components.RangeSliderStyle{
		ThumbColor:          color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ThumbHighlightColor: color.RGBA{R: 128, G: 128, B: 128, A: 255},
	}

	assert.Equal(t, style.ThumbColor, ThumbFillColor(style, false))
	assert.Equal(t, style.ThumbHighlightColor, ThumbFillColor(style, true))
}
