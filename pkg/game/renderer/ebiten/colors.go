//go:build ebiten

package ebiten

import "image/color"

var (
	colorBackground = color.RGBA{R: 8, G: 10, B: 14, A: 255}
	colorPanel      = color.RGBA{R: 18, G: 22, B: 28, A: 255}
	colorBorder     = color.RGBA{R: 70, G: 110, B: 70, A: 255}
	colorButton     = color.RGBA{R: 30, G: 36, B: 44, A: 255}
	colorButtonLit  = color.RGBA{R: 60, G: 120, B: 60, A: 255}
	colorLabel      = color.RGBA{R: 200, G: 210, B: 200, A: 255}
	colorCursor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
