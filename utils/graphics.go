package utils

import (
	"fmt"
	"image/color"
	"time"
)

type ColorName uint8

const (
	White ColorName = iota
	Black
	DimGray
	Cornflower
	Aquamarine
	LightGreen
	PaleGold
	LightCoral
)

func GetColor(name ColorName) (c color.RGBA) {
	switch name {
	case White:
		c = color.RGBA{
			R: 255,
			G: 255,
			B: 255,
			A: 255,
		}
	case Black:
		c = color.RGBA{
			R: 0,
			G: 0,
			B: 0,
			A: 255,
		}
	case DimGray:
		c = color.RGBA{
			R: 105,
			G: 105,
			B: 105,
			A: 255,
		}
	case Cornflower:
		c = color.RGBA{
			R: 100,
			G: 149,
			B: 237,
			A: 255,
		}
	case Aquamarine:
		c = color.RGBA{
			R: 127,
			G: 255,
			B: 212,
			A: 255,
		}
	case LightGreen:
		c = color.RGBA{
			R: 144,
			G: 238,
			B: 144,
			A: 255,
		}
	case PaleGold:
		c = color.RGBA{
			R: 255,
			G: 218,
			B: 120,
			A: 255,
		}
	case LightCoral:
		c = color.RGBA{
			R: 240,
			G: 128,
			B: 128,
			A: 255,
		}
	}
	return
}

// GirderColors is the default per girder drawing order, matching the
// surface colorscale stops so the 2D and 3D views agree.
var GirderColors = []ColorName{Cornflower, Aquamarine, LightGreen, PaleGold, LightCoral}

// ParseRGB parses a display color in the "rgb(r, g, b)" form used by the
// girder table and the chart styling.
func ParseRGB(s string) (c color.RGBA, err error) {
	var r, g, b int
	if _, err = fmt.Sscanf(s, "rgb(%d, %d, %d)", &r, &g, &b); err != nil {
		return c, fmt.Errorf("unable to parse color %q: %s", s, err)
	}
	for _, v := range [3]int{r, g, b} {
		if v < 0 || v > 255 {
			return c, fmt.Errorf("color component out of range in %q", s)
		}
	}
	c = color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
	return
}

func SleepFor(milliseconds int) {
	time.Sleep(time.Duration(milliseconds) * time.Millisecond)
}
