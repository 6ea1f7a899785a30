package domain

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// RandomSource yields uniformly distributed floats in [0,1).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

const (
	yellowBandStart = 30.0
	yellowBandWidth = 60.0
	// minHueDistance keeps a generated accent visibly different from the color it replaces.
	minHueDistance = 30.0
	maxHueRerolls  = 8
)

// RandomAccentColor picks a random accent that avoids the yellow hue band.
// Dark themes get saturated dark accents, light themes muted mid-tones.
// A nil source falls back to the global generator.
func RandomAccentColor(base Color, isDarkTheme bool, src RandomSource) Color {
	if src == nil {
		src = globalSource{}
	}

	baseHue, baseSat, _ := base.colorful().Hsl()
	hue := randomHue(src)
	for i := 0; i < maxHueRerolls && baseSat > 0.1 && hueDistance(hue, baseHue) < minHueDistance; i++ {
		hue = randomHue(src)
	}

	var sat, light float64
	if isDarkTheme {
		sat = 0.80 + src.Float64()*0.20
		light = 0.15 + src.Float64()*0.15
	} else {
		sat = 0.40 + src.Float64()*0.20
		light = 0.50 + src.Float64()*0.20
	}

	return fromColorful(colorful.Hsl(hue, sat, light), 1)
}

// randomHue is uniform over [0,360) minus the yellow band [30,90).
func randomHue(src RandomSource) float64 {
	h := src.Float64() * (360 - yellowBandWidth)
	if h >= yellowBandStart {
		h += yellowBandWidth
	}
	return h
}

func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}
