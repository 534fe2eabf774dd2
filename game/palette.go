package game

import (
	"image/color"

	"voidvanguard/sim"
)

// VariantStyle holds how a hostile variant is drawn
type VariantStyle struct {
	Body      color.RGBA
	Blast     color.RGBA // Explosion color at progress 0
	BlastTo   color.RGBA // Explosion color at progress 1
	HealthBar bool
	// Grunts fade from cyan toward blue as they take damage
	ShadeByHealth bool
}

var (
	// VariantStyles holds the style of each hostile variant
	VariantStyles = map[sim.Variant]VariantStyle{
		sim.Grunt: {
			Body:          color.RGBA{0, 255, 255, 255},
			Blast:         color.RGBA{255, 0, 0, 255},
			BlastTo:       color.RGBA{255, 255, 0, 255},
			HealthBar:     true,
			ShadeByHealth: true,
		},
		sim.Elite: {
			Body:      color.RGBA{128, 0, 128, 255},
			Blast:     color.RGBA{128, 0, 128, 255},
			BlastTo:   color.RGBA{128, 255, 128, 255},
			HealthBar: true,
		},
		sim.Boss: {
			Body:      color.RGBA{255, 128, 0, 255},
			Blast:     color.RGBA{255, 0, 0, 255},
			BlastTo:   color.RGBA{255, 128, 0, 255},
			HealthBar: true,
		},
		sim.Minion: {
			Body:    color.RGBA{255, 165, 0, 255},
			Blast:   color.RGBA{255, 0, 0, 255},
			BlastTo: color.RGBA{255, 255, 0, 255},
		},
	}

	playerColor      = color.RGBA{255, 0, 0, 255}
	playerShotColor  = color.RGBA{255, 255, 0, 255}
	hostileShotColor = color.RGBA{255, 0, 0, 255}
	healthBackColor  = color.RGBA{255, 0, 0, 255}
	healthFillColor  = color.RGBA{0, 255, 0, 255}
	sparkColor       = color.RGBA{255, 255, 0, 255}
	textColor        = color.RGBA{255, 255, 255, 255}
	dimTextColor     = color.RGBA{110, 110, 110, 255}
	selectedColor    = color.RGBA{255, 220, 0, 255}
)

// GetVariantStyle returns the style for a variant
func GetVariantStyle(v sim.Variant) VariantStyle {
	if style, ok := VariantStyles[v]; ok {
		return style
	}
	// Fallback
	return VariantStyle{
		Body:    color.RGBA{255, 255, 255, 255},
		Blast:   color.RGBA{255, 0, 0, 255},
		BlastTo: color.RGBA{255, 255, 0, 255},
	}
}

// BodyColor returns the fill color of an Active entity at a health ratio
func (s VariantStyle) BodyColor(health float64) color.RGBA {
	if !s.ShadeByHealth {
		return s.Body
	}
	c := s.Body
	c.G = uint8(float64(c.G) * clamp01(health))
	return c
}

// BlastColor returns the explosion color at a progress in [0, 1]
func (s VariantStyle) BlastColor(progress float64) color.RGBA {
	p := clamp01(progress)
	return color.RGBA{
		R: lerp8(s.Blast.R, s.BlastTo.R, p),
		G: lerp8(s.Blast.G, s.BlastTo.G, p),
		B: lerp8(s.Blast.B, s.BlastTo.B, p),
		A: 255,
	}
}

// backdropTiers maps a minimum score to the blue level of the background
var backdropTiers = []struct {
	score int
	blue  uint8
}{
	{10000, 200},
	{8000, 150},
	{6000, 100},
	{4000, 50},
	{2000, 25},
}

// Backdrop returns the background color for a score: black, turning bluer every 2000 points
func Backdrop(score int) color.RGBA {
	for _, tier := range backdropTiers {
		if score >= tier.score {
			return color.RGBA{0, 0, tier.blue, 255}
		}
	}
	return color.RGBA{0, 0, 0, 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
