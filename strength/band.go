package strength

import "math"

type Band string

const (
	BandWeak     Band = "weak"
	BandModerate Band = "moderate"
	BandStrong   Band = "strong"
)

// BandFor maps a score to the status shown next to the gauge.
func BandFor(score int) Band {
	switch {
	case score >= MaxScore:
		return BandStrong
	case score >= 3:
		return BandModerate
	default:
		return BandWeak
	}
}

type Color string

const (
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
)

// ColorFor picks the gauge step containing score: red [0,2), orange [2,4), green [4,5].
func ColorFor(score int) Color {
	switch {
	case score < 2:
		return ColorRed
	case score < 4:
		return ColorOrange
	default:
		return ColorGreen
	}
}

// NeedleColor is the colour of the gauge indicator, which differs from the
// step underneath it.
func NeedleColor(score int) Color {
	switch {
	case score >= 4:
		return ColorBlue
	case score == 3:
		return ColorOrange
	default:
		return ColorRed
	}
}

type GaugeStep struct {
	From, To int
	Color    Color
}

var GaugeSteps = []GaugeStep{
	{0, 2, ColorRed},
	{2, 4, ColorOrange},
	{4, MaxScore, ColorGreen},
}

// Gauge is the geometry of a half-circle meter spanning 0..MaxScore.
type Gauge struct {
	Score    int
	Fraction float64
	Color    Color
	Needle   Color
	Band     Band
}

func NewGauge(score int) Gauge {
	clamped := int(math.Max(0, math.Min(float64(score), MaxScore)))
	return Gauge{
		Score:    clamped,
		Fraction: float64(clamped) / MaxScore,
		Color:    ColorFor(clamped),
		Needle:   NeedleColor(clamped),
		Band:     BandFor(clamped),
	}
}

// Point returns the coordinates on a half circle of radius r centred at (cx, cy)
// for fraction f of the range, sweeping left to right.
func Point(cx, cy, r, f float64) (float64, float64) {
	angle := math.Pi * (1 - f)
	return cx + r*math.Cos(angle), cy - r*math.Sin(angle)
}
