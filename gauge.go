package main

import (
	"fmt"

	"github.com/cloud-gov/password-meter/strength"
)

const (
	gaugeCX     = 120.0
	gaugeCY     = 120.0
	gaugeRadius = 100.0
)

type gaugeArc struct {
	D     string
	Color string
}

type gaugeView struct {
	Title  string
	Score  int
	Max    int
	Steps  []gaugeArc
	Bar    string
	Needle string
}

func arcPath(from, to float64) string {
	x1, y1 := strength.Point(gaugeCX, gaugeCY, gaugeRadius, from)
	x2, y2 := strength.Point(gaugeCX, gaugeCY, gaugeRadius, to)
	return fmt.Sprintf("M %.2f %.2f A %.0f %.0f 0 0 1 %.2f %.2f", x1, y1, gaugeRadius, gaugeRadius, x2, y2)
}

func newGaugeView(title string, score int) gaugeView {
	g := strength.NewGauge(score)
	v := gaugeView{
		Title:  title,
		Score:  g.Score,
		Max:    strength.MaxScore,
		Needle: string(g.Needle),
	}
	for _, step := range strength.GaugeSteps {
		v.Steps = append(v.Steps, gaugeArc{
			D:     arcPath(float64(step.From)/strength.MaxScore, float64(step.To)/strength.MaxScore),
			Color: string(step.Color),
		})
	}
	if g.Fraction > 0 {
		v.Bar = arcPath(0, g.Fraction)
	}
	return v
}
