package strength_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/cloud-gov/password-meter/strength"
)

var _ = Describe("Bands", func() {
	DescribeTable("status and colour per score",
		func(score int, band strength.Band, color strength.Color) {
			Expect(strength.BandFor(score)).To(Equal(band))
			Expect(strength.ColorFor(score)).To(Equal(color))
		},
		Entry("0", 0, strength.BandWeak, strength.ColorRed),
		Entry("1", 1, strength.BandWeak, strength.ColorRed),
		Entry("2", 2, strength.BandWeak, strength.ColorOrange),
		Entry("3", 3, strength.BandModerate, strength.ColorOrange),
		Entry("4", 4, strength.BandModerate, strength.ColorGreen),
		Entry("5", 5, strength.BandStrong, strength.ColorGreen),
	)

	DescribeTable("needle colour",
		func(score int, color strength.Color) {
			Expect(strength.NeedleColor(score)).To(Equal(color))
		},
		Entry("2", 2, strength.ColorRed),
		Entry("3", 3, strength.ColorOrange),
		Entry("4", 4, strength.ColorBlue),
		Entry("5", 5, strength.ColorBlue),
	)

	It("covers the whole range with gauge steps", func() {
		Expect(strength.GaugeSteps[0].From).To(Equal(0))
		for i := 1; i < len(strength.GaugeSteps); i++ {
			Expect(strength.GaugeSteps[i].From).To(Equal(strength.GaugeSteps[i-1].To))
		}
		Expect(strength.GaugeSteps[len(strength.GaugeSteps)-1].To).To(Equal(strength.MaxScore))
	})

	Describe("NewGauge", func() {
		It("clamps out of range scores", func() {
			Expect(strength.NewGauge(-2).Fraction).To(BeZero())
			Expect(strength.NewGauge(9).Fraction).To(Equal(1.0))
		})

		It("derives the fraction of the range", func() {
			g := strength.NewGauge(3)
			Expect(g.Fraction).To(BeNumerically("~", 0.6, 1e-9))
			Expect(g.Band).To(Equal(strength.BandModerate))
			Expect(g.Color).To(Equal(strength.ColorOrange))
		})
	})

	It("sweeps the half circle from left to right", func() {
		x, y := strength.Point(100, 100, 80, 0)
		Expect(x).To(BeNumerically("~", 20, 1e-9))
		Expect(y).To(BeNumerically("~", 100, 1e-9))

		x, y = strength.Point(100, 100, 80, 0.5)
		Expect(x).To(BeNumerically("~", 100, 1e-9))
		Expect(y).To(BeNumerically("~", 20, 1e-9))

		x, _ = strength.Point(100, 100, 80, 1)
		Expect(x).To(BeNumerically("~", 180, 1e-9))
	})
})
