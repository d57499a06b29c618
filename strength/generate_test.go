package strength_test

import (
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/cloud-gov/password-meter/strength"
)

var _ = Describe("Generate", func() {
	It("uses a 70 character alphabet without duplicates", func() {
		Expect(strength.Alphabet).To(HaveLen(70))
		seen := map[rune]bool{}
		for _, r := range strength.Alphabet {
			Expect(seen[r]).To(BeFalse(), "duplicate %q", r)
			seen[r] = true
		}
	})

	It("draws 12 characters from the alphabet every time", func() {
		for i := 0; i < 10000; i++ {
			p := strength.Generate()
			Expect(p).To(HaveLen(strength.GeneratedLength))
			for _, r := range p {
				Expect(strings.ContainsRune(strength.Alphabet, r)).To(BeTrue(), "unexpected %q in %q", r, p)
			}
		}
	})

	It("does not repeat itself", func() {
		Expect(strength.Generate()).NotTo(Equal(strength.Generate()))
	})

	It("eventually uses every character class", func() {
		all := strings.Builder{}
		for i := 0; i < 200; i++ {
			all.WriteString(strength.Generate())
		}
		res := strength.Score(all.String())
		Expect(res.Suggestions).NotTo(ContainElement(strength.SuggestUppercase))
		Expect(res.Suggestions).NotTo(ContainElement(strength.SuggestLowercase))
		Expect(res.Suggestions).NotTo(ContainElement(strength.SuggestDigit))
		Expect(res.Suggestions).NotTo(ContainElement(strength.SuggestSpecial))
	})

	Describe("GenerateN", func() {
		It("honours the requested length", func() {
			p, err := strength.GenerateN(40)
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(HaveLen(40))
		})

		It("rejects lengths below one", func() {
			_, err := strength.GenerateN(0)
			Expect(err).To(MatchError("password length must be at least 1"))
			_, err = strength.GenerateN(-3)
			Expect(err).To(HaveOccurred())
		})
	})
})
