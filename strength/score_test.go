package strength_test

import (
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/cloud-gov/password-meter/strength"
)

var _ = Describe("Score", func() {
	It("fails every class check for the empty string", func() {
		res := strength.Score("")
		Expect(res.Score).To(Equal(0))
		Expect(res.Suggestions).To(Equal([]strength.Suggestion{
			strength.SuggestMinLength,
			strength.SuggestUppercase,
			strength.SuggestLowercase,
			strength.SuggestDigit,
			strength.SuggestSpecial,
		}))
	})

	It("gives full marks without suggestions when nothing repeats three times", func() {
		res := strength.Score("Aa1!Aa1!Aa1!")
		Expect(res.Score).To(Equal(strength.MaxScore))
		Expect(res.Suggestions).To(BeEmpty())
		Expect(res.Strong()).To(BeTrue())
	})

	It("flags repeated characters without lowering the score", func() {
		res := strength.Score("aaaAAA111!!!")
		Expect(res.Score).To(Equal(strength.MaxScore))
		Expect(res.Suggestions).To(Equal([]strength.Suggestion{strength.SuggestRepeated}))
	})

	It("keeps class suggestions alongside the repeated hint", func() {
		res := strength.Score("zzz")
		Expect(res.Score).To(Equal(1))
		Expect(res.Suggestions).To(ConsistOf(
			strength.SuggestMinLength,
			strength.SuggestUppercase,
			strength.SuggestDigit,
			strength.SuggestSpecial,
			strength.SuggestRepeated,
		))
		Expect(res.Suggestions[len(res.Suggestions)-1]).To(Equal(strength.SuggestRepeated))
	})

	It("does not treat two in a row as repeated", func() {
		Expect(strength.Score("aaBB11!!xyz").Suggestions).NotTo(ContainElement(strength.SuggestRepeated))
	})

	It("does not confuse distinct invalid bytes with a repeated character", func() {
		res := strength.Score("Ab1!xyz\xff\xfe\xfd")
		Expect(res.Score).To(Equal(strength.MaxScore))
		Expect(res.Suggestions).To(BeEmpty())

		Expect(strength.Score("Ab1!xyz\xff\xff\xff").Suggestions).To(Equal([]strength.Suggestion{strength.SuggestRepeated}))
	})

	It("treats a literal replacement character as distinct from invalid bytes", func() {
		Expect(strength.Score("Ab1!xyz\uFFFD\uFFFD\xff").Suggestions).To(BeEmpty())
		Expect(strength.Score("Ab1!xyz\uFFFD\uFFFD\uFFFD").Suggestions).To(Equal([]strength.Suggestion{strength.SuggestRepeated}))
	})

	It("counts repeated whitespace like any other character", func() {
		Expect(strength.Score("Ab1!xyz\n\n\n").Suggestions).To(Equal([]strength.Suggestion{strength.SuggestRepeated}))
	})

	It("counts characters rather than bytes for length", func() {
		Expect(strength.Score("ééééééé").Suggestions).To(ContainElement(strength.SuggestMinLength))
		Expect(strength.Score("éééééééé").Suggestions).NotTo(ContainElement(strength.SuggestMinLength))
	})

	It("only recognises ASCII letters", func() {
		res := strength.Score("ÄÖÜäöü12!")
		Expect(res.Suggestions).To(ContainElement(strength.SuggestUppercase))
		Expect(res.Suggestions).To(ContainElement(strength.SuggestLowercase))
	})

	It("has no maximum length", func() {
		res := strength.Score(strings.Repeat("Ab1!", 1000))
		Expect(res.Score).To(Equal(strength.MaxScore))
	})

	It("returns the same result for the same input", func() {
		for _, p := range []string{"", "abc", "Sup3r$ecret", "PASSWORD", "aaaa"} {
			Expect(strength.Score(p)).To(Equal(strength.Score(p)))
		}
	})

	It("keeps the score within bounds and suggests something below the maximum", func() {
		for _, p := range []string{"", "a", "A", "1", "!", "abcdefgh", "ABCDEFGH1", "aB3$", "aaaaaaaaaaa", "Zz9&Zz9&"} {
			res := strength.Score(p)
			Expect(res.Score).To(BeNumerically(">=", 0))
			Expect(res.Score).To(BeNumerically("<=", strength.MaxScore))
			if res.Score < strength.MaxScore {
				Expect(res.Suggestions).NotTo(BeEmpty())
			}
		}
	})

	DescribeTable("common passwords",
		func(password string) {
			res := strength.Score(password)
			Expect(res.Score).To(Equal(1))
			Expect(res.Suggestions).To(Equal([]strength.Suggestion{strength.SuggestCommon}))
		},
		Entry("password", "password"),
		Entry("123456", "123456"),
		Entry("qwerty", "qwerty"),
		Entry("password123", "password123"),
		Entry("admin", "admin"),
		Entry("letmein", "letmein"),
		Entry("mixed case", "PassWord123"),
		Entry("upper case", "LETMEIN"),
	)

	It("does not match common passwords as substrings", func() {
		Expect(strength.IsCommon("password1234")).To(BeFalse())
		Expect(strength.IsCommon(" admin")).To(BeFalse())
	})
})
