// Package strength scores passwords against a fixed set of heuristic rules and
// draws random passwords from a fixed alphabet.
//
// Results carry suggestion keys rather than text so callers can localize them.
package strength

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type Suggestion string

const (
	SuggestMinLength Suggestion = "min_length"
	SuggestUppercase Suggestion = "uppercase"
	SuggestLowercase Suggestion = "lowercase"
	SuggestDigit     Suggestion = "digit"
	SuggestSpecial   Suggestion = "special"
	SuggestRepeated  Suggestion = "repeated"
	SuggestCommon    Suggestion = "common"
)

const (
	MinLength    = 8
	MaxScore     = 5
	SpecialChars = "!@#$%^&*"

	// Runs of this many identical characters trigger SuggestRepeated.
	repeatRun = 3
)

// CommonPasswords are matched case-insensitively and force a score of 1.
var CommonPasswords = []string{"password", "123456", "qwerty", "password123", "admin", "letmein"}

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[` + regexp.QuoteMeta(SpecialChars) + `]`)
)

var commonSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(CommonPasswords))
	for _, p := range CommonPasswords {
		m[strings.ToLower(p)] = struct{}{}
	}
	return m
}()

type Result struct {
	Score       int          `json:"score"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Strong reports whether every check passed.
func (r Result) Strong() bool {
	return r.Score == MaxScore
}

type check struct {
	pass       func(string) bool
	suggestion Suggestion
}

var checks = []check{
	{func(p string) bool { return utf8.RuneCountInString(p) >= MinLength }, SuggestMinLength},
	{upperRe.MatchString, SuggestUppercase},
	{lowerRe.MatchString, SuggestLowercase},
	{digitRe.MatchString, SuggestDigit},
	{specialRe.MatchString, SuggestSpecial},
}

// Score evaluates password. It is total over all strings, including the empty
// string, and never mutates shared state.
func Score(password string) Result {
	res := Result{Suggestions: []Suggestion{}}

	for _, c := range checks {
		if c.pass(password) {
			res.Score++
		} else {
			res.Suggestions = append(res.Suggestions, c.suggestion)
		}
	}

	if hasRepeatedRun(password, repeatRun) {
		res.Suggestions = append(res.Suggestions, SuggestRepeated)
	}

	if IsCommon(password) {
		return Result{Score: 1, Suggestions: []Suggestion{SuggestCommon}}
	}

	return res
}

func IsCommon(password string) bool {
	_, ok := commonSet[strings.ToLower(password)]
	return ok
}

// hasRepeatedRun reports whether any character occurs n or more times in a row.
// Invalid UTF-8 bytes are compared by value rather than collapsing into
// utf8.RuneError.
func hasRepeatedRun(s string, n int) bool {
	var (
		prev rune
		run  int
	)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			// Outside the rune range, so it cannot equal a decoded character.
			r = -1 - rune(s[i])
		}
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
		i += size
	}
	return false
}
