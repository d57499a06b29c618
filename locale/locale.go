// Package locale holds the static string tables for the meter's supported
// languages and picks one for a request.
package locale

import (
	_ "embed"
	"fmt"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/cloud-gov/password-meter/strength"
)

//go:embed messages.yaml
var messagesYAML []byte

// Supported languages, in selector order. The first is the fallback.
var Supported = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
}

type Messages struct {
	Tag              language.Tag `yaml:"-"`
	Name             string       `yaml:"name"`
	Title            string       `yaml:"title"`
	EnterPassword    string       `yaml:"enter_password"`
	ShowPassword     string       `yaml:"show_password"`
	YourPassword     string       `yaml:"your_password"`
	Evaluate         string       `yaml:"evaluate"`
	StrengthScore    string       `yaml:"strength_score"`
	GaugeTitle       string       `yaml:"gauge_title"`
	Strong           string       `yaml:"strong"`
	Moderate         string       `yaml:"moderate"`
	Weak             string       `yaml:"weak"`
	Suggestions      string       `yaml:"suggestions"`
	GeneratePassword string       `yaml:"generate_password"`
	PasswordHistory  string       `yaml:"password_history"`
	Share            string       `yaml:"share"`
	Shared           string       `yaml:"shared"`
	NothingToShare   string       `yaml:"nothing_to_share"`
	Language         string       `yaml:"language"`

	Tips map[strength.Suggestion]string `yaml:"tips"`
}

// Suggestion returns the localized hint for key, or the key itself if the
// table has no entry.
func (m *Messages) Suggestion(key strength.Suggestion) string {
	if s, ok := m.Tips[key]; ok && s != "" {
		return s
	}
	return string(key)
}

func (m *Messages) Status(band strength.Band) string {
	switch band {
	case strength.BandStrong:
		return m.Strong
	case strength.BandModerate:
		return m.Moderate
	default:
		return m.Weak
	}
}

func (m *Messages) Code() string {
	return m.Tag.String()
}

type Catalog struct {
	byTag    map[language.Tag]*Messages
	ordered  []*Messages
	fallback *Messages
	matcher  language.Matcher
}

// Load parses the embedded tables. fallback names the language used when a
// request expresses no usable preference; empty means English.
func Load(fallback string) (*Catalog, error) {
	return Parse(messagesYAML, fallback)
}

func Parse(data []byte, fallback string) (*Catalog, error) {
	raw := map[string]*Messages{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse messages: %w", err)
	}

	c := &Catalog{
		byTag:   make(map[language.Tag]*Messages, len(Supported)),
		matcher: language.NewMatcher(Supported),
	}
	for _, tag := range Supported {
		m, ok := raw[tag.String()]
		if !ok || m == nil {
			return nil, fmt.Errorf("missing messages for %s", tag)
		}
		m.Tag = tag
		c.byTag[tag] = m
		c.ordered = append(c.ordered, m)
	}

	c.fallback = c.ordered[0]
	if fallback != "" {
		m, ok := c.Lookup(fallback)
		if !ok {
			return nil, fmt.Errorf("unsupported default language %q", fallback)
		}
		c.fallback = m
	}
	return c, nil
}

// All returns the tables in selector order.
func (c *Catalog) All() []*Messages {
	return c.ordered
}

func (c *Catalog) Default() *Messages {
	return c.fallback
}

// Lookup finds the table for an explicit selection such as "de", "de-AT" or
// "German".
func (c *Catalog) Lookup(name string) (*Messages, bool) {
	if name == "" {
		return nil, false
	}
	for _, m := range c.ordered {
		if m.Name == name {
			return m, true
		}
	}
	for _, tag := range Supported {
		if display(tag) == name {
			return c.byTag[tag], true
		}
	}

	tag, err := language.Parse(name)
	if err != nil {
		return nil, false
	}
	base, _ := tag.Base()
	for _, t := range Supported {
		if b, _ := t.Base(); b == base {
			return c.byTag[t], true
		}
	}
	return nil, false
}

// Match picks a table for a request. Explicit selections are tried in order,
// then the Accept-Language header, then the fallback.
func (c *Catalog) Match(acceptLanguage string, selections ...string) *Messages {
	for _, s := range selections {
		if m, ok := c.Lookup(s); ok {
			return m
		}
	}

	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, idx, conf := c.matcher.Match(tags...)
			if conf != language.No {
				return c.ordered[idx]
			}
		}
	}
	return c.fallback
}

var englishNames = map[language.Tag]string{
	language.English: "English",
	language.Spanish: "Spanish",
	language.French:  "French",
	language.German:  "German",
}

func display(tag language.Tag) string {
	return englishNames[tag]
}
