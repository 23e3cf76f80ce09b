// Package classifier decides whether a piece of text or a URL refers to
// African content using multi-pattern substring matching.
package classifier

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// KeywordSet holds the two keyword lists driving classification. It is
// immutable once handed to New.
type KeywordSet struct {
	Countries []string
	Regions   []string
}

// Keywords returns the combined country and region keywords.
func (s KeywordSet) Keywords() []string {
	out := make([]string, 0, len(s.Countries)+len(s.Regions))
	out = append(out, s.Countries...)
	out = append(out, s.Regions...)
	return out
}

// Classifier matches African keywords as substrings of lower-cased input.
// Matching is deliberately not word-boundary aware: "congo" matches
// "congolese". Downstream filtering depends on that behavior.
type Classifier struct {
	matcher  *ahocorasick.Matcher
	keywords []string
}

// New builds a Classifier from the given keyword set. Keywords are
// normalized to lowercase; empty entries are dropped.
func New(set KeywordSet) *Classifier {
	raw := set.Keywords()
	keywords := make([]string, 0, len(raw))
	for _, kw := range raw {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			keywords = append(keywords, kw)
		}
	}

	return &Classifier{
		matcher:  ahocorasick.NewStringMatcher(keywords),
		keywords: keywords,
	}
}

// NewDefault builds a Classifier over the built-in keyword set.
func NewDefault() *Classifier {
	return New(DefaultKeywordSet())
}

// IsAfrican reports whether any keyword occurs as a substring of the
// lower-cased text or the lower-cased URL. Both inputs empty yields false.
func (c *Classifier) IsAfrican(text, url string) bool {
	if text == "" && url == "" {
		return false
	}

	if len(c.matcher.Match([]byte(strings.ToLower(text)))) > 0 {
		return true
	}
	return len(c.matcher.Match([]byte(strings.ToLower(url)))) > 0
}

// Keywords returns the normalized keywords the classifier matches against.
func (c *Classifier) Keywords() []string {
	out := make([]string, len(c.keywords))
	copy(out, c.keywords)
	return out
}
