package metrics

import (
	"fmt"
	"regexp"
	"strings"
)

// BucketMatcher classifies a request path into a logical resource label.
// ok is false when the matcher does not recognise the path.
type BucketMatcher interface {
	Match(path string) (label string, ok bool)
}

// PathTemplateMatcher matches slash-separated templates such as
// "/api/collections/{collection}/**". A "{name}" segment captures one path segment,
// "*" matches any single segment and a trailing "**" matches one or more segments.
type PathTemplateMatcher struct {
	segments []string
	label    string
}

// NewPathTemplateMatcher builds a matcher whose label may reference captured names,
// e.g. label "{collection}".
func NewPathTemplateMatcher(template, label string) *PathTemplateMatcher {
	return &PathTemplateMatcher{
		segments: splitPath(template),
		label:    label,
	}
}

func (m *PathTemplateMatcher) Match(path string) (string, bool) {
	parts := splitPath(path)
	captures := make(map[string]string)

	for i, seg := range m.segments {
		if seg == "**" && i == len(m.segments)-1 {
			if len(parts) <= i {
				return "", false
			}
			return m.render(captures), true
		}
		if i >= len(parts) {
			return "", false
		}
		switch {
		case seg == "*":
		case strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}"):
			captures[seg] = parts[i]
		case seg != parts[i]:
			return "", false
		}
	}

	if len(parts) != len(m.segments) {
		return "", false
	}
	return m.render(captures), true
}

func (m *PathTemplateMatcher) render(captures map[string]string) string {
	label := m.label
	for name, value := range captures {
		label = strings.ReplaceAll(label, name, value)
	}
	return label
}

// RegexMatcher matches a regular expression and expands template ("$1", "${name}")
// with its submatches.
type RegexMatcher struct {
	re       *regexp.Regexp
	template string
}

// NewRegexMatcher compiles pattern.
func NewRegexMatcher(pattern, template string) (*RegexMatcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile bucket pattern %q: %w", pattern, err)
	}
	return &RegexMatcher{re: re, template: template}, nil
}

// MustRegexMatcher is NewRegexMatcher that panics on an invalid pattern.
func MustRegexMatcher(pattern, template string) *RegexMatcher {
	m, err := NewRegexMatcher(pattern, template)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *RegexMatcher) Match(path string) (string, bool) {
	idx := m.re.FindStringSubmatchIndex(path)
	if idx == nil {
		return "", false
	}
	return string(m.re.ExpandString(nil, m.template, path, idx)), true
}

// DefaultMatchers collapses every PocketBase collection path into its collection name.
func DefaultMatchers() []BucketMatcher {
	return []BucketMatcher{
		NewPathTemplateMatcher("/api/collections/{collection}/**", "{collection}"),
	}
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
