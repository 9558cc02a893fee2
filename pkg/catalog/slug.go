package catalog

import (
	"path"
	"regexp"
	"strconv"
	"strings"
)

// DefaultSlug is used when a name contains no alphanumeric characters.
const DefaultSlug = "calculator"

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases value, collapses every run of non-alphanumeric
// characters into one hyphen and trims hyphens from both ends.
func Slugify(value string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(value), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return DefaultSlug
	}
	return slug
}

// slugger hands out unique slugs in first-seen order. A suffixed slug is
// itself reserved, so a later name that slugifies to it moves on.
type slugger struct {
	counts map[string]int
	taken  map[string]bool
}

func newSlugger() *slugger {
	return &slugger{counts: make(map[string]int), taken: make(map[string]bool)}
}

func (s *slugger) next(name string) string {
	base := Slugify(name)
	slug := base
	n := s.counts[base]
	if n == 0 {
		n = 1
	}
	for s.taken[slug] {
		n++
		slug = base + "-" + strconv.Itoa(n)
	}
	s.counts[base] = n
	s.taken[slug] = true
	return slug
}

// ModulePath converts a relative implementation path into a dotted module
// locator: "calculator_implementations/psi_score.py" becomes
// "calculator_implementations.psi_score".
func ModulePath(rel string) string {
	p := path.Clean(strings.ReplaceAll(rel, `\`, "/"))
	p = strings.TrimPrefix(p, "/")
	p = strings.TrimSuffix(p, path.Ext(p))
	return strings.ReplaceAll(p, "/", ".")
}
