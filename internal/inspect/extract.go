package inspect

import (
	"strings"

	"github.com/Swatinem/this-week-in-rust/internal/urlnorm"
)

// strictTitles are the section headings whose links must stay unique
// across recent issues. Links under any other heading may repeat freely;
// the boilerplate sections deliberately do.
var strictTitles = map[string]struct{}{
	"project/tooling updates": {},
	"observations/thoughts":   {},
	"rust walkthroughs":       {},
	"miscellaneous":           {},
}

// isStrictTitle reports whether a heading opens a strict section. The
// comparison is an exact match, case-insensitive.
func isStrictTitle(title string) bool {
	_, ok := strictTitles[strings.ToLower(strings.TrimSpace(title))]
	return ok
}

// extractLinks walks the element stream in order and returns the
// normalized links found inside strict sections. The document starts
// non-strict; every heading re-derives the state from its own title, and
// links seen while non-strict are dropped silently.
func extractLinks(elems []Element, norm *urlnorm.Normalizer) []string {
	strict := false
	var links []string
	for _, el := range elems {
		switch el.Kind {
		case KindHeading:
			strict = isStrictTitle(el.Text)
		case KindLink:
			if strict {
				links = append(links, norm.Normalize(el.Href))
			}
		}
	}
	return links
}
