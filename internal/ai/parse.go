package ai

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/sanitize"
)

// listMarker matches leading bullets and "1." / "2)" style numbering.
var listMarker = regexp.MustCompile(`^\s*(?:[-*•·‣◦]|\d+[.)])\s*`)

// ParseList turns model output into a clean string slice. Items are taken
// one per line, with comma splitting as a fallback for single-line
// responses. Markers and surrounding noise are stripped; empties and
// duplicates are dropped.
func ParseList(text string) []string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 1 && strings.Contains(lines[0], ",") {
		lines = strings.Split(lines[0], ",")
	}

	seen := make(map[string]struct{}, len(lines))
	var out []string
	for _, raw := range lines {
		item := sanitize.Clean(listMarker.ReplaceAllString(raw, ""))
		if item == "" {
			continue
		}
		lower := strings.ToLower(item)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, item)
	}
	return out
}
