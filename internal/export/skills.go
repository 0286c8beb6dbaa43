package export

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-builder/internal/sanitize"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// skillStoplist holds words that pass the shape checks but are never
// skills on their own.
var skillStoplist = map[string]struct{}{
	"and": {}, "the": {}, "with": {}, "for": {}, "from": {}, "that": {},
	"this": {}, "are": {}, "was": {}, "has": {}, "have": {}, "will": {},
	"early": {}, "various": {}, "other": {}, "strong": {}, "good": {},
	"years": {}, "year": {}, "working": {}, "knowledge": {}, "skills": {},
	"skill": {}, "experience": {}, "proficient": {}, "familiar": {},
	"using": {}, "used": {}, "etc": {}, "able": {}, "team": {},
}

// knownTechnologies is a short whitelist of lowercase technology names
// that would otherwise fail the shape checks.
var knownTechnologies = map[string]struct{}{
	"go": {}, "golang": {}, "java": {}, "python": {}, "ruby": {},
	"rust": {}, "php": {}, "swift": {}, "kotlin": {}, "scala": {},
	"react": {}, "node": {}, "vue": {}, "angular": {}, "django": {},
	"docker": {}, "kubernetes": {}, "terraform": {}, "aws": {},
	"azure": {}, "gcp": {}, "linux": {}, "git": {}, "sql": {},
	"mysql": {}, "postgres": {}, "postgresql": {}, "redis": {},
	"mongodb": {}, "graphql": {}, "html": {}, "css": {}, "c": {},
	"c++": {}, "c#": {}, "excel": {}, "figma": {}, "jira": {},
}

// knownSuffixes mark tokens that read as technology names by their tail.
var knownSuffixes = []string{".js", ".ts", ".py", "js", "sql", "db", "ops", "api"}

// IsValidSkill is a permissive whitelist, not a precision filter: it
// discards very short tokens and a fixed stoplist, then accepts anything
// that looks technical, is capitalized, or is longer than 4 characters.
// All-caps acronyms ("AI", "QA") bypass the minimum length.
func IsValidSkill(token string) bool {
	t := strings.TrimSpace(token)
	if isAcronym(t) {
		return true
	}
	if len(t) < 3 {
		return false
	}
	if _, stop := skillStoplist[strings.ToLower(t)]; stop {
		return false
	}
	if looksTechnical(t) {
		return true
	}
	if first := []rune(t)[0]; unicode.IsUpper(first) {
		return true
	}
	return len(t) > 4
}

// isAcronym reports whether t is a 2+ character all-caps letter run.
func isAcronym(t string) bool {
	if len(t) < 2 {
		return false
	}
	for _, r := range t {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// looksTechnical applies shape heuristics: acronyms, known suffixes,
// internal capitals (camelCase product names), and a short whitelist.
func looksTechnical(t string) bool {
	if isAcronym(t) {
		return true
	}
	lower := strings.ToLower(t)
	if _, known := knownTechnologies[lower]; known {
		return true
	}
	for _, suffix := range knownSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	// Internal capital after the first rune, e.g. JavaScript, PostgreSQL.
	for i, r := range t {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// Capitalize upper-cases the first letter and preserves the rest, so
// "python" becomes "Python" while "iOS" and "AI" keep their casing.
func Capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// FilterSkills cleans, filters, capitalizes, and locale-aware sorts the
// display names drawn in the skills section.
func FilterSkills(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		cleaned := sanitize.Clean(name)
		if cleaned == "" || !IsValidSkill(cleaned) {
			continue
		}
		out = append(out, Capitalize(cleaned))
	}
	collate.New(language.English, collate.IgnoreCase).SortStrings(out)
	return out
}
