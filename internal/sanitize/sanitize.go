// Package sanitize provides text cleaning and field validation applied to
// every piece of user text before it is drawn into an exported document.
package sanitize

import (
	"log"
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Debug enables warning logs for suspicious cleaning results. It is an
// early-warning heuristic, not a hard validator.
var Debug bool

// PlaceholderName replaces an invalid or missing reference name.
const PlaceholderName = "Reference Name Not Provided"

// bulletGlyphs are list markers users paste in from word processors.
// ASCII hyphens stay: they appear inside legitimate words.
var bulletGlyphs = strings.NewReplacer(
	"•", "", // •
	"·", "", // ·
	"◦", "", // ◦
	"▪", "", // ▪
	"‣", "", // ‣
	"–", "", // –
	"—", "", // —
	"−", "", // −
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	emailShape    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	suspectChars  = regexp.MustCompile(`[^A-Za-z0-9@._\-\s]`)
)

// Clean strips characters outside the printable ASCII range, removes
// bullet and dash glyphs, collapses whitespace runs to single spaces,
// and trims. Clean is idempotent.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	stripped := bulletGlyphs.Replace(text)

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if r >= 0x20 && r <= 0x7e {
			b.WriteRune(r)
		} else if r == '\n' || r == '\t' || r == '\r' {
			b.WriteRune(' ')
		}
	}

	out := strings.TrimSpace(whitespaceRun.ReplaceAllString(b.String(), " "))

	if Debug {
		if out == "" && strings.TrimSpace(text) != "" {
			log.Printf("sanitize: non-empty input cleaned to empty: %.40q", text)
		} else if suspectChars.MatchString(out) {
			log.Printf("sanitize: cleaned text retains unusual characters: %.40q", out)
		}
	}

	return out
}

// IsValidEmail reports whether s matches a simple local@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailShape.MatchString(strings.TrimSpace(s))
}

// IsValidName reports whether s is a plausible person name: length
// strictly between 1 and 100 with at least one letter.
func IsValidName(s string) bool {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) <= 1 || len(trimmed) >= 100 {
		return false
	}
	for _, r := range trimmed {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

// ValidateReference normalizes a reference record before rendering:
// an invalid or missing name becomes PlaceholderName, an email failing
// IsValidEmail is dropped, and every other field passes through Clean.
func ValidateReference(ref types.ReferenceEntry) types.ReferenceEntry {
	out := ref
	out.Name = Clean(ref.Name)
	if !IsValidName(out.Name) {
		out.Name = PlaceholderName
	}

	out.Email = Clean(ref.Email)
	if !IsValidEmail(out.Email) {
		out.Email = ""
	}

	out.Title = Clean(ref.Title)
	out.Company = Clean(ref.Company)
	out.Phone = Clean(ref.Phone)
	return out
}
