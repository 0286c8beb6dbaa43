package export

import "strings"

// Alignment selects horizontal text alignment for flowing paragraphs.
type Alignment int

const (
	// AlignLeft is the default alignment.
	AlignLeft Alignment = iota
	// AlignCenter centers each line.
	AlignCenter
	// AlignRight right-aligns each line.
	AlignRight
	// AlignJustify distributes leftover space between words on all but
	// the last wrapped line.
	AlignJustify
)

// ParseAlignment maps a user-supplied alignment name to an Alignment.
// Unknown values fall back to left.
func ParseAlignment(s string) Alignment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre":
		return AlignCenter
	case "right":
		return AlignRight
	case "justify", "justified":
		return AlignJustify
	default:
		return AlignLeft
	}
}

// StyleConfig holds page geometry and typography for one export. A fresh
// copy is built per call so concurrent exports do not interfere.
// All units are millimeters on an A4 page.
type StyleConfig struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64

	Font        string
	NameSize    float64
	HeadingSize float64
	BodySize    float64
	SmallSize   float64

	LineHeight      float64
	SmallLineHeight float64

	HeaderHeight float64 // space reserved before drawing a section header
	RuleGap      float64 // title baseline to horizontal rule
	HeaderGap    float64 // rule to first content line
	RecordGap    float64 // between records within a section
	SectionGap   float64 // after a section

	BulletIndent float64

	// SkillFlowThreshold switches the skills section from a two-column
	// balanced split to a single flowing line at or above this count.
	SkillFlowThreshold int
	// LanguageColumnMin switches languages from a bulleted list to
	// columns at or above this count.
	LanguageColumnMin int
	// LanguageColumns caps the fixed-width language columns.
	LanguageColumns int
}

// DefaultStyle returns the standard resume style.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		PageWidth:  210,
		PageHeight: 297,
		Margin:     20,

		Font:        "Helvetica",
		NameSize:    20,
		HeadingSize: 12,
		BodySize:    10,
		SmallSize:   9,

		LineHeight:      5,
		SmallLineHeight: 4.5,

		HeaderHeight: 10,
		RuleGap:      1.5,
		HeaderGap:    6,
		RecordGap:    3,
		SectionGap:   4,

		BulletIndent: 4,

		SkillFlowThreshold: 10,
		LanguageColumnMin:  4,
		LanguageColumns:    3,
	}
}

// ATSConfig tunes the near-invisible keyword embedding. The exact values
// are tuning knobs, not invariants: only the chunk-tile-faint behavior is
// load-bearing.
type ATSConfig struct {
	FontSize    float64
	TextR       int
	TextG       int
	TextB       int
	ChunkSize   int
	Columns     int
	ColumnWidth float64
	TopOffset   float64
	RowStep     float64
	MaxChunks   int
}

// DefaultATS returns the standard embedding configuration.
func DefaultATS() ATSConfig {
	return ATSConfig{
		FontSize:    1,
		TextR:       248,
		TextG:       248,
		TextB:       248,
		ChunkSize:   90,
		Columns:     3,
		ColumnWidth: 58,
		TopOffset:   6,
		RowStep:     2.2,
		MaxChunks:   36,
	}
}
