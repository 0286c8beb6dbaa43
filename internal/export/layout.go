package export

import (
	"math"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/jonathan/resume-builder/internal/sanitize"
)

// layout threads the vertical write cursor and drawing state through the
// section renderers. Every export call builds its own instance.
type layout struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	style StyleConfig
	y     float64
}

func newLayout(pdf *fpdf.Fpdf, style StyleConfig) *layout {
	return &layout{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		style: style,
		y:     style.Margin,
	}
}

func (l *layout) contentWidth() float64 {
	return l.style.PageWidth - 2*l.style.Margin
}

// checkPageBreak starts a new page and resets the cursor to the top
// margin when writing required more vertical units would exceed the
// printable area. Every drawing primitive calls this before writing.
// There is no look-ahead beyond the requested space: a heading can end
// up as the last line of a page.
func (l *layout) checkPageBreak(required float64) bool {
	if l.y+required > l.style.PageHeight-l.style.Margin {
		l.pdf.AddPage()
		l.y = l.style.Margin
		return true
	}
	return false
}

func (l *layout) setFont(style string, size float64) {
	l.pdf.SetFont(l.style.Font, style, size)
}

// sectionHeader draws the upper-cased title followed by a full-width
// horizontal rule, then advances the cursor by a fixed gap.
func (l *layout) sectionHeader(title string) {
	l.checkPageBreak(l.style.HeaderHeight)
	l.setFont("B", l.style.HeadingSize)
	l.pdf.Text(l.style.Margin, l.y, strings.ToUpper(title))
	l.y += l.style.RuleGap
	l.pdf.SetLineWidth(0.4)
	l.pdf.Line(l.style.Margin, l.y, l.style.PageWidth-l.style.Margin, l.y)
	l.y += l.style.HeaderGap
}

// textLine draws a single pre-cleaned line at x with the current font
// and advances the cursor.
func (l *layout) textLine(x, lineHeight float64, s string) {
	l.checkPageBreak(lineHeight)
	l.pdf.Text(x, l.y, s)
	l.y += lineHeight
}

// paragraph word-wraps text to the content width and draws each line
// with the requested alignment.
func (l *layout) paragraph(text string, align Alignment) {
	if text == "" {
		return
	}
	lines := l.pdf.SplitText(text, l.contentWidth())
	for i, line := range lines {
		l.checkPageBreak(l.style.LineHeight)
		l.drawAligned(line, align, i == len(lines)-1)
		l.y += l.style.LineHeight
	}
}

func (l *layout) drawAligned(line string, align Alignment, lastLine bool) {
	switch align {
	case AlignCenter:
		x := l.style.Margin + (l.contentWidth()-l.pdf.GetStringWidth(line))/2
		l.pdf.Text(x, l.y, line)
	case AlignRight:
		x := l.style.PageWidth - l.style.Margin - l.pdf.GetStringWidth(line)
		l.pdf.Text(x, l.y, line)
	case AlignJustify:
		l.justifiedLine(line, lastLine)
	default:
		l.pdf.Text(l.style.Margin, l.y, line)
	}
}

// justifiedLine distributes leftover horizontal space evenly between
// words. The last wrapped line and single-word lines fall back to left
// alignment.
func (l *layout) justifiedLine(line string, lastLine bool) {
	words := strings.Fields(line)
	if lastLine || len(words) < 2 {
		l.pdf.Text(l.style.Margin, l.y, line)
		return
	}

	var wordsWidth float64
	for _, w := range words {
		wordsWidth += l.pdf.GetStringWidth(w)
	}
	gap := (l.contentWidth() - wordsWidth) / float64(len(words)-1)

	x := l.style.Margin
	for _, w := range words {
		l.pdf.Text(x, l.y, w)
		x += l.pdf.GetStringWidth(w) + gap
	}
}

var leadingBullet = regexp.MustCompile(`^[\s\p{Zs}]*[-*•·‣◦]+\s*`)

func stripLeadingBullet(s string) string {
	return leadingBullet.ReplaceAllString(s, "")
}

// bulletedParagraph splits multi-line free text on newlines, strips any
// pre-existing leading bullet glyph, and re-renders each surviving line
// as a bullet item wrapped to width.
func (l *layout) bulletedParagraph(text string, x, width float64) {
	for _, raw := range strings.Split(text, "\n") {
		line := sanitize.Clean(stripLeadingBullet(raw))
		if line == "" {
			continue
		}
		l.bulletItem(line, x, width)
	}
}

// bulletItem draws one bullet line; wrapped continuation lines are
// indented to align under the bullet text, not the glyph.
func (l *layout) bulletItem(text string, x, width float64) {
	textX := x + l.style.BulletIndent
	for i, seg := range l.pdf.SplitText(text, width-l.style.BulletIndent) {
		l.checkPageBreak(l.style.LineHeight)
		if i == 0 {
			l.pdf.Text(x, l.y, l.tr("•"))
		}
		l.pdf.Text(textX, l.y, seg)
		l.y += l.style.LineHeight
	}
}

// columnPair renders items in two balanced columns, the ceiling half in
// the left column, with independent per-column cursors. The shared
// cursor resumes at the max of the two column end positions.
func (l *layout) columnPair(items []string, lineHeight float64) {
	if len(items) == 0 {
		return
	}
	half := (len(items) + 1) / 2
	left, right := items[:half], items[half:]

	l.checkPageBreak(float64(half) * lineHeight)

	colWidth := l.contentWidth()/2 - 2
	leftEnd := l.drawColumn(left, l.style.Margin, colWidth, l.y, lineHeight)
	rightEnd := l.drawColumn(right, l.style.Margin+l.contentWidth()/2, colWidth, l.y, lineHeight)
	l.y = math.Max(leftEnd, rightEnd)
}

// drawColumn draws items top-down at x, wrapping each to width, and
// returns the column's end position.
func (l *layout) drawColumn(items []string, x, width, y, lineHeight float64) float64 {
	for _, item := range items {
		for _, seg := range l.pdf.SplitText(item, width) {
			l.pdf.Text(x, y, seg)
			y += lineHeight
		}
	}
	return y
}
