package export

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-builder/internal/sanitize"
	"github.com/jonathan/resume-builder/internal/types"
)

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// renderHeader draws the centered name and contact line.
func renderHeader(l *layout, p types.PersonalInfo) {
	name := sanitize.Clean(p.FullName)
	l.setFont("B", l.style.NameSize)
	l.checkPageBreak(12)
	l.pdf.Text(l.style.Margin+(l.contentWidth()-l.pdf.GetStringWidth(name))/2, l.y+4, name)
	l.y += 12

	contact := joinNonEmpty(" | ",
		sanitize.Clean(p.Email),
		sanitize.Clean(p.Phone),
		sanitize.Clean(p.Location),
	)
	if contact != "" {
		l.setFont("", l.style.SmallSize)
		l.checkPageBreak(l.style.SmallLineHeight)
		l.pdf.Text(l.style.Margin+(l.contentWidth()-l.pdf.GetStringWidth(contact))/2, l.y, contact)
		l.y += l.style.SmallLineHeight
	}
	l.y += l.style.SectionGap
}

func renderSummary(l *layout, summary string) {
	text := sanitize.Clean(summary)
	if text == "" {
		return
	}
	l.sectionHeader("Professional Summary")
	l.setFont("", l.style.BodySize)
	l.paragraph(text, AlignLeft)
	l.y += l.style.SectionGap
}

func renderExperience(l *layout, entries []types.ExperienceEntry) {
	if len(entries) == 0 {
		return
	}
	l.sectionHeader("Experience")
	for i, e := range entries {
		l.checkPageBreak(3 * l.style.LineHeight)

		if title := sanitize.Clean(e.Title); title != "" {
			l.setFont("B", l.style.BodySize)
			l.textLine(l.style.Margin, l.style.LineHeight, title)
		}
		if org := joinNonEmpty(", ", sanitize.Clean(e.Company), sanitize.Clean(e.Location)); org != "" {
			l.setFont("", l.style.BodySize)
			l.textLine(l.style.Margin, l.style.LineHeight, org)
		}
		if dates := sanitize.FormatDateRange(e.StartDate, e.EndDate); dates != "" {
			l.setFont("I", l.style.SmallSize)
			l.textLine(l.style.Margin, l.style.SmallLineHeight, dates)
		}

		l.setFont("", l.style.BodySize)
		l.bulletedParagraph(e.Description, l.style.Margin, l.contentWidth())

		if i < len(entries)-1 {
			l.y += l.style.RecordGap
		}
	}
	l.y += l.style.SectionGap
}

// splitCourses splits a comma-separated course list, cleans each entry,
// and sorts lexically. Duplicates are allowed.
func splitCourses(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if course := sanitize.Clean(part); course != "" {
			out = append(out, course)
		}
	}
	sort.Strings(out)
	return out
}

func renderEducation(l *layout, entries []types.EducationEntry) {
	if len(entries) == 0 {
		return
	}
	l.sectionHeader("Education")
	for i, e := range entries {
		l.checkPageBreak(3 * l.style.LineHeight)

		if degree := sanitize.Clean(e.Degree); degree != "" {
			l.setFont("B", l.style.BodySize)
			l.textLine(l.style.Margin, l.style.LineHeight, degree)
		}
		if school := joinNonEmpty(", ", sanitize.Clean(e.School), sanitize.Clean(e.Location)); school != "" {
			l.setFont("", l.style.BodySize)
			l.textLine(l.style.Margin, l.style.LineHeight, school)
		}
		meta := joinNonEmpty(" | ", sanitize.FormatDateRange(e.StartDate, e.EndDate), gpaLabel(e.GPA))
		if meta != "" {
			l.setFont("I", l.style.SmallSize)
			l.textLine(l.style.Margin, l.style.SmallLineHeight, meta)
		}

		if courses := splitCourses(e.RelevantCourses); len(courses) > 0 {
			l.setFont("B", l.style.SmallSize)
			l.textLine(l.style.Margin, l.style.SmallLineHeight, "Relevant Coursework:")
			l.setFont("", l.style.SmallSize)
			l.columnPair(courses, l.style.SmallLineHeight)
		}

		if i < len(entries)-1 {
			l.y += l.style.RecordGap
		}
	}
	l.y += l.style.SectionGap
}

func gpaLabel(gpa string) string {
	if cleaned := sanitize.Clean(gpa); cleaned != "" {
		return "GPA: " + cleaned
	}
	return ""
}

func renderSkills(l *layout, skills types.SkillList) {
	names := FilterSkills(skills.Names())
	if len(names) == 0 {
		return
	}
	l.sectionHeader("Skills")
	l.setFont("", l.style.BodySize)
	if len(names) >= l.style.SkillFlowThreshold {
		l.paragraph(strings.Join(names, ", "), AlignLeft)
	} else {
		l.columnPair(names, l.style.LineHeight)
	}
	l.y += l.style.SectionGap
}

func renderProjects(l *layout, entries []types.ProjectEntry) {
	if len(entries) == 0 {
		return
	}
	l.sectionHeader("Projects")
	for i, p := range entries {
		l.checkPageBreak(2 * l.style.LineHeight)

		if name := sanitize.Clean(p.Name); name != "" {
			l.setFont("B", l.style.BodySize)
			l.textLine(l.style.Margin, l.style.LineHeight, name)
		}
		if tech := sanitize.Clean(p.Technologies); tech != "" {
			l.setFont("I", l.style.SmallSize)
			l.textLine(l.style.Margin, l.style.SmallLineHeight, tech)
		}

		l.setFont("", l.style.BodySize)
		l.bulletedParagraph(p.Description, l.style.Margin, l.contentWidth())

		if url := sanitize.Clean(p.URL); url != "" {
			l.setFont("", l.style.SmallSize)
			l.textLine(l.style.Margin, l.style.SmallLineHeight, url)
		}

		if i < len(entries)-1 {
			l.y += l.style.RecordGap
		}
	}
	l.y += l.style.SectionGap
}

func renderCertifications(l *layout, entries []types.CertificationEntry) {
	if len(entries) == 0 {
		return
	}
	l.sectionHeader("Certifications")
	for i, c := range entries {
		l.checkPageBreak(2 * l.style.LineHeight)

		if name := sanitize.Clean(c.Name); name != "" {
			l.setFont("B", l.style.BodySize)
			l.textLine(l.style.Margin, l.style.LineHeight, name)
		}
		meta := joinNonEmpty(", ", sanitize.Clean(c.Issuer), sanitize.FormatDate(c.Date, false))
		if meta != "" {
			l.setFont("", l.style.SmallSize)
			l.textLine(l.style.Margin, l.style.SmallLineHeight, meta)
		}

		if i < len(entries)-1 {
			l.y += l.style.RecordGap
		}
	}
	l.y += l.style.SectionGap
}

func renderLanguages(l *layout, entries []types.LanguageEntry) {
	var items []string
	for _, lang := range entries {
		name := sanitize.Clean(lang.Name)
		if name == "" {
			continue
		}
		if prof := sanitize.Clean(lang.Proficiency); prof != "" {
			name += " (" + prof + ")"
		}
		items = append(items, name)
	}
	if len(items) == 0 {
		return
	}

	l.sectionHeader("Languages")
	l.setFont("", l.style.BodySize)

	if len(items) < l.style.LanguageColumnMin {
		for _, item := range items {
			l.bulletItem(item, l.style.Margin, l.contentWidth())
		}
	} else {
		// Fixed-width columns filled by contiguous slicing, all starting
		// from the same vertical position.
		cols := l.style.LanguageColumns
		if cols < 1 {
			cols = 1
		}
		perCol := (len(items) + cols - 1) / cols
		colWidth := l.contentWidth() / float64(cols)

		l.checkPageBreak(float64(perCol) * l.style.LineHeight)
		startY := l.y
		end := startY
		for c := 0; c < cols; c++ {
			lo := c * perCol
			if lo >= len(items) {
				break
			}
			hi := min(lo+perCol, len(items))
			x := l.style.Margin + float64(c)*colWidth
			colEnd := l.drawColumn(items[lo:hi], x, colWidth-2, startY, l.style.LineHeight)
			if colEnd > end {
				end = colEnd
			}
		}
		l.y = end
	}
	l.y += l.style.SectionGap
}

func renderInterests(l *layout, interests []string, align Alignment) {
	var cleaned []string
	for _, interest := range interests {
		if c := sanitize.Clean(interest); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		return
	}
	l.sectionHeader("Interests")
	l.setFont("", l.style.BodySize)
	l.paragraph(strings.Join(cleaned, ", "), align)
	l.y += l.style.SectionGap
}

func renderReferences(l *layout, entries []types.ReferenceEntry) {
	if len(entries) == 0 {
		return
	}
	l.sectionHeader("References")
	for i, raw := range entries {
		ref := sanitize.ValidateReference(raw)
		l.checkPageBreak(2 * l.style.LineHeight)

		l.setFont("B", l.style.BodySize)
		l.textLine(l.style.Margin, l.style.LineHeight, ref.Name)

		if role := joinNonEmpty(", ", ref.Title, ref.Company); role != "" {
			l.setFont("", l.style.BodySize)
			l.textLine(l.style.Margin, l.style.LineHeight, role)
		}

		l.renderContactFields(ref.Email, ref.Phone)

		if i < len(entries)-1 {
			l.y += l.style.RecordGap
		}
	}
	l.y += l.style.SectionGap
}

// renderContactFields draws the non-empty contact fields on a single
// line when they fit the content width, otherwise one per line.
func (l *layout) renderContactFields(fields ...string) {
	var kept []string
	for _, f := range fields {
		if f != "" {
			kept = append(kept, f)
		}
	}
	if len(kept) == 0 {
		return
	}

	l.setFont("", l.style.SmallSize)
	joined := strings.Join(kept, " | ")
	if l.pdf.GetStringWidth(joined) <= l.contentWidth() {
		l.textLine(l.style.Margin, l.style.SmallLineHeight, joined)
		return
	}
	for _, f := range kept {
		l.textLine(l.style.Margin, l.style.SmallLineHeight, f)
	}
}
