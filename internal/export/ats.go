package export

import (
	"github.com/jonathan/resume-builder/internal/sanitize"
)

// embedKeywords draws the cleaned job-description text in a near-invisible
// style (minimal font size, background-matching color) at the top of the
// first page, tiled across three column offsets. Text-extraction-based
// ATS scanners pick the keywords up; a human viewer does not see them.
func embedKeywords(l *layout, jobText string, cfg ATSConfig) {
	text := sanitize.Clean(jobText)
	if text == "" {
		return
	}

	chunks := chunkString(text, cfg.ChunkSize)
	if cfg.MaxChunks > 0 && len(chunks) > cfg.MaxChunks {
		chunks = chunks[:cfg.MaxChunks]
	}
	cols := cfg.Columns
	if cols < 1 {
		cols = 1
	}

	l.setFont("", cfg.FontSize)
	l.pdf.SetTextColor(cfg.TextR, cfg.TextG, cfg.TextB)
	for i, chunk := range chunks {
		x := l.style.Margin + float64(i%cols)*cfg.ColumnWidth
		y := cfg.TopOffset + float64(i/cols)*cfg.RowStep
		l.pdf.Text(x, y, chunk)
	}
	l.pdf.SetTextColor(0, 0, 0)
}

// chunkString splits s into fixed-size character blocks; the last block
// keeps the remainder.
func chunkString(s string, size int) []string {
	if size < 1 {
		return []string{s}
	}
	var chunks []string
	for len(s) > size {
		chunks = append(chunks, s[:size])
		s = s[size:]
	}
	if s != "" {
		chunks = append(chunks, s)
	}
	return chunks
}
