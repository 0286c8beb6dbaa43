// Package types provides type definitions for structured data used throughout the resume-builder system.
package types

import (
	"bytes"
	"encoding/json"
)

// PersonalInfo holds the header fields of a resume.
// All fields are optional except FullName, which the exporter requires.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// ExperienceEntry represents one work-experience record.
type ExperienceEntry struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"` // YYYY-MM
	EndDate     string `json:"endDate,omitempty"`   // YYYY-MM, "present", or empty for current
	Description string `json:"description,omitempty"`
}

// EducationEntry represents one education record.
type EducationEntry struct {
	ID              int    `json:"id"`
	Degree          string `json:"degree"`
	School          string `json:"school"`
	Location        string `json:"location,omitempty"`
	StartDate       string `json:"startDate,omitempty"`
	EndDate         string `json:"endDate,omitempty"`
	GPA             string `json:"gpa,omitempty"`
	RelevantCourses string `json:"relevantCourses,omitempty"` // comma-separated
}

// ProjectEntry represents one project record.
type ProjectEntry struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Technologies string `json:"technologies,omitempty"`
	Description  string `json:"description,omitempty"`
	URL          string `json:"url,omitempty"`
}

// CertificationEntry represents one certification record.
type CertificationEntry struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// LanguageEntry represents one spoken-language record.
type LanguageEntry struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// ReferenceEntry represents one reference record.
type ReferenceEntry struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Title   string `json:"title,omitempty"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Skill represents a skill in detailed form, carrying a proficiency level and category.
type Skill struct {
	Name     string `json:"name"`
	Level    string `json:"level,omitempty"`
	Category string `json:"category,omitempty"`
}

// SkillMode discriminates the two skill representations a resume may carry.
type SkillMode string

const (
	// SkillModeSimple is a bare list of skill names.
	SkillModeSimple SkillMode = "simple"
	// SkillModeDetailed is a list of skills with level and category.
	SkillModeDetailed SkillMode = "detailed"
)

// SkillList is a tagged union over the two skill representations.
// Exactly one of Simple or Detailed is populated, selected by Mode.
// The wire-shape inference (bare strings vs objects) lives only in the
// JSON codec below; everything else switches on Mode explicitly.
type SkillList struct {
	Mode     SkillMode
	Simple   []string
	Detailed []Skill
}

// Names flattens the list to display names regardless of mode.
func (s SkillList) Names() []string {
	if s.Mode == SkillModeDetailed {
		names := make([]string, 0, len(s.Detailed))
		for _, sk := range s.Detailed {
			names = append(names, sk.Name)
		}
		return names
	}
	return append([]string(nil), s.Simple...)
}

// Len returns the number of skills in the list.
func (s SkillList) Len() int {
	if s.Mode == SkillModeDetailed {
		return len(s.Detailed)
	}
	return len(s.Simple)
}

// MarshalJSON writes the wire shape matching the list's mode, so a
// detailed document persists and reloads as detailed, and a simple one
// as a bare string array.
func (s SkillList) MarshalJSON() ([]byte, error) {
	if s.Mode == SkillModeDetailed {
		if s.Detailed == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(s.Detailed)
	}
	if s.Simple == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Simple)
}

// UnmarshalJSON infers the mode from the shape of the first element:
// a string element selects simple mode, an object selects detailed.
// Mixed-shape arrays follow the first element; elements that do not
// match its shape are dropped. Null decodes as an empty simple list.
func (s *SkillList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = SkillList{Mode: SkillModeSimple}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		*s = SkillList{Mode: SkillModeSimple, Simple: []string{}}
		return nil
	}

	first := bytes.TrimSpace(raw[0])
	if len(first) > 0 && first[0] == '{' {
		detailed := make([]Skill, 0, len(raw))
		for _, elem := range raw {
			var sk Skill
			if err := json.Unmarshal(elem, &sk); err != nil {
				continue
			}
			detailed = append(detailed, sk)
		}
		*s = SkillList{Mode: SkillModeDetailed, Detailed: detailed}
		return nil
	}

	simple := make([]string, 0, len(raw))
	for _, elem := range raw {
		var name string
		if err := json.Unmarshal(elem, &name); err != nil {
			continue
		}
		simple = append(simple, name)
	}
	*s = SkillList{Mode: SkillModeSimple, Simple: simple}
	return nil
}

// ResumeDocument is the root value object of the builder. Section slices
// are ordered (insertion order = display order) and mutated only by
// whole-array replacement.
type ResumeDocument struct {
	Personal       PersonalInfo         `json:"personal"`
	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Skills         SkillList            `json:"skills"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`
	Languages      []LanguageEntry      `json:"languages"`
	Interests      []string             `json:"interests"`
	References     []ReferenceEntry     `json:"references"`
}

// NewResumeDocument returns an empty document with all sections initialized.
func NewResumeDocument() *ResumeDocument {
	return &ResumeDocument{
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Skills:         SkillList{Mode: SkillModeSimple, Simple: []string{}},
		Projects:       []ProjectEntry{},
		Certifications: []CertificationEntry{},
		Languages:      []LanguageEntry{},
		Interests:      []string{},
		References:     []ReferenceEntry{},
	}
}

// NextID returns the next locally-unique record ID for a section:
// max of existing ids + 1, or 1 for an empty section. IDs identify
// records within their own array only and are never persisted keys.
func NextID(existing []int) int {
	next := 1
	for _, id := range existing {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// DecodeDocument decodes persisted JSON into a ResumeDocument, coercing
// malformed or missing fields to safe defaults per field. It never fails:
// unexpected shapes from the remote store degrade to empty sections.
func DecodeDocument(data []byte) *ResumeDocument {
	doc := NewResumeDocument()
	if len(bytes.TrimSpace(data)) == 0 {
		return doc
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return doc
	}

	decodeField(fields, "personal", &doc.Personal)
	decodeField(fields, "experience", &doc.Experience)
	decodeField(fields, "education", &doc.Education)
	decodeField(fields, "skills", &doc.Skills)
	decodeField(fields, "projects", &doc.Projects)
	decodeField(fields, "certifications", &doc.Certifications)
	decodeField(fields, "languages", &doc.Languages)
	decodeField(fields, "interests", &doc.Interests)
	decodeField(fields, "references", &doc.References)
	doc.normalize()
	return doc
}

// decodeField unmarshals one field, leaving the destination's default
// in place when the field is absent or malformed.
func decodeField(fields map[string]json.RawMessage, key string, dst any) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	_ = json.Unmarshal(raw, dst)
}

// normalize restores the empty-slice defaults a lenient decode may have
// nulled out. Optional string fields already default to "" through the
// zero value.
func (d *ResumeDocument) normalize() {
	if d.Experience == nil {
		d.Experience = []ExperienceEntry{}
	}
	if d.Education == nil {
		d.Education = []EducationEntry{}
	}
	if d.Skills.Mode == "" {
		d.Skills.Mode = SkillModeSimple
	}
	if d.Skills.Mode == SkillModeSimple && d.Skills.Simple == nil {
		d.Skills.Simple = []string{}
	}
	if d.Projects == nil {
		d.Projects = []ProjectEntry{}
	}
	if d.Certifications == nil {
		d.Certifications = []CertificationEntry{}
	}
	if d.Languages == nil {
		d.Languages = []LanguageEntry{}
	}
	if d.Interests == nil {
		d.Interests = []string{}
	}
	if d.References == nil {
		d.References = []ReferenceEntry{}
	}
}
