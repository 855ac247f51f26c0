package syllabus

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/yuin/goldmark"
)

// Course is one extracted syllabus record, keyed by metadata field or
// section phrase. Section bodies use "## " sub-headings and "- " list items.
type Course map[string]string

func (c Course) Code() string  { return c[FieldCode] }
func (c Course) Title() string { return c[FieldTitle] }

// Fields returns the populated field names in sorted order.
func (c Course) Fields() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sections returns the names of the free-text fields of c.
func (c Course) Sections() []string {
	var sections []string
	for _, k := range c.Fields() {
		if k == FieldBranch || isInfoField(k) {
			continue
		}
		sections = append(sections, k)
	}
	return sections
}

// RenderHTML returns a copy of c with every section body converted from its
// Markdown markers to HTML. Metadata fields are copied unchanged.
func (c Course) RenderHTML(md goldmark.Markdown) (Course, error) {
	if md == nil {
		md = goldmark.New()
	}

	out := make(Course, len(c))
	for k, v := range c {
		out[k] = v
	}

	var buf bytes.Buffer
	for _, k := range c.Sections() {
		buf.Reset()
		if err := md.Convert([]byte(c[k]), &buf); err != nil {
			return nil, fmt.Errorf("could not render %q of %s: %w", k, c.Code(), err)
		}
		out[k] = buf.String()
	}
	return out, nil
}
