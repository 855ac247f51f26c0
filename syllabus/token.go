package syllabus

import (
	"fmt"
	"sort"
	"strings"
)

// Structural levels assigned to text runs. Lower is more prominent.
const (
	LevelHeading    = 2
	LevelSubheading = 3
	LevelMinor      = 4
	LevelSmall      = 5
	LevelStrong     = 6
	LevelPlain      = 7
)

type Kind uint8

const (
	KindText Kind = iota
	KindInfoHeader
	KindSectionHeader
	KindCourseHeader
	KindListBoundary
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInfoHeader:
		return "infoHeader"
	case KindSectionHeader:
		return "sectionHeader"
	case KindCourseHeader:
		return "courseHeader"
	case KindListBoundary:
		return "list"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Token is one classified piece of a course region, in document order.
type Token interface {
	Kind() Kind
	String() string
}

type Text struct {
	Value string
	Level int
}

// InfoHeader marks a metadata field whose value follows as text. The
// tokenizer reports every matched phrase as a SectionHeader; the assembler
// accepts either.
type InfoHeader string

type SectionHeader string

// CourseHeader holds the metadata extracted from one course table, keyed by
// metadata field name.
type CourseHeader map[string]string

type ListBoundary bool

const (
	ListStart ListBoundary = true
	ListEnd   ListBoundary = false
)

func (Text) Kind() Kind          { return KindText }
func (InfoHeader) Kind() Kind    { return KindInfoHeader }
func (SectionHeader) Kind() Kind { return KindSectionHeader }
func (CourseHeader) Kind() Kind  { return KindCourseHeader }
func (ListBoundary) Kind() Kind  { return KindListBoundary }

func (t Text) String() string {
	return fmt.Sprintf("text(%d, %q)", t.Level, t.Value)
}

func (h InfoHeader) String() string {
	return fmt.Sprintf("infoHeader(%q)", string(h))
}

func (h SectionHeader) String() string {
	return fmt.Sprintf("sectionHeader(%q)", string(h))
}

func (h CourseHeader) String() string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("courseHeader(")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%q", k, h[k])
	}
	b.WriteString(")")
	return b.String()
}

func (l ListBoundary) String() string {
	if l {
		return "list(start)"
	}
	return "list(end)"
}

// Merge returns a new header holding the fields of h plus the fields of
// other that h lacks or leaves empty. A value already set in h wins over a
// conflicting one in other. Neither input is modified.
func (h CourseHeader) Merge(other CourseHeader) CourseHeader {
	merged := make(CourseHeader, len(h)+len(other))
	for k, v := range h {
		merged[k] = v
	}
	for k, v := range other {
		if merged[k] == "" {
			merged[k] = v
		}
	}
	return merged
}

func (h CourseHeader) clone() CourseHeader {
	return h.Merge(nil)
}
