package syllabus

import (
	"strings"

	"github.com/rs/zerolog"
)

// Assembler folds a token stream into course records. Tokens are consumed
// one at a time with Eat; Finish seals the last course.
type Assembler struct {
	variant Variant
	branch  string
	log     zerolog.Logger

	courses []Course
	course  Course
	field   string
	text    strings.Builder
	inList  int

	// untrimmed bodies of the fields flushed into course
	raw map[string]string
}

func NewAssembler(opts Options) *Assembler {
	return &Assembler{
		variant: opts.variant(),
		branch:  opts.Branch,
		log:     opts.logger(),
	}
}

func (a *Assembler) Eat(tok Token) {
	switch v := tok.(type) {
	case CourseHeader:
		a.startCourse(v)

	case SectionHeader:
		a.startField(string(v))
	case InfoHeader:
		a.startField(string(v))

	case Text:
		if a.course == nil {
			a.log.Debug().Str("text", v.Value).Msg("dropped text before first course")
			return
		}

		unit := isUnitHeading(v.Value)
		if unit && a.field != SectionContent {
			a.endField()
			a.field = SectionContent
		}

		switch {
		case a.inList > 0:
			a.text.WriteString("- ")
		case unit:
			a.text.WriteString("\n\n## ")
		}
		a.text.WriteString(v.Value)
		a.text.WriteByte('\n')
		if unit {
			a.text.WriteByte('\n')
		}

	case ListBoundary:
		if v == ListStart {
			a.inList++
		} else {
			a.inList--
		}
	}
}

// Finish closes the open course and returns every course in document order.
func (a *Assembler) Finish() []Course {
	a.endCourse()
	return a.courses
}

func (a *Assembler) startCourse(h CourseHeader) {
	h = h.clone()
	if a.variant.extended() {
		if _, ok := h[FieldPrerequisites]; !ok {
			h[FieldPrerequisites] = ""
		}
	}

	code, ok := h[FieldCode]
	if !ok {
		a.log.Debug().Str("header", h.String()).Msg("dropped course header without code")
		return
	}
	h[FieldBranch] = a.branch

	for _, f := range infoFields {
		if _, ok := h[f]; !ok {
			a.log.Warn().Str("field", f).Str("course", code).Msg("missing course field")
		}
	}

	a.endCourse()
	a.course = Course(h)
	a.raw = make(map[string]string)
}

func (a *Assembler) startField(name string) {
	a.endField()
	a.field = name
}

// endField closes the open field once it has text. Until then the field
// stays open and the buffer keeps growing, so text seen with no field open
// lands in the next one. A field seen twice in a course reads as if both
// bodies were written in one run.
func (a *Assembler) endField() {
	if a.course == nil || a.field == "" || strings.TrimSpace(a.text.String()) == "" {
		return
	}

	a.raw[a.field] += a.text.String()
	a.course[a.field] = strings.TrimSpace(a.raw[a.field])
	a.text.Reset()
	a.field = ""
	a.inList = 0
}

func (a *Assembler) endCourse() {
	a.endField()
	if a.course == nil {
		return
	}
	a.courses = append(a.courses, a.course)
	a.course = nil
}
