package syllabus

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func course(code string) CourseHeader {
	return CourseHeader{
		FieldTitle:         "Title " + code,
		FieldCode:          code,
		FieldCredits:       "4",
		FieldPrerequisites: "",
		FieldType:          "Core",
	}
}

func TestAssembler(t *testing.T) {
	cases := []struct {
		name   string
		tokens []Token
		field  string
		want   string
	}{
		{
			name: "paragraph under section",
			tokens: []Token{
				SectionHeader(SectionObjectives),
				Text{Value: "Understand X.", Level: LevelPlain},
			},
			field: SectionObjectives,
			want:  "Understand X.",
		},
		{
			name: "list items",
			tokens: []Token{
				SectionHeader(SectionBooks),
				ListStart,
				Text{Value: "Book A", Level: LevelPlain},
				Text{Value: "Book B", Level: LevelPlain},
				ListEnd,
			},
			field: SectionBooks,
			want:  "- Book A\n- Book B",
		},
		{
			name: "units without section",
			tokens: []Token{
				Text{Value: "Unit I Introduction", Level: LevelPlain},
				Text{Value: "Unit II Advanced", Level: LevelPlain},
			},
			field: SectionContent,
			want:  "## Unit I Introduction\n\n\n\n## Unit II Advanced",
		},
		{
			name: "unit body",
			tokens: []Token{
				SectionHeader(SectionContent),
				Text{Value: "UNIT-1: Arrays", Level: LevelHeading},
				Text{Value: "Static and dynamic arrays.", Level: LevelPlain},
				ListStart,
				Text{Value: "Resizing", Level: LevelPlain},
				ListEnd,
			},
			field: SectionContent,
			want:  "## UNIT-1: Arrays\n\nStatic and dynamic arrays.\n- Resizing",
		},
		{
			name: "unit inside a list keeps the item marker",
			tokens: []Token{
				SectionHeader(SectionContent),
				ListStart,
				Text{Value: "Unit III Graphs", Level: LevelPlain},
				ListEnd,
			},
			field: SectionContent,
			want:  "- Unit III Graphs",
		},
		{
			name: "repeated section continues",
			tokens: []Token{
				SectionHeader(SectionBooks),
				Text{Value: "Book A", Level: LevelPlain},
				SectionHeader(SectionOutcomes),
				Text{Value: "Apply Y.", Level: LevelPlain},
				SectionHeader(SectionBooks),
				Text{Value: "Book B", Level: LevelPlain},
			},
			field: SectionBooks,
			want:  "Book A\nBook B",
		},
		{
			name: "units split by another section",
			tokens: []Token{
				Text{Value: "Unit I Intro", Level: LevelPlain},
				SectionHeader(SectionBooks),
				Text{Value: "Book A", Level: LevelPlain},
				Text{Value: "Unit II More", Level: LevelPlain},
			},
			field: SectionContent,
			want:  "## Unit I Intro\n\n\n\n## Unit II More",
		},
		{
			name: "text before the first section flows into it",
			tokens: []Token{
				Text{Value: "L T P C 3 1 0 4", Level: LevelPlain},
				SectionHeader(SectionObjectives),
				Text{Value: "Understand X.", Level: LevelPlain},
			},
			field: SectionObjectives,
			want:  "L T P C 3 1 0 4\nUnderstand X.",
		},
		{
			name: "text before a unit flows into course content",
			tokens: []Token{
				Text{Value: "Lecture hours: 40", Level: LevelPlain},
				Text{Value: "Unit I Intro", Level: LevelPlain},
			},
			field: SectionContent,
			want:  "Lecture hours: 40\n\n\n## Unit I Intro",
		},
		{
			name: "empty section keeps list nesting",
			tokens: []Token{
				ListStart,
				SectionHeader(SectionBooks),
				Text{Value: "Book A", Level: LevelPlain},
				ListEnd,
				Text{Value: "Book B", Level: LevelPlain},
			},
			field: SectionBooks,
			want:  "- Book A\nBook B",
		},
		{
			name: "flushed section resets list nesting",
			tokens: []Token{
				SectionHeader(SectionBooks),
				ListStart,
				Text{Value: "Book A", Level: LevelPlain},
				SectionHeader(SectionOutcomes),
				Text{Value: "Apply Y.", Level: LevelPlain},
				ListEnd,
				ListStart,
				Text{Value: "Apply Z.", Level: LevelPlain},
			},
			field: SectionOutcomes,
			want:  "Apply Y.\nApply Z.",
		},
		{
			name: "prerequisites marker",
			tokens: []Token{
				InfoHeader(FieldPrerequisites),
				Text{Value: "Discrete maths", Level: LevelPlain},
			},
			field: FieldPrerequisites,
			want:  "Discrete maths",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tokens := append([]Token{course("CSDS12")}, c.tokens...)
			courses := Assemble(tokens, Options{})
			require.Len(t, courses, 1)
			assert.Equal(t, c.want, courses[0][c.field])
		})
	}
}

func TestAssemblerUnitRedirect(t *testing.T) {
	courses := Assemble([]Token{
		course("CSDS12"),
		SectionHeader(SectionBooks),
		Text{Value: "Book A", Level: LevelPlain},
		Text{Value: "Unit IV Trees", Level: LevelHeading},
		Text{Value: "Binary trees.", Level: LevelPlain},
	}, Options{})

	require.Len(t, courses, 1)
	assert.Equal(t, "Book A", courses[0][SectionBooks])
	assert.Equal(t, "## Unit IV Trees\n\nBinary trees.", courses[0][SectionContent])
}

func TestAssemblerEmptyFieldsAreNotSet(t *testing.T) {
	courses := Assemble([]Token{
		course("CSDS12"),
		SectionHeader(SectionBooks),
		SectionHeader(SectionObjectives),
		Text{Value: "   ", Level: LevelPlain},
		SectionHeader(SectionOutcomes),
	}, Options{})

	require.Len(t, courses, 1)
	for _, f := range []string{SectionBooks, SectionObjectives, SectionOutcomes} {
		assert.NotContains(t, courses[0], f)
	}
}

func TestAssemblerCourses(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	courses := Assemble([]Token{
		Text{Value: "Preface", Level: LevelPlain},
		course("CSDS12"),
		SectionHeader(SectionBooks),
		Text{Value: "Book A", Level: LevelPlain},
		CourseHeader{FieldTitle: "Semester table"},
		Text{Value: "Book B", Level: LevelPlain},
		CourseHeader{FieldCode: "CSAL21", FieldTitle: "Algorithms"},
		SectionHeader(SectionObjectives),
		Text{Value: "Learn sorting.", Level: LevelPlain},
	}, Options{Branch: "cse", Logger: &logger})

	require.Len(t, courses, 2)

	assert.Equal(t, Course{
		FieldTitle:         "Title CSDS12",
		FieldCode:          "CSDS12",
		FieldCredits:       "4",
		FieldPrerequisites: "",
		FieldType:          "Core",
		FieldBranch:        "cse",
		SectionBooks:       "Book A\nBook B",
	}, courses[0])

	assert.Equal(t, Course{
		FieldTitle:        "Algorithms",
		FieldCode:         "CSAL21",
		FieldBranch:       "cse",
		SectionObjectives: "Learn sorting.",
	}, courses[1])

	log := buf.String()
	assert.Contains(t, log, "dropped course header without code")
	assert.Contains(t, log, "dropped text before first course")
	assert.Contains(t, log, `"field":"number of credits"`)
	assert.Contains(t, log, `"field":"course type"`)
}

func TestAssemblerExtendedPrerequisites(t *testing.T) {
	header := CourseHeader{FieldCode: "CSDS12", FieldTitle: "Data Structures", FieldType: "Core", FieldCredits: "4"}

	courses := Assemble([]Token{header}, Options{Variant: VariantExtended})
	require.Len(t, courses, 1)
	assert.Equal(t, "", courses[0][FieldPrerequisites])
	assert.Contains(t, courses[0], FieldPrerequisites)

	courses = Assemble([]Token{header}, Options{})
	require.Len(t, courses, 1)
	assert.NotContains(t, courses[0], FieldPrerequisites)

	courses = Assemble([]Token{
		header,
		SectionHeader(FieldPrerequisites),
		Text{Value: "None", Level: LevelHeading},
	}, Options{Variant: VariantExtended})
	require.Len(t, courses, 1)
	assert.Equal(t, "None", courses[0][FieldPrerequisites])
}

func TestAssemblerDoesNotMutateTokens(t *testing.T) {
	header := course("CSDS12")
	courses := Assemble([]Token{header, SectionHeader(SectionBooks), Text{Value: "Book A"}}, Options{Branch: "cse"})

	require.Len(t, courses, 1)
	assert.NotContains(t, header, FieldBranch)
	assert.NotContains(t, header, SectionBooks)
}

func TestAssemblerNoTokens(t *testing.T) {
	assert.Empty(t, Assemble(nil, Options{}))
}
