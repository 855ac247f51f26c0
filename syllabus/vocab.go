package syllabus

import (
	"fmt"
	"regexp"
	"strings"
)

// Metadata fields, populated from course tables.
const (
	FieldTitle         = "course title"
	FieldCode          = "course code"
	FieldCredits       = "number of credits"
	FieldPrerequisites = "prerequisites"
	FieldType          = "course type"
)

// Free-text sections.
const (
	SectionContent            = "course content"
	SectionLearningObjectives = "course learning objectives"
	SectionObjectives         = "course objectives"
	SectionOutcomes           = "course outcomes"
	SectionBooks              = "books"
	SectionReferenceBooks     = "reference books"
)

// FieldBranch is stamped on every course with the origin tag supplied by the
// caller. It never comes from the document.
const FieldBranch = "branch"

var infoFields = []string{
	FieldTitle,
	FieldCode,
	FieldCredits,
	FieldPrerequisites,
	FieldType,
}

// InfoFields returns the metadata field vocabulary in table order.
func InfoFields() []string {
	return append([]string(nil), infoFields...)
}

var (
	genericSections = []string{
		SectionContent,
		SectionLearningObjectives,
		SectionObjectives,
		SectionOutcomes,
		SectionBooks,
		SectionReferenceBooks,
	}
	extendedSections = append(append([]string(nil), genericSections...), FieldPrerequisites)
)

// codePattern validates course codes in tabular documents.
var codePattern = regexp.MustCompile(`^[A-Z]{4}[0-9]{2}$`)

// unitPattern detects "Unit I", "UNIT-2", "Unit IV:" style headings.
var unitPattern = regexp.MustCompile(`(?i)^unit[\s\-–:.]*(?:[ivx]+|\d+)\b`)

func isUnitHeading(text string) bool {
	return unitPattern.MatchString(text)
}

// Variant selects how a document family lays out its courses.
type Variant string

const (
	// VariantGeneric documents describe each course with a label/value
	// metadata table and use the base section phrases.
	VariantGeneric Variant = "generic"
	// VariantExtended documents put each course in a single five-cell table
	// row and also treat "prerequisites" as a section phrase.
	VariantExtended Variant = "extended"
)

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantGeneric, VariantExtended:
		return v, nil
	case "":
		return VariantGeneric, nil
	}
	return "", fmt.Errorf("unknown document variant %q", s)
}

func (v Variant) extended() bool {
	return v == VariantExtended
}

// Sections returns the section phrases recognised in this variant.
func (v Variant) Sections() []string {
	if v.extended() {
		return append([]string(nil), extendedSections...)
	}
	return append([]string(nil), genericSections...)
}

// matchPrefix returns the first phrase that text starts with, ignoring case.
// The match covers exactly len(phrase) bytes of text.
func matchPrefix(text string, phrases []string) (string, bool) {
	for _, p := range phrases {
		if len(text) >= len(p) && strings.EqualFold(text[:len(p)], p) {
			return p, true
		}
	}
	return "", false
}

func findInfoField(text string) (string, bool) {
	text = strings.Join(strings.Fields(text), " ")
	return matchPrefix(text, infoFields)
}

func isInfoField(name string) bool {
	for _, f := range infoFields {
		if f == name {
			return true
		}
	}
	return false
}
