package syllabus

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/net/html"
)

func (t *Tokenizer) visitTable(table *html.Node) {
	cells := cellTexts(table)

	if t.variant.extended() {
		if h, ok := t.tabularHeader(cells); ok {
			t.emit(h)
		}
		return
	}
	t.pushHeader(t.genericHeader(cells))
}

func cellTexts(table *html.Node) []string {
	var cells []string
	goquery.NewDocumentFromNode(table).Find("th, td").Each(func(_ int, s *goquery.Selection) {
		cells = append(cells, strings.TrimSpace(s.Text()))
	})
	return cells
}

// genericHeader reads label/value cell pairs:
//
//	| Course Title | : | Data Structures |
//	| Course Code  | CSDS12 |
//
// A label cell selects the field, the next non-empty cell fills it.
func (t *Tokenizer) genericHeader(cells []string) CourseHeader {
	h := CourseHeader{}

	var field string
	for _, text := range cells {
		if f, ok := findInfoField(text); ok {
			field = f
			continue
		}
		if field == "" || text == ":" {
			continue
		}
		// an empty prerequisites cell means "none"
		if text == "" && field != FieldPrerequisites {
			continue
		}
		h[field] = text
		field = ""
	}

	for _, f := range infoFields {
		if _, ok := h[f]; ok {
			continue
		}
		t.log.Warn().
			Str("field", f).
			Strs("cells", cells).
			Str("course", h[FieldCode]).
			Msg("missing course field")
	}
	return h
}

// pushHeader appends a generic header, looking back one token: a heading
// repeating the course title is replaced, and a header directly after
// another header completes it instead of starting a new course.
func (t *Tokenizer) pushHeader(h CourseHeader) {
	switch last := t.last().(type) {
	case Text:
		title, ok := h[FieldTitle]
		if ok && strings.EqualFold(last.Value, strings.TrimSpace(title)) {
			t.replaceLast(h)
			return
		}
	case CourseHeader:
		t.replaceLast(last.Merge(h))
		return
	}
	t.emit(h)
}

// tabularHeader reads a single course row:
//
//	| code | title | type | - | credits |
func (t *Tokenizer) tabularHeader(cells []string) (CourseHeader, bool) {
	if len(cells) != 5 {
		t.log.Warn().
			Strs("cells", cells).
			Int("count", len(cells)).
			Msg("invalid course table: expected 5 cells")
		return nil, false
	}

	code := cells[0]
	err := validation.Validate(code,
		validation.Required,
		validation.Match(codePattern).Error("must be four capital letters followed by two digits"),
	)
	if err != nil {
		t.log.Warn().
			Err(err).
			Str("code", code).
			Strs("cells", cells).
			Msg("invalid course table: bad course code")
		return nil, false
	}

	return CourseHeader{
		FieldCode:    code,
		FieldTitle:   cells[1],
		FieldType:    cells[2],
		FieldCredits: cells[4],
	}, true
}
