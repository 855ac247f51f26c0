// Package syllabus extracts course records from curriculum documents.
//
// A document is reduced to a token stream by a Tokenizer and folded into
// Course records by an Assembler:
//
//	doc, _ := goquery.NewDocumentFromReader(r)
//	region, _ := syllabus.Region(doc, 0)
//	courses := syllabus.Assemble(syllabus.Tokenize(region, opts), opts)
package syllabus

import (
	"errors"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

var ErrNoTable = errors.New("no such table")

type Options struct {
	// Variant defaults to VariantGeneric.
	Variant Variant
	// Branch is stamped on every course as FieldBranch.
	Branch string
	// Logger receives diagnostics about malformed courses. Nil discards them.
	Logger *zerolog.Logger
}

func (o Options) variant() Variant {
	if o.Variant == "" {
		return VariantGeneric
	}
	return o.Variant
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

// Region selects the course region of doc: the body-level element holding
// the table'th table (zero based), followed by all of its element siblings.
func Region(doc *goquery.Document, table int) (*goquery.Selection, error) {
	tables := doc.Find("table")
	if table < 0 || table >= tables.Length() {
		return nil, fmt.Errorf("%w: index %d, document has %d", ErrNoTable, table, tables.Length())
	}

	start := tables.Eq(table)
	for {
		parent := start.Parent()
		if parent.Length() == 0 || parent.Is("body") {
			break
		}
		start = parent
	}
	return start.AddSelection(start.NextAll()), nil
}

// Tokenize runs a Tokenizer over every node of region.
func Tokenize(region *goquery.Selection, opts Options) []Token {
	t := NewTokenizer(opts)
	for _, n := range region.Nodes {
		t.Visit(n)
	}
	return t.Tokens()
}

// Assemble folds tokens into courses.
func Assemble(tokens []Token, opts Options) []Course {
	a := NewAssembler(opts)
	for _, tok := range tokens {
		a.Eat(tok)
	}
	return a.Finish()
}

// Parse reads an HTML document and extracts the courses that follow its
// table'th table.
func Parse(r io.Reader, table int, opts Options) ([]Course, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse document: %w", err)
	}
	region, err := Region(doc, table)
	if err != nil {
		return nil, err
	}
	return Assemble(Tokenize(region, opts), opts), nil
}
