package syllabus

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tokenizer reduces the nodes of a course region to a token stream.
// Nodes are fed one at a time with Visit, in document order.
type Tokenizer struct {
	variant  Variant
	sections []string
	log      zerolog.Logger

	tokens []Token
}

func NewTokenizer(opts Options) *Tokenizer {
	v := opts.variant()
	return &Tokenizer{
		variant:  v,
		sections: v.Sections(),
		log:      opts.logger(),
	}
}

// Tokens returns the tokens produced so far.
func (t *Tokenizer) Tokens() []Token {
	return t.tokens
}

func (t *Tokenizer) Visit(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		// bare text, only reachable through block quotations
		t.visitText(n.Data, LevelPlain)
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.Table:
		t.visitTable(n)

	case atom.Blockquote:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			t.Visit(c)
		}

	case atom.Ul, atom.Ol:
		t.emit(ListStart)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			t.Visit(c)
		}
		t.emit(ListEnd)

	default:
		t.visitText(nodeText(n), level(n))
	}
}

func level(n *html.Node) int {
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3:
		return LevelHeading
	case atom.H4:
		return LevelSubheading
	case atom.H5:
		return LevelMinor
	case atom.H6:
		return LevelSmall
	case atom.Strong, atom.B:
		return LevelStrong
	}
	return LevelPlain
}

func (t *Tokenizer) visitText(text string, level int) {
	text = strings.TrimSpace(text)
	// semester labels are styled like section headings
	if level != LevelPlain && strings.Contains(text, "Semester") {
		return
	}
	if text == "" {
		return
	}

	phrase, ok := matchPrefix(text, t.sections)
	if !ok {
		t.emit(Text{Value: text, Level: level})
		return
	}

	t.emit(SectionHeader(phrase))

	rest := text[len(phrase):]
	if t.variant.extended() {
		rest = strings.TrimPrefix(rest, "s")
		rest = strings.TrimSpace(rest)
		rest = strings.TrimPrefix(rest, ":")
	}
	rest = strings.TrimSpace(rest)
	if rest == "" || rest == ":" {
		return
	}
	level = LevelHeading

	// "Prerequisites: NoneCourse Objectives" - the next heading was
	// flattened onto the prerequisite line.
	if t.variant.extended() && phrase == FieldPrerequisites {
		if i := indexFold(rest, "course"); i >= 0 {
			if head := strings.TrimSpace(rest[:i]); head != "" {
				t.emit(Text{Value: head, Level: level})
			}
			t.visitText(rest[i:], LevelHeading)
			return
		}
	}

	t.emit(Text{Value: rest, Level: level})
}

func (t *Tokenizer) emit(tok Token) {
	t.tokens = append(t.tokens, tok)
}

func (t *Tokenizer) last() Token {
	if len(t.tokens) == 0 {
		return nil
	}
	return t.tokens[len(t.tokens)-1]
}

func (t *Tokenizer) replaceLast(tok Token) {
	t.tokens[len(t.tokens)-1] = tok
}

func nodeText(n *html.Node) string {
	return goquery.NewDocumentFromNode(n).Text()
}

// indexFold is strings.Index ignoring ASCII/Unicode case.
func indexFold(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}
