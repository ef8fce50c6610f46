package stylesheet

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// importantRe matches a trailing !important flag, allowing whitespace
// between the bang and the keyword.
var importantRe = regexp.MustCompile(`(?i)\s*!\s*important\s*$`)

// ParseError is returned for unbalanced or truncated input.
type ParseError struct {
	Pos     Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

type token struct {
	tt     css.TokenType
	data   string
	offset int
}

type parser struct {
	src        []byte
	toks       []token
	i          int
	lineStarts []int
}

// Parse builds a tree from CSS source. Tokens come from the tdewolff CSS
// lexer; the tree shape (blocks, declarations, comments) is assembled here.
func Parse(src []byte) (*Root, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks, lineStarts: lineStarts(src)}
	nodes, err := p.block(nil)
	if err != nil {
		return nil, err
	}
	return &Root{Nodes: nodes, Source: src, lineStarts: p.lineStarts}, nil
}

func lex(src []byte) ([]token, error) {
	l := css.NewLexer(parse.NewInputBytes(src))
	var toks []token
	offset := 0
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("tokenizing: %w", err)
			}
			return toks, nil
		}
		toks = append(toks, token{tt: tt, data: string(data), offset: offset})
		offset += len(data)
	}
}

func lineStarts(src []byte) []int {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (p *parser) position(offset int) Position {
	return position(p.lineStarts, offset)
}

func position(starts []int, offset int) Position {
	line := sort.Search(len(starts), func(i int) bool {
		return starts[i] > offset
	})
	return Position{
		Line:   line,
		Column: offset - starts[line-1] + 1,
		Offset: offset,
	}
}

func (p *parser) errorf(offset int, format string, args ...any) error {
	return &ParseError{Pos: p.position(offset), Message: fmt.Sprintf(format, args...)}
}

func (p *parser) peek() (token, bool) {
	if p.i >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.i], true
}

func (p *parser) skipWhitespace() {
	for p.i < len(p.toks) && p.toks[p.i].tt == css.WhitespaceToken {
		p.i++
	}
}

// block parses nodes until the closing brace of parent, or until end of
// input when parent is nil.
func (p *parser) block(parent *Node) ([]*Node, error) {
	var nodes []*Node
	for {
		p.skipWhitespace()
		t, ok := p.peek()
		if !ok {
			if parent != nil {
				return nil, p.errorf(parent.Start.Offset, "unclosed block")
			}
			return nodes, nil
		}

		switch t.tt {
		case css.CommentToken:
			p.i++
			nodes = append(nodes, p.comment(t, parent))
		case css.RightBraceToken:
			if parent == nil {
				return nil, p.errorf(t.offset, "unexpected }")
			}
			p.i++
			parent.End = p.position(t.offset)
			return nodes, nil
		case css.SemicolonToken, css.CDOToken, css.CDCToken:
			p.i++
		case css.AtKeywordToken:
			n, err := p.atRule(parent)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n...)
		default:
			n, err := p.ruleOrDecl(parent)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n...)
		}
	}
}

func (p *parser) comment(t token, parent *Node) *Node {
	text := strings.TrimPrefix(t.data, "/*")
	text = strings.TrimSuffix(text, "*/")
	return &Node{
		Kind:   CommentNode,
		Text:   strings.TrimSpace(text),
		Start:  p.position(t.offset),
		End:    p.position(t.offset + len(t.data) - 1),
		Parent: parent,
	}
}

// prelude collects tokens up to a top-level ';', '{' or '}' and returns
// them along with the terminating token (zero token at end of input).
// The terminator is consumed unless it is '}'.
func (p *parser) prelude() ([]token, token) {
	var toks []token
	depth := 0
	for p.i < len(p.toks) {
		t := p.toks[p.i]
		switch t.tt {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		case css.SemicolonToken, css.LeftBraceToken:
			if depth == 0 {
				p.i++
				return toks, t
			}
		case css.RightBraceToken:
			return toks, t
		}
		toks = append(toks, t)
		p.i++
	}
	return toks, token{}
}

// splitComments removes comment tokens from toks. A comment that sat
// between two non-whitespace tokens is replaced by a single space so
// "1px/**/2px" keeps its two words; one that follows whitespace takes
// the whitespace after it along.
func (p *parser) splitComments(toks []token, parent *Node) ([]token, []*Node) {
	var kept []token
	var comments []*Node
	dropSpace := false
	for i, t := range toks {
		if t.tt == css.WhitespaceToken && dropSpace {
			continue
		}
		dropSpace = false
		if t.tt != css.CommentToken {
			kept = append(kept, t)
			continue
		}
		comments = append(comments, p.comment(t, parent))
		if len(kept) == 0 || kept[len(kept)-1].tt == css.WhitespaceToken {
			dropSpace = true
			continue
		}
		if i+1 < len(toks) && toks[i+1].tt != css.WhitespaceToken && toks[i+1].tt != css.CommentToken {
			kept = append(kept, token{tt: css.WhitespaceToken, data: " ", offset: t.offset})
		}
	}
	return kept, comments
}

func (p *parser) atRule(parent *Node) ([]*Node, error) {
	kw := p.toks[p.i]
	p.i++
	raw, term := p.prelude()
	params, comments := p.splitComments(raw, parent)
	n := &Node{
		Kind:   AtRuleNode,
		Name:   strings.TrimPrefix(kw.data, "@"),
		Params: strings.TrimSpace(joinTokens(params)),
		Start:  p.position(kw.offset),
		Parent: parent,
	}
	n.End = p.endOf(kw, params)
	if term.tt == css.LeftBraceToken {
		n.HasBlock = true
		children, err := p.block(n)
		if err != nil {
			return nil, err
		}
		n.Nodes = children
	}
	return append(comments, n), nil
}

func (p *parser) ruleOrDecl(parent *Node) ([]*Node, error) {
	first := p.toks[p.i]
	raw, term := p.prelude()
	toks, comments := p.splitComments(raw, parent)
	start := p.position(first.offset)

	if term.tt == css.LeftBraceToken {
		n := &Node{
			Kind:     RuleNode,
			Selector: strings.TrimSpace(joinTokens(toks)),
			HasBlock: true,
			Start:    start,
			Parent:   parent,
		}
		children, err := p.block(n)
		if err != nil {
			return nil, err
		}
		n.Nodes = children
		return append(comments, n), nil
	}

	colon := -1
	for i, t := range toks {
		if t.tt == css.ColonToken {
			colon = i
			break
		}
	}
	if colon < 0 {
		return nil, p.errorf(first.offset, "unknown word %q", strings.TrimSpace(joinTokens(toks)))
	}

	valueToks := toks[colon+1:]
	valueStart := p.endOf(toks[colon], nil)
	hasValue := false
	for _, t := range valueToks {
		if t.tt != css.WhitespaceToken {
			valueStart = p.position(t.offset)
			hasValue = true
			break
		}
	}
	rawValue := ""
	for _, t := range raw {
		if hasValue && t.tt != css.WhitespaceToken && t.offset >= valueStart.Offset {
			rawValue = string(p.src[valueStart.Offset : t.offset+len(t.data)])
		}
	}
	value := strings.TrimSpace(joinTokens(valueToks))
	important := false
	if loc := importantRe.FindStringIndex(value); loc != nil {
		important = true
		value = strings.TrimSpace(value[:loc[0]])
	}
	return append(comments, &Node{
		Kind:       DeclNode,
		Prop:       strings.TrimSpace(joinTokens(toks[:colon])),
		Value:      value,
		RawValue:   rawValue,
		ValueStart: valueStart,
		Important:  important,
		Start:      start,
		End:        p.endOf(first, toks),
		Parent:     parent,
	}), nil
}

// endOf returns the position of the last byte of the last non-whitespace
// token in toks, or of first when toks has none.
func (p *parser) endOf(first token, toks []token) Position {
	last := first
	for _, t := range toks {
		if t.tt != css.WhitespaceToken {
			last = t
		}
	}
	end := last.offset + len(last.data) - 1
	if end < last.offset {
		end = last.offset
	}
	return p.position(end)
}

func joinTokens(toks []token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.data)
	}
	return b.String()
}
