package generator

import (
	"bufio"
	"strings"
)

// printer is the output shared by every state of one render call.
type printer struct {
	out      *bufio.Writer
	settings *Settings

	level  int
	indent string
	// bol is set after a newline; the indent is written lazily before
	// the next token so blank lines carry no trailing whitespace.
	bol bool
}

type state struct {
	*printer
	node   any
	parent *state
}

// renderError carries a failure out of the recursive descent.
type renderError struct {
	err error
}

func (s *state) wrap(node any) *state {
	return &state{
		printer: s.printer,
		node:    node,
		parent:  s,
	}
}

func (s *state) fail(err error) {
	panic(renderError{err: err})
}

func (p *printer) plain(str string) {
	if str == "" {
		return
	}
	if p.bol {
		p.out.WriteString(p.indent)
		p.bol = false
	}
	p.out.WriteString(str)
}

func (p *printer) nl() {
	if p.settings.IndentAndAlign {
		p.out.WriteString(p.settings.Newline)
		p.bol = true
	}
}

func (p *printer) indentIn() {
	if p.settings.IndentAndAlign {
		p.level++
		p.indent = strings.Repeat(p.settings.IndentUnit, p.level)
	}
}

func (p *printer) outdent() {
	if p.settings.IndentAndAlign {
		if p.level == 0 {
			panic("generator: outdent below zero")
		}
		p.level--
		p.indent = strings.Repeat(p.settings.IndentUnit, p.level)
	}
}
