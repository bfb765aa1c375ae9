package generator

import (
	"strings"

	"github.com/t14raptor/jscode/ast"
)

func (s *state) lineComment(text string) {
	if !s.settings.GenerateComments {
		return
	}
	if !s.settings.IndentAndAlign {
		s.plain("/* " + escapeComment(text) + " */")
		return
	}
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			s.plain("//")
		} else {
			s.plain("// " + line)
		}
		s.nl()
	}
}

func (s *state) jsDoc(doc *ast.JSDoc) {
	if !s.settings.GenerateComments || doc == nil {
		return
	}
	lines := docLines(doc)
	if len(lines) == 0 {
		return
	}
	if !s.settings.IndentAndAlign {
		s.plain("/** " + strings.Join(lines, " ") + " */")
		return
	}
	s.plain("/**")
	s.nl()
	for _, line := range lines {
		s.plain(strings.TrimRight(" * "+line, " "))
		s.nl()
	}
	s.plain(" */")
	s.nl()
}

// docLines lays out the comment body: main text, a separator, then the
// tag sections. Continuation lines of a tag are indented.
func docLines(doc *ast.JSDoc) []string {
	var lines []string
	if !doc.IsEmpty() {
		lines = append(lines, partLines(&doc.CommentPart)...)
	}
	if !doc.HasTagSection() {
		return lines
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}
	tag := func(head string, p *ast.CommentPart) {
		body := partLines(p)
		if len(body) == 0 {
			lines = append(lines, head)
			return
		}
		lines = append(lines, head+" "+body[0])
		for _, l := range body[1:] {
			lines = append(lines, "    "+l)
		}
	}
	for _, name := range doc.Params() {
		tag("@param "+name, doc.Param(name))
	}
	if p := doc.ReturnPart(); p != nil {
		tag("@return", p)
	}
	if p := doc.DeprecatedPart(); p != nil {
		tag("@deprecated", p)
	}
	for _, name := range doc.Tags() {
		var b strings.Builder
		b.WriteString("@" + name)
		attrs := doc.Tag(name)
		for _, k := range attrs.Keys() {
			v, _ := attrs.Get(k)
			b.WriteString(" " + k + "=" + `"` + v + `"`)
		}
		lines = append(lines, escapeComment(b.String()))
	}
	return lines
}

func partLines(p *ast.CommentPart) []string {
	if p.IsEmpty() {
		return nil
	}
	var b strings.Builder
	for _, f := range p.Fragments() {
		switch f := f.(type) {
		case string:
			b.WriteString(f)
		case ast.Type:
			b.WriteString("{@link " + f.TypeName() + "}")
		}
	}
	text := strings.ReplaceAll(escapeComment(b.String()), "\r\n", "\n")
	return strings.Split(text, "\n")
}
