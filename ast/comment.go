package ast

import (
	"fmt"
	"slices"
)

// CommentPart is an ordered list of text and type-reference fragments.
type CommentPart struct {
	fragments []any
}

// Add appends text, a fmt.Stringer's text or a Type reference.
func (p *CommentPart) Add(v any) error {
	switch v := v.(type) {
	case string:
		p.fragments = append(p.fragments, v)
	case Type:
		p.fragments = append(p.fragments, v)
	case fmt.Stringer:
		p.fragments = append(p.fragments, v.String())
	default:
		return &CommentFragmentError{Value: v}
	}
	return nil
}

// Append appends text.
func (p *CommentPart) Append(text string) *CommentPart {
	p.fragments = append(p.fragments, text)
	return p
}

// Link appends a reference to t.
func (p *CommentPart) Link(t Type) *CommentPart {
	p.fragments = append(p.fragments, t)
	return p
}

// Fragments returns the fragments; each is a string or a Type.
func (p *CommentPart) Fragments() []any { return p.fragments }

func (p *CommentPart) IsEmpty() bool { return p == nil || len(p.fragments) == 0 }

// TagAttrs is the ordered attribute list of a custom JSDoc tag.
type TagAttrs struct {
	keys   []string
	values map[string]string
}

// Set sets attribute key, keeping the position of an existing key.
func (a *TagAttrs) Set(key, value string) *TagAttrs {
	if a.values == nil {
		a.values = map[string]string{}
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
	return a
}

func (a *TagAttrs) Get(key string) (string, bool) {
	v, ok := a.values[key]
	return v, ok
}

func (a *TagAttrs) Keys() []string { return slices.Clone(a.keys) }

// JSDoc is a /** ... */ documentation comment. The embedded part is the
// main text; parameters, return, deprecation and custom tags follow it
// in that order.
type JSDoc struct {
	CommentPart

	params     []string
	paramDocs  map[string]*CommentPart
	ret        *CommentPart
	deprecated *CommentPart
	tags       []string
	tagAttrs   map[string]*TagAttrs
}

// Param returns the text for parameter name, creating it on first use.
func (d *JSDoc) Param(name string) *CommentPart {
	if d.paramDocs == nil {
		d.paramDocs = map[string]*CommentPart{}
	}
	p, ok := d.paramDocs[name]
	if !ok {
		p = &CommentPart{}
		d.paramDocs[name] = p
		d.params = append(d.params, name)
	}
	return p
}

// ParamOf returns the text for v.
func (d *JSDoc) ParamOf(v *Variable) *CommentPart { return d.Param(v.Name()) }

// Params returns the documented parameter names in order.
func (d *JSDoc) Params() []string { return d.params }

func (d *JSDoc) Return() *CommentPart {
	if d.ret == nil {
		d.ret = &CommentPart{}
	}
	return d.ret
}

func (d *JSDoc) Deprecated() *CommentPart {
	if d.deprecated == nil {
		d.deprecated = &CommentPart{}
	}
	return d.deprecated
}

// ReturnPart and DeprecatedPart return nil when the section is absent.
func (d *JSDoc) ReturnPart() *CommentPart     { return d.ret }
func (d *JSDoc) DeprecatedPart() *CommentPart { return d.deprecated }

// Tag returns the attributes of custom tag name, creating it on first use.
func (d *JSDoc) Tag(name string) *TagAttrs {
	if d.tagAttrs == nil {
		d.tagAttrs = map[string]*TagAttrs{}
	}
	a, ok := d.tagAttrs[name]
	if !ok {
		a = &TagAttrs{}
		d.tagAttrs[name] = a
		d.tags = append(d.tags, name)
	}
	return a
}

// Tags returns the custom tag names in order.
func (d *JSDoc) Tags() []string { return d.tags }

// HasTagSection reports whether any section after the main text exists.
func (d *JSDoc) HasTagSection() bool {
	return len(d.params) > 0 || d.ret != nil || d.deprecated != nil || len(d.tags) > 0
}
