// Package ast defines the syntax tree of the language: source units,
// items, statements, expressions, types and the nested Yul assembly
// grammar, plus the dual read-only/mutating traversal over all of them
// (see walk.go).
//
// The tree is produced by the parser and owned as a strict tree: every
// node has exactly one parent. Identifiers reference interned symbols
// of the active session and are shared, not owned. Later passes may
// rewrite nodes in place through the mutating traversal; nothing in
// this package performs semantic validation.
package ast

import (
	"helios/internal/source"
)

// SourceUnit is the root of one parsed file.
type SourceUnit struct {
	Items []*Item
}

// Span covers all items of the unit; dummy for an empty unit.
func (u *SourceUnit) Span() source.Span {
	if len(u.Items) == 0 {
		return source.DummySpan
	}
	return u.Items[0].Span.To(u.Items[len(u.Items)-1].Span)
}

// CommentKind distinguishes `///` line and `/** */` block doc comments.
type CommentKind uint8

const (
	CommentLine CommentKind = iota
	CommentBlock
)

// DocComment is one leading documentation comment. Symbol holds the
// comment text without delimiters.
type DocComment struct {
	Kind   CommentKind
	Span   source.Span
	Symbol source.Symbol
}

// DocComments are the doc comments leading an item or statement, in
// source order.
type DocComments []DocComment

// Span covers all comments of the group.
func (d DocComments) Span() source.Span {
	span := source.DummySpan
	for _, c := range d {
		span = span.To(c.Span)
	}
	return span
}

// Path is a dot-separated chain of identifiers (`a.b.c`). Never empty
// for parser-produced nodes.
type Path []source.Ident

// PathFrom builds a single-segment path.
func PathFrom(ident source.Ident) Path {
	return Path{ident}
}

// First returns the leading segment.
func (p Path) First() source.Ident {
	return p[0]
}

// Last returns the final segment.
func (p Path) Last() source.Ident {
	return p[len(p)-1]
}

// Span covers all segments.
func (p Path) Span() source.Span {
	if len(p) == 0 {
		return source.DummySpan
	}
	return p[0].Span.To(p[len(p)-1].Span)
}

// StrLit is a string literal kept as raw text: import paths, assembly
// dialects and flags.
type StrLit struct {
	Span  source.Span
	Value source.Symbol
}
