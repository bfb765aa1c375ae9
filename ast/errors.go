package ast

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the invariant a construction or render error violates.
type ErrorKind int

const (
	KindInvalidIdentifier ErrorKind = iota + 1
	KindDuplicateName
	KindUnresolvedCallee
	KindPosition
	KindMalformedCase
	KindRebind
	KindCommentFragment
	KindInvalidRegex
	KindUnsupportedValue
)

var kind2string = [...]string{
	KindInvalidIdentifier: "InvalidIdentifier",
	KindDuplicateName:     "DuplicateName",
	KindUnresolvedCallee:  "UnresolvedCallee",
	KindPosition:          "Position",
	KindMalformedCase:     "MalformedCase",
	KindRebind:            "Rebind",
	KindCommentFragment:   "CommentFragment",
	KindInvalidRegex:      "InvalidRegex",
	KindUnsupportedValue:  "UnsupportedValue",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(kind2string) {
		return kind2string[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is implemented by every error this package returns.
type Error interface {
	error
	Kind() ErrorKind
}

// KindOf returns the kind of the first Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return 0
}

type (
	// InvalidIdentifierError reports a name that is not a usable
	// JavaScript identifier.
	InvalidIdentifierError struct {
		Name string
	}

	// DuplicateNameError reports a declaration whose name is already taken.
	// Existing is the declaration that holds the name.
	DuplicateNameError struct {
		Name     string
		Existing Decl
	}

	// UnresolvedCalleeError reports an invocation with a receiver but no
	// method name.
	UnresolvedCalleeError struct {
		Receiver Expr
	}

	// PositionError reports a cursor or argument index outside [0, Len].
	PositionError struct {
		Pos int
		Len int
	}

	// MalformedCaseError reports a non-default switch case without a label.
	MalformedCaseError struct{}

	// RebindError reports an attempt to bind an already bound name.
	RebindError struct {
		What  string
		Bound string
	}

	// CommentFragmentError reports a comment fragment that is neither text
	// nor a type reference.
	CommentFragmentError struct {
		Value any
	}

	// InvalidRegexError reports a pattern the ECMAScript regex grammar
	// rejects.
	InvalidRegexError struct {
		Pattern string
		Err     error
	}

	// UnsupportedValueError reports a Go value Lit cannot convert.
	UnsupportedValueError struct {
		Value any
	}
)

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid JavaScript identifier %q", e.Name)
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("name %q already exists", e.Name)
}

func (e *UnresolvedCalleeError) Error() string {
	return "invocation has a receiver but no method name"
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("position %d out of range [0, %d]", e.Pos, e.Len)
}

func (e *MalformedCaseError) Error() string {
	return "non-default case requires a label"
}

func (e *RebindError) Error() string {
	return fmt.Sprintf("%s is already bound to %q", e.What, e.Bound)
}

func (e *CommentFragmentError) Error() string {
	return fmt.Sprintf("unsupported comment fragment of type %T", e.Value)
}

func (e *InvalidRegexError) Error() string {
	return fmt.Sprintf("invalid regular expression /%s/: %v", e.Pattern, e.Err)
}

func (e *InvalidRegexError) Unwrap() error { return e.Err }

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("cannot convert %T to a JavaScript expression", e.Value)
}

func (*InvalidIdentifierError) Kind() ErrorKind { return KindInvalidIdentifier }
func (*DuplicateNameError) Kind() ErrorKind     { return KindDuplicateName }
func (*UnresolvedCalleeError) Kind() ErrorKind  { return KindUnresolvedCallee }
func (*PositionError) Kind() ErrorKind          { return KindPosition }
func (*MalformedCaseError) Kind() ErrorKind     { return KindMalformedCase }
func (*RebindError) Kind() ErrorKind            { return KindRebind }
func (*CommentFragmentError) Kind() ErrorKind   { return KindCommentFragment }
func (*InvalidRegexError) Kind() ErrorKind      { return KindInvalidRegex }
func (*UnsupportedValueError) Kind() ErrorKind  { return KindUnsupportedValue }
