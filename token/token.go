package token

import (
	"strconv"
)

// Token is the set of operator and keyword tokens the printer emits.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the binding power of a binary operator, or 0 if t is
// not one.
func (t Token) Precedence() int {
	switch t {
	case LogicalOr:
		return 1
	case LogicalAnd:
		return 2
	case Or:
		return 3
	case ExclusiveOr:
		return 4
	case And:
		return 5
	case Equal,
		NotEqual,
		StrictEqual,
		StrictNotEqual:
		return 6
	case Less, Greater, LessOrEqual, GreaterOrEqual, InstanceOf, In:
		return 7
	case ShiftLeft, ShiftRight, UnsignedShiftRight:
		return 8
	case Plus, Minus:
		return 9
	case Multiply, Slash, Remainder:
		return 11
	}
	return 0
}

// Associative reports whether chaining t on the right side yields the same
// value as chaining it on the left, for every operand type.
func (t Token) Associative() bool {
	switch t {
	case LogicalAnd, LogicalOr, And, Or, ExclusiveOr:
		return true
	}
	return false
}

// IsAssign reports whether t is "=" or a compound assignment operator.
func (t Token) IsAssign() bool {
	return t >= AddAssign && t <= UnsignedShiftRightAssign || t == Assign
}

// IsWord reports whether t is spelled as a word and must be separated from
// its operands by spaces.
func (t Token) IsWord() bool {
	return t >= Keyword
}

// keyword ...
type keyword struct {
	token         Token
	futureKeyword bool
	strict        bool
}

// LiteralKeyword returns the keyword token if literal is a keyword, a Keyword token. If the literal is a future keyword
// (enum, export, implements, ...), or 0 if the literal is not a keyword.
func LiteralKeyword(literal string) (Token, bool) {
	if k, exists := keywordTable[literal]; exists {
		if k.futureKeyword {
			return Keyword, k.strict
		}
		return k.token, false
	}
	return 0, false
}

// IsReservedWord reports whether literal may not be used as a bound name.
func IsReservedWord(literal string) bool {
	_, exists := keywordTable[literal]
	return exists
}
