package ast

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/t14raptor/jscode/token"
)

var (
	asciiStart    [utf8.RuneSelf]bool
	asciiContinue [utf8.RuneSelf]bool
)

func init() {
	for i := 0; i < utf8.RuneSelf; i++ {
		c := byte(i)
		asciiStart[i] = c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '$' || c == '_'
		asciiContinue[i] = asciiStart[i] || c >= '0' && c <= '9'
	}
}

func isIDStart(r rune) bool {
	if r < utf8.RuneSelf {
		return asciiStart[r]
	}
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_ID_Start)
}

func isIDContinue(r rune) bool {
	if r < utf8.RuneSelf {
		return asciiContinue[r]
	}
	return isIDStart(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue) ||
		r == '\u200c' || r == '\u200d'
}

// IsIdentifierName reports whether name matches the IdentifierName grammar.
// Reserved words are identifier names too; they are valid property keys.
func IsIdentifierName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !isIDStart(r) {
				return false
			}
		} else if !isIDContinue(r) {
			return false
		}
	}
	return true
}

// IsIdentifier reports whether name can be bound as a variable, function,
// class, field, method, parameter or label.
func IsIdentifier(name string) bool {
	_, err := CheckIdentifier(name)
	return err == nil
}

// CheckIdentifier validates name and returns its NFC normal form, the
// spelling under which the name is stored and compared.
func CheckIdentifier(name string) (string, error) {
	n := norm.NFC.String(name)
	if !IsIdentifierName(n) || token.IsReservedWord(n) {
		return "", &InvalidIdentifierError{Name: name}
	}
	return n, nil
}
