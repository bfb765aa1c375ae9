package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// quote returns str as a single-quoted string literal.
func quote(str string) string {
	var b strings.Builder
	b.Grow(len(str) + 2)
	b.WriteByte('\'')
	for i, r := range str {
		switch r {
		case '\'', '"', '\\', '/':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\t':
			b.WriteString(`\t`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			if i > 0 && str[i-1] == '\r' {
				continue
			}
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\n`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// formatDecimal spells f the way Number.prototype.toString does, except
// that integral values keep a ".0" fraction.
func formatDecimal(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		str := strconv.FormatFloat(f, 'g', -1, 64)
		// Exponents carry no leading zero: 1e-7, not 1e-07.
		str = strings.Replace(str, "e-0", "e-", 1)
		return strings.Replace(str, "e+0", "e+", 1)
	}
	str := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(str, ".") {
		str += ".0"
	}
	return str
}

// escapeRegExp escapes the characters that would end a regex literal.
func escapeRegExp(pattern string) string {
	var b strings.Builder
	escaped := false
	for _, r := range pattern {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			b.WriteRune(r)
			escaped = true
		case r == '/':
			b.WriteString(`\/`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeComment breaks up "*/" so text cannot close a block comment.
func escapeComment(text string) string {
	return strings.ReplaceAll(text, "*/", "*<!-- -->/")
}
