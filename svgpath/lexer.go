// SPDX-License-Identifier: MIT

package svgpath

import (
	"strconv"
)

// lexer walks SVG path data. Separators are whitespace and single commas.
type lexer struct {
	src string
	pos int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isCommand reports whether c is one of the path command letters.
func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c',
		'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
}

// skipSeparator consumes whitespace with at most one comma.
func (l *lexer) skipSeparator() {
	l.skipSpace()
	if l.pos < len(l.src) && l.src[l.pos] == ',' {
		l.pos++
		l.skipSpace()
	}
}

// next returns the byte at the cursor, or 0 at the end.
func (l *lexer) next() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) done() bool {
	l.skipSpace()
	return l.pos >= len(l.src)
}

// describe names what sits at the cursor, for error messages.
func (l *lexer) describe() string {
	if l.pos >= len(l.src) {
		return "end of data"
	}
	return strconv.QuoteRune(rune(l.src[l.pos]))
}

// peekCommand returns the command letter at the cursor, if any.
func (l *lexer) peekCommand() (byte, bool) {
	l.skipSpace()
	if l.pos < len(l.src) && isCommand(l.src[l.pos]) {
		return l.src[l.pos], true
	}
	return 0, false
}

// peekNumber reports whether a number starts at the cursor.
func (l *lexer) peekNumber() bool {
	l.skipSeparator()
	if l.pos >= len(l.src) {
		return false
	}
	c := l.src[l.pos]
	return isDigit(c) || c == '-' || c == '+' || c == '.'
}

// number scans [sign] digits [. digits] [(e|E) [sign] digits].
// A second '.' ends the number, so ".5.5" is two numbers.
func (l *lexer) number() (float64, error) {
	l.skipSeparator()
	start := l.pos
	i := l.pos
	if i < len(l.src) && (l.src[i] == '+' || l.src[i] == '-') {
		i++
	}
	digits := 0
	for i < len(l.src) && isDigit(l.src[i]) {
		i++
		digits++
	}
	if i < len(l.src) && l.src[i] == '.' {
		i++
		for i < len(l.src) && isDigit(l.src[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, syntaxError(start, "expected number")
	}
	if i < len(l.src) && (l.src[i] == 'e' || l.src[i] == 'E') {
		j := i + 1
		if j < len(l.src) && (l.src[j] == '+' || l.src[j] == '-') {
			j++
		}
		if j < len(l.src) && isDigit(l.src[j]) {
			for j < len(l.src) && isDigit(l.src[j]) {
				j++
			}
			i = j
		}
	}

	v, err := strconv.ParseFloat(l.src[start:i], 64)
	if err != nil {
		return 0, syntaxError(start, "bad number %q", l.src[start:i])
	}
	l.pos = i
	return v, nil
}

// flag scans a single arc flag character, '0' or '1'.
func (l *lexer) flag() (bool, error) {
	l.skipSeparator()
	switch l.next() {
	case '0':
		l.pos++
		return false, nil
	case '1':
		l.pos++
		return true, nil
	}
	return false, syntaxError(l.pos, "expected flag, got %s", l.describe())
}

// numbers scans n numbers into dst.
func (l *lexer) numbers(dst []float64) error {
	for i := range dst {
		v, err := l.number()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}
