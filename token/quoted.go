package token

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Quote returns v as a double-quoted string using the canonical escape
// set: short escapes for quote, backslash and the common controls,
// \u00xx for the remaining bytes below 0x20. Everything else is written
// as UTF-8; invalid UTF-8 in v is replaced with U+FFFD.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r < 0x20 {
				d = append(d, '\\', 'u', '0', '0', hexDigits[r>>4], hexDigits[r&0xf])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// quotedLen validates a quoted string starting at d[0] == '"' and
// returns its byte length including both quotes. On error it returns
// the offset of the offending byte.
func quotedLen(d []byte) (int, int, error) {
	i := 1
	n := len(d)
	for i < n {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, 0, nil
		case c == '\\':
			if i+1 >= n {
				return 0, i, ErrUnterminated
			}
			switch d[i+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if i+6 > n {
					return 0, i, ErrUnterminated
				}
				if !allHex(d[i+2 : i+6]) {
					return 0, i, ErrBadUnicode
				}
				i += 6
			default:
				return 0, i, ErrBadEscape
			}
		case c < 0x20:
			return 0, i, ErrUnicodeControl
		case c < utf8.RuneSelf:
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz <= 1 {
				return 0, i, ErrBadUTF8
			}
			i += sz
		}
	}
	return 0, n, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

func hex4(d []byte) rune {
	var r rune
	for _, c := range d {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		}
	}
	return r
}

// QuotedToString converts a validated quoted token to its string value.
// Surrogate pairs in \u escapes combine into one rune; an unpaired
// surrogate decodes to U+FFFD. The token must have passed quotedLen.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	b.Grow(len(d) - 2)
	i := 1
	n := len(d) - 1
	for i < n {
		c := d[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		switch d[i+1] {
		case '"':
			b.WriteByte('"')
			i += 2
		case '\\':
			b.WriteByte('\\')
			i += 2
		case '/':
			b.WriteByte('/')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'u':
			r := hex4(d[i+2 : i+6])
			i += 6
			if utf16.IsSurrogate(r) {
				if i+6 <= n && d[i] == '\\' && d[i+1] == 'u' {
					r2 := hex4(d[i+2 : i+6])
					if dec := utf16.DecodeRune(r, r2); dec != unicode.ReplacementChar {
						b.WriteRune(dec)
						i += 6
						continue
					}
				}
				r = unicode.ReplacementChar
			}
			b.WriteRune(r)
		default:
			// quotedLen rejects every other escape
			panic("token: invalid escape in validated string")
		}
	}
	return b.String()
}
