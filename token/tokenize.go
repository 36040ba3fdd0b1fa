package token

import (
	"fmt"
	"unicode/utf8"
)

// Tokenize scans a complete document. The returned slice always ends
// with a TEOF token carrying the end-of-document position, so callers
// never run out of positions to report.
func Tokenize(d []byte) ([]Token, error) {
	doc := &PosDoc{d: d}
	toks := make([]Token, 0, 16)
	i := 0
	for i < len(d) {
		c := d[i]
		switch c {
		case ' ', '\t', '\r':
			i++
		case '\n':
			doc.nl(i)
			i++
		case '{':
			toks = append(toks, Token{Type: TLCurl, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '}':
			toks = append(toks, Token{Type: TRCurl, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '[':
			toks = append(toks, Token{Type: TLSquare, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case ']':
			toks = append(toks, Token{Type: TRSquare, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case ',':
			toks = append(toks, Token{Type: TComma, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case ':':
			toks = append(toks, Token{Type: TColon, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '"':
			n, errOff, err := quotedLen(d[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, doc.Pos(i+errOff))
			}
			toks = append(toks, Token{Type: TString, Pos: doc.Pos(i), Bytes: d[i : i+n]})
			i += n
		case 'n':
			n, err := literal(d, i, "null", doc)
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Type: TNull, Pos: doc.Pos(i), Bytes: d[i : i+n]})
			i += n
		case 't':
			n, err := literal(d, i, "true", doc)
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Type: TTrue, Pos: doc.Pos(i), Bytes: d[i : i+n]})
			i += n
		case 'f':
			n, err := literal(d, i, "false", doc)
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Type: TFalse, Pos: doc.Pos(i), Bytes: d[i : i+n]})
			i += n
		default:
			if c != '-' && !asciiDigit(c) {
				r, _ := utf8.DecodeRune(d[i:])
				return nil, UnexpectedErr(fmt.Sprintf("character %q", r), doc.Pos(i))
			}
			j := i
			if c == '-' {
				j++
				if j >= len(d) || !asciiDigit(d[j]) {
					return nil, NewTokenizeErr(ErrNumber, doc.Pos(i))
				}
			}
			n, isFloat, err := number(d[j:])
			if err != nil {
				return nil, NewTokenizeErr(err, doc.Pos(i))
			}
			tt := TInteger
			if isFloat {
				tt = TFloat
			}
			toks = append(toks, Token{Type: tt, Pos: doc.Pos(i), Bytes: d[i : j+n]})
			i = j + n
		}
	}
	toks = append(toks, Token{Type: TEOF, Pos: doc.end()})
	return toks, nil
}

func literal(d []byte, i int, lit string, doc *PosDoc) (int, error) {
	if len(d)-i < len(lit) || string(d[i:i+len(lit)]) != lit {
		return 0, NewTokenizeErr(ErrLiteral, doc.Pos(i))
	}
	return len(lit), nil
}
