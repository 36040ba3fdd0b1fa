package token

import (
	"fmt"
)

type TokenType int

const (
	TEOF TokenType = iota
	TNull
	TTrue
	TFalse
	TInteger
	TFloat
	TString
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComma
	TColon
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:     "TEOF",
		TNull:    "TNull",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TString:  "TString",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TComma:   "TComma",
		TColon:   "TColon",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the token's value: the decoded content for strings,
// the raw text otherwise.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return QuotedToString(t.Bytes)
	case TEOF:
		return "<eof>"
	default:
		return string(t.Bytes)
	}
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}
func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
