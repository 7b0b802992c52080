package jsonvalue

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ogoodman/gotable/errs"
)

// ParseError reports an unexpected token encountered while parsing, along
// with the offending literal.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", errs.ErrJSONUnexpectedToken, e.Token)
}

func (e *ParseError) Unwrap() error { return errs.ErrJSONUnexpectedToken }

type tokenKind uint8

const (
	tokInt tokenKind = iota
	tokFloat
	tokString
	tokPunctuation
	tokIdentifier
)

type token struct {
	kind tokenKind
	text string
}

// tokenizer state, mirroring the reference lexer's single-pass state
// machine: whitespace, numbers, strings, and bare identifiers are each
// recognized without lookahead beyond one character.
type tokState uint8

const (
	stBegin tokState = iota
	stString
	stStringEscape
	stStringEnd
	stNumber
	stNegNumber
	stNumberFrac
	stNumberExpSig
	stNumberExp
	stIdentifier
	stWhitespace
)

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func tokenize(s string) []token {
	var tokens []token
	state := stBegin
	begin := 0
	kind := tokPunctuation

	runes := []rune(s)
	n := len(runes)

	// byteOffsets[i] is the byte offset of runes[i]; byteOffsets[n] is len(s).
	byteOffsets := make([]int, n+1)
	off := 0
	for i, r := range runes {
		byteOffsets[i] = off
		off += len(string(r))
	}
	byteOffsets[n] = off

	for i := 0; i <= n; i++ {
		if i == n {
			if begin < len(s) {
				tokens = append(tokens, token{kind: kind, text: s[begin:]})
			}
			break
		}

		ch := runes[i]
		bi := byteOffsets[i]

		switch state {
		case stBegin:
		case stNegNumber:
			if isDigit(ch) {
				state = stNumber
				kind = tokInt
			} else {
				state = stBegin
			}
		case stNumber:
			switch {
			case ch == '.':
				state = stNumberFrac
				kind = tokFloat
			case ch == 'e' || ch == 'E':
				state = stNumberExpSig
				kind = tokFloat
			case !isDigit(ch):
				state = stBegin
			}
		case stNumberFrac:
			switch {
			case ch == 'e' || ch == 'E':
				state = stNumberExpSig
			case !isDigit(ch):
				state = stBegin
			}
		case stNumberExpSig:
			switch {
			case ch == '-' || ch == '+' || isDigit(ch):
				state = stNumberExp
			default:
				state = stBegin
			}
		case stNumberExp:
			if !isDigit(ch) {
				state = stBegin
			}
		case stString:
			switch ch {
			case '"':
				state = stStringEnd
			case '\\':
				state = stStringEscape
			}
		case stStringEnd:
			state = stBegin
		case stStringEscape:
			state = stString
		case stIdentifier:
			if !unicode.IsLetter(ch) {
				state = stBegin
			}
		case stWhitespace:
			if !unicode.IsSpace(ch) {
				begin = bi
				state = stBegin
			}
		}

		if state == stBegin {
			if bi > begin {
				tokens = append(tokens, token{kind: kind, text: s[begin:bi]})
				kind = tokPunctuation
				begin = bi
			}

			switch {
			case ch == '"':
				state = stString
				kind = tokString
			case isDigit(ch):
				state = stNumber
				kind = tokInt
			case ch == '-':
				state = stNegNumber
			case unicode.IsSpace(ch):
				state = stWhitespace
			case unicode.IsLetter(ch):
				state = stIdentifier
				kind = tokIdentifier
			}
		}
	}

	return tokens
}

// unescape strips the surrounding quotes and removes single backslash
// characters without translating the escape that follows — a deliberately
// minimal decoder matching the text format's documented behavior.
func unescape(s string) string {
	inner := s[1 : len(s)-1]
	var b strings.Builder
	b.Grow(len(inner))
	for _, ch := range inner {
		if ch != '\\' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

type tokenIter struct {
	tokens []token
	pos    int
}

func (it *tokenIter) next() (token, bool) {
	if it.pos >= len(it.tokens) {
		return token{}, false
	}
	t := it.tokens[it.pos]
	it.pos++
	return t, true
}

// Decode parses a single top-level JSON value from s.
func Decode(s string) (Value, error) {
	it := &tokenIter{tokens: tokenize(s)}
	return decodeValue(it)
}

// DecodeAll parses a sequence of whitespace-separated top-level values,
// stopping successfully at EOF once zero or more complete values have been
// read.
func DecodeAll(s string) ([]Value, error) {
	it := &tokenIter{tokens: tokenize(s)}
	var values []Value
	for {
		v, err := decodeValue(it)
		if err != nil {
			if err == errs.ErrJSONEOF {
				return values, nil
			}
			return nil, err
		}
		values = append(values, v)
	}
}

func unexpected(s string) error {
	return &ParseError{Token: s}
}

func decodeValue(it *tokenIter) (Value, error) {
	t, ok := it.next()
	if !ok {
		return Value{}, errs.ErrJSONEOF
	}

	switch t.kind {
	case tokInt:
		n, err := strconv.ParseInt(t.text, 10, 64)
		if err != nil {
			return Value{}, unexpected(t.text)
		}
		return Int(n), nil
	case tokFloat:
		f, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return Value{}, unexpected(t.text)
		}
		return Float(f), nil
	case tokString:
		return String(unescape(t.text)), nil
	case tokIdentifier:
		switch t.text {
		case "null":
			return Null(), nil
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		case "infinity":
			return Infinity(), nil
		default:
			return Value{}, unexpected(t.text)
		}
	case tokPunctuation:
		switch t.text {
		case "[":
			return decodeArray(it)
		case "{":
			return decodeObject(it)
		default:
			return Value{}, unexpected(t.text)
		}
	default:
		return Value{}, unexpected(t.text)
	}
}

// decodeArray assumes the '[' token has already been consumed.
func decodeArray(it *tokenIter) (Value, error) {
	var elems []Value

	v, err := decodeValue(it)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) && pe.Token == "]" {
			return Array(elems), nil
		}
		return Value{}, err
	}
	elems = append(elems, v)

	for {
		t, ok := it.next()
		if !ok {
			return Value{}, errs.ErrJSONEOF
		}
		if t.kind != tokPunctuation {
			return Value{}, unexpected(t.text)
		}
		switch t.text {
		case "]":
			return Array(elems), nil
		case ",":
		default:
			return Value{}, unexpected(t.text)
		}

		v, err := decodeValue(it)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
	}
}

// decodeObject assumes the '{' token has already been consumed.
func decodeObject(it *tokenIter) (Value, error) {
	var members []Member
	first := true

	for {
		if !first {
			t, ok := it.next()
			if !ok {
				return Value{}, errs.ErrJSONEOF
			}
			if t.kind != tokPunctuation {
				return Value{}, unexpected(t.text)
			}
			if t.text == "}" {
				break
			}
			if t.text != "," {
				return Value{}, unexpected(t.text)
			}
		}

		t, ok := it.next()
		if !ok {
			return Value{}, errs.ErrJSONEOF
		}

		var key string
		switch t.kind {
		case tokPunctuation:
			if t.text == "}" && first {
				return Object(members), nil
			}
			return Value{}, unexpected(t.text)
		case tokString:
			key = unescape(t.text)
		default:
			return Value{}, unexpected(t.text)
		}

		colon, ok := it.next()
		if !ok {
			return Value{}, errs.ErrJSONEOF
		}
		if colon.kind != tokPunctuation || colon.text != ":" {
			return Value{}, unexpected(colon.text)
		}

		v, err := decodeValue(it)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Key: key, Value: v})

		first = false
	}

	return Object(members), nil
}
