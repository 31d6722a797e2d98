package directive

import (
	"go/scanner"
	"go/token"
	"strconv"
	"strings"

	"function-frame/internal/diagnostic"
)

// MinArguments is the smallest number of assignments a directive accepts.
// It is a count only; which options are present is checked on resolution.
const MinArguments = 3

// lexeme is one token of the argument text.
type lexeme struct {
	tok token.Token
	lit string
}

func (l lexeme) String() string {
	if l.lit != "" {
		return l.lit
	}

	return l.tok.String()
}

// segment is the token run between two top-level commas.
type segment []lexeme

func (s segment) String() string {
	parts := make([]string, len(s))
	for i, l := range s {
		parts[i] = l.String()
	}

	return strings.Join(parts, " ")
}

// sides splits the segment at its first `=`.
func (s segment) sides() (lhs, rhs segment, ok bool) {
	for i, l := range s {
		if l.tok == token.ASSIGN {
			return s[:i], s[i+1:], i > 0 && i < len(s)-1
		}
	}

	return nil, nil, false
}

// Parse parses the argument text of a directive into assignments, in the
// order they were written.
//
// Parsing runs in three phases, each aborting on the first failure:
// the text must be a comma list of `lhs = rhs` expressions, there must be
// at least MinArguments of them, and each must have an identifier on the
// left and a string, uint or bool literal on the right.
func Parse(args string) ([]Assignment, error) {
	lexemes, err := scan(args)
	if err != nil {
		return nil, err
	}

	segments, err := split(lexemes)
	if err != nil {
		return nil, err
	}

	if len(segments) < MinArguments {
		return nil, diagnostic.Errorf(diagnostic.KindArity,
			"expected at least %d arguments, received %d", MinArguments, len(segments))
	}

	assignments := make([]Assignment, 0, len(segments))

	for _, seg := range segments {
		a, err := seg.assignment()
		if err != nil {
			return nil, err
		}

		assignments = append(assignments, a)
	}

	return assignments, nil
}

// scan tokenizes src with the Go scanner, dropping automatic semicolons.
func scan(src string) ([]lexeme, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var (
		errs scanner.ErrorList
		s    scanner.Scanner
	)

	s.Init(file, []byte(src), func(pos token.Position, msg string) {
		errs.Add(pos, msg)
	}, 0)

	var out []lexeme

	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		out = append(out, lexeme{tok: tok, lit: lit})
	}

	if errs.Len() > 0 {
		return nil, diagnostic.Wrap(diagnostic.KindArgumentShape, errs.Err(), "invalid list of assignment arguments")
	}

	return out, nil
}

// split cuts the lexemes at top-level commas and checks that every segment
// is shaped like an assignment. A single trailing comma is allowed.
func split(lexemes []lexeme) ([]segment, error) {
	var (
		segments []segment
		cur      segment
		depth    int
	)

	for _, l := range lexemes {
		switch l.tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			depth--
			if depth < 0 {
				return nil, diagnostic.Errorf(diagnostic.KindArgumentShape, "unbalanced %q in arguments", l.String())
			}
		case token.SEMICOLON:
			return nil, diagnostic.Errorf(diagnostic.KindArgumentShape, "unexpected %q in arguments", l.String())
		case token.COMMA:
			if depth > 0 {
				break
			}

			if len(cur) == 0 {
				return nil, diagnostic.Errorf(diagnostic.KindArgumentShape, "empty argument before ','")
			}

			segments = append(segments, cur)
			cur = nil

			continue
		}

		cur = append(cur, l)
	}

	if depth != 0 {
		return nil, diagnostic.Errorf(diagnostic.KindArgumentShape, "unbalanced brackets in arguments")
	}

	if len(cur) > 0 {
		segments = append(segments, cur)
	}

	for _, seg := range segments {
		if _, _, ok := seg.sides(); !ok {
			return nil, diagnostic.Errorf(diagnostic.KindArgumentShape,
				"expected assignment of the form `key = value`, found `%s`", seg)
		}
	}

	return segments, nil
}

// assignment types a segment already known to be shaped like `lhs = rhs`.
func (s segment) assignment() (Assignment, error) {
	lhs, rhs, _ := s.sides()

	if len(lhs) != 1 || lhs[0].tok != token.IDENT || isBoolLiteral(lhs[0].lit) {
		return Assignment{}, diagnostic.Errorf(diagnostic.KindIdentifier,
			"expected identifier, found `%s`", lhs)
	}

	value, err := literal(rhs)
	if err != nil {
		return Assignment{}, err
	}

	return Assignment{Key: lhs[0].lit, Value: value}, nil
}

func literal(rhs segment) (Value, error) {
	if len(rhs) != 1 {
		return Value{}, diagnostic.Errorf(diagnostic.KindLiteralType, "expected literal, found `%s`", rhs)
	}

	l := rhs[0]

	switch l.tok {
	case token.STRING:
		s, err := strconv.Unquote(l.lit)
		if err != nil {
			return Value{}, diagnostic.Wrap(diagnostic.KindLiteralType, err, "invalid string literal "+l.lit)
		}

		return StringValue(s), nil

	case token.INT:
		n, err := strconv.ParseUint(l.lit, 10, strconv.IntSize)
		if err != nil {
			return Value{}, diagnostic.Wrap(diagnostic.KindLiteralType, err,
				"integer literal "+l.lit+" is not a decimal uint")
		}

		return UintValue(uint(n)), nil

	case token.IDENT:
		if isBoolLiteral(l.lit) {
			return BoolValue(l.lit == "true"), nil
		}

		return Value{}, diagnostic.Errorf(diagnostic.KindLiteralType, "expected literal, found identifier `%s`", l.lit)

	case token.FLOAT, token.IMAG, token.CHAR:
		return Value{}, diagnostic.Errorf(diagnostic.KindLiteralType,
			"expected literal of type bool, string or uint, found `%s`", l.lit)

	default:
		return Value{}, diagnostic.Errorf(diagnostic.KindLiteralType, "expected literal, found `%s`", l)
	}
}

func isBoolLiteral(s string) bool {
	return s == "true" || s == "false"
}
