package options

import (
	"errors"
	"fmt"
	"strings"

	"function-frame/internal/diagnostic"
)

// Option names understood by Resolve.
const (
	OptTitle   = "title"
	OptSep     = "sep"
	OptWidth   = "width"
	OptSepLine = "sep_line"
)

var known = []string{OptTitle, OptSep, OptWidth, OptSepLine}

// DefaultSepLine is used when sep_line is not given.
const DefaultSepLine = true

// MaxWidth bounds width so that every separator run of a banner stays small.
const MaxWidth = 1 << 12

// Resolved holds the options a frame is synthesized from.
type Resolved struct {
	Title   string
	Sep     string
	Width   uint
	SepLine bool
}

// Resolve extracts the frame options from c. The first missing required
// option aborts resolution with a KindMissingOption error; a width above
// MaxWidth is a KindLiteralType error.
func Resolve(c *Configuration) (Resolved, error) {
	title, err := c.String(OptTitle)
	if err != nil {
		return Resolved{}, missing(err)
	}

	sep, err := c.String(OptSep)
	if err != nil {
		return Resolved{}, missing(err)
	}

	width, err := c.Uint(OptWidth)
	if err != nil {
		return Resolved{}, missing(err)
	}

	if width > MaxWidth {
		return Resolved{}, &diagnostic.Error{
			Kind:    diagnostic.KindLiteralType,
			Field:   OptWidth,
			Message: fmt.Sprintf("width %d is out of range, the maximum is %d", width, MaxWidth),
		}
	}

	sepLine, err := c.Bool(OptSepLine)
	if err != nil {
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			return Resolved{}, err
		}

		sepLine = DefaultSepLine
	}

	return Resolved{
		Title:   stripQuotes(title),
		Sep:     stripQuotes(sep),
		Width:   width,
		SepLine: sepLine,
	}, nil
}

func missing(err error) error {
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		return err
	}

	return &diagnostic.Error{
		Kind:    diagnostic.KindMissingOption,
		Field:   nf.Name,
		Message: nf.Error() + ": make sure the value is of type " + nf.Kind.String(),
	}
}

// stripQuotes removes every double quote character from s.
func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}
