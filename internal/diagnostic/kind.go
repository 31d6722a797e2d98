package diagnostic

import "function-frame/internal/common"

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies a directive expansion failure.
type Kind int

const (
	_ Kind = iota // zero value means "not a directive failure"

	KindArgumentShape // arguments are not a comma list of assignments
	KindArity         // fewer assignments than the required minimum
	KindIdentifier    // left side of an assignment is not a plain name
	KindLiteralType   // right side is not a string, bool or uint literal
	KindMissingOption // a required option is absent
	KindApplicability // directive placed on something other than a function
)

// Code returns the snake_case code used in diagnostics.
func (k Kind) Code() string {
	switch k {
	case KindArgumentShape:
		return "argument_shape"
	case KindArity:
		return "arity"
	case KindIdentifier:
		return "identifier"
	case KindLiteralType:
		return "literal_type"
	case KindMissingOption:
		return "missing_option"
	case KindApplicability:
		return "applicability"
	default:
		return common.UnknownStr
	}
}
