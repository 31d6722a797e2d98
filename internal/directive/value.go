package directive

import (
	"strconv"

	"function-frame/internal/common"
)

// ValueKind is the type of a literal on the right side of an assignment.
type ValueKind int

const (
	_ ValueKind = iota

	KindString
	KindUint
	KindBool
)

// String returns the name used in error messages.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindUint:
		return "uint"
	case KindBool:
		return "bool"
	default:
		return common.UnknownStr
	}
}

// Value holds exactly one of a string, uint or bool literal.
type Value struct {
	kind ValueKind
	str  string
	num  uint
	flag bool
}

// StringValue returns a string-typed Value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// UintValue returns a uint-typed Value.
func UintValue(n uint) Value { return Value{kind: KindUint, num: n} }

// BoolValue returns a bool-typed Value.
func BoolValue(b bool) Value { return Value{kind: KindBool, flag: b} }

// Kind reports which literal the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// Str returns the string payload; empty unless Kind is KindString.
func (v Value) Str() string { return v.str }

// Uint returns the uint payload; zero unless Kind is KindUint.
func (v Value) Uint() uint { return v.num }

// Bool returns the bool payload; false unless Kind is KindBool.
func (v Value) Bool() bool { return v.flag }

// String renders the value in Go literal syntax.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindUint:
		return strconv.FormatUint(uint64(v.num), 10)
	case KindBool:
		return strconv.FormatBool(v.flag)
	default:
		return "<invalid>"
	}
}

// Assignment is a single `key = value` pair of a directive.
type Assignment struct {
	Key   string
	Value Value
}

// String renders the assignment as it would be written in a directive.
func (a Assignment) String() string {
	return a.Key + " = " + a.Value.String()
}
