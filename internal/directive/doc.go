// Package directive parses the argument list of a frame directive.
//
// A directive is a line comment of the form
//
//	//frame:wrap title = "Simple Example", sep = "-", width = 25
//
// The text after the marker is a comma-separated list of `key = value`
// assignments. Keys are plain identifiers; values are Go string literals,
// decimal unsigned integers, or the booleans true and false. The list is
// tokenized with go/scanner, so literal syntax follows the Go spec.
//
// Parsing is all-or-nothing: any malformed assignment fails the whole list.
package directive
