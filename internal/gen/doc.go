// Package gen drives frame generation over a set of Go files.
//
// For every top-level declaration it looks for directive comments in the
// doc comment (and, for grouped const/var/type blocks, in each spec's doc
// comment), expands each directive, and splices the resulting header and
// footer into the function body. Files are printed back with the dst
// restorer and go/format.
//
// Generation is all-or-nothing: every failure is collected into the
// result's diagnostics, and when any occurred no file is returned.
package gen
