// Package rewrite splices frame statements into function declarations.
//
// The header becomes the first statement of the body. The footer follows
// the original statements, except that it is placed before a final
// terminating statement (a return, a panic, an exhaustive if/else...), since
// Go rejects a function with results whose body does not end in one.
//
// Statements from an earlier run are recognised by their marker comments
// and removed before inserting, so rewriting is idempotent.
package rewrite
