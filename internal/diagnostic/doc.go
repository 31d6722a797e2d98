// Package diagnostic provides the failure kinds and structured reports of the
// frame generator.
//
// Key capabilities:
//   - A closed set of failure kinds (argument shape, arity, identifier,
//     literal type, missing option, applicability)
//   - A single error type carried out of every pipeline stage
//   - Per-run collection of errors, warnings and infos with source positions
package diagnostic
