// Package options turns parsed directive assignments into the options a
// frame is built from.
//
// A Configuration keeps every assignment in argument order, duplicates and
// unknown keys included. Lookups are by name and value kind and return the
// first match, so `width = 3, width = 7` resolves to 3.
//
// Resolve extracts the four frame options:
//   - title    (string, required)
//   - sep      (string, required)
//   - width    (uint, required)
//   - sep_line (bool, optional, default true)
package options
