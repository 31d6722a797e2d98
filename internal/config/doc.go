// Package config loads the optional project file (.frame.yaml) that tunes
// the generator: the directive marker, files to skip, where rewritten files
// go, and how the CLI logs.
//
// Example:
//
//	marker: frame:wrap
//	exclude:
//	  - "**/*_test.go"
//	  - "vendor/**"
//	output: ""
//	log_level: info
//	log_format: text
package config
