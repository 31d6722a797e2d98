// Package source loads Go files into decorated syntax trees.
//
// Files are parsed with comments and converted to github.com/dave/dst
// trees, which keep comments attached to the nodes they document and track
// package references by import path. That lets the generator move and
// insert statements without losing comments, and lets the restorer add any
// import a new statement needs.
//
// Single files are read through an afero.Fs; whole packages are loaded with
// golang.org/x/tools/go/packages.
package source
