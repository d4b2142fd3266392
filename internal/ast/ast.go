// Package ast holds the expression and statement trees built from the
// token stream, and the visitor protocols used to walk them.
package ast

//go:generate go run ../../cmd/astgen .
