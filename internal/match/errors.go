// Package match locates the anchor node a mutation targets inside a parsed
// file. Each matcher recognizes exactly one semantic shape and returns the
// first match in document order; anything else is a typed error so the task
// fails without touching the file.
package match

import "fmt"

// NotFoundError means the file contains no candidate for the expected shape.
type NotFoundError struct {
	Path string
	Want string // description of the expected shape, shown to the user
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: expected %s, found none", e.Path, e.Want)
}

// UnsupportedShapeError means a candidate was found but resolves to a
// construct the matcher does not support.
type UnsupportedShapeError struct {
	Path string
	Want string
	Got  string // node kind or description of what was found instead
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Path, e.Want, e.Got)
}
