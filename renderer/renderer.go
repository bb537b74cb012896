// Package renderer turns the bookkeeping reports into markdown strings ready
// to be printed on a terminal.
package renderer

import (
	"fmt"
	"strings"
)

// renderer is a strings.Builder with printf sugar, shared by every report.
type renderer struct {
	*strings.Builder
}

func newRenderer() *renderer {
	return &renderer{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}
