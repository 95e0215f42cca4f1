package chanlog

import (
	"fmt"
	"strings"
)

// Renderer turns the opaque message values of a log call into the text
// written after the prefix. The gate guarantees messages is non-empty.
type Renderer interface {
	Render(messages []any) string
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(messages []any) string

// Render calls f.
func (f RendererFunc) Render(messages []any) string { return f(messages) }

// DefaultRenderer space-separates every value the way a host console does,
// using the fmt package's default formatting for each.
var DefaultRenderer Renderer = RendererFunc(func(messages []any) string {
	return strings.TrimSuffix(fmt.Sprintln(messages...), "\n")
})
