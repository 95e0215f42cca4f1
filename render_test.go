package chanlog

import (
	"bytes"
	"strings"
	"testing"
)

func TestDefaultRenderer_SpaceSeparatesValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		messages []any
		want     string
	}{
		{"single string", []any{"m"}, "m"},
		{"mixed types", []any{"count", 3, true}, "count 3 true"},
		{"adjacent strings", []any{"a", "b"}, "a b"},
		{"error value", []any{errFixed{}}, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultRenderer.Render(tt.messages); got != tt.want {
				t.Fatalf("Render(%v) = %q, want %q", tt.messages, got, tt.want)
			}
		})
	}
}

type errFixed struct{}

func (errFixed) Error() string { return "boom" }

func TestWithRenderer_ReplacesStringification(t *testing.T) {
	t.Parallel()

	upper := RendererFunc(func(messages []any) string {
		parts := make([]string, len(messages))
		for i, m := range messages {
			parts[i] = strings.ToUpper(m.(string))
		}
		return strings.Join(parts, "|")
	})

	var out bytes.Buffer
	g := New(WithChannels("a"), WithOutput(&out), WithRenderer(upper))

	g.Log("a", "x", "y")
	if got, want := out.String(), "[A] X|Y\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestWithDecorator_WrapsPrefixOnly(t *testing.T) {
	t.Parallel()

	decorate := func(kind Kind, prefix string) string {
		if kind != KindError {
			t.Errorf("decorator kind = %v, want %v", kind, KindError)
		}
		return "<" + prefix + ">"
	}

	var errOut bytes.Buffer
	g := New(WithChannels("a"), WithErrorOutput(&errOut), WithDecorator(decorate))

	g.Error("a", "m")
	if got, want := errOut.String(), "<[A:ERROR]> m\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}
