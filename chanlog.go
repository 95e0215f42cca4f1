package chanlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// EnvChannels is the environment variable FromEnv reads to seed the active
// channel set. Its value is a comma-separated list of channel names.
const EnvChannels = "LOG_CHANNELS"

// DefaultChannel is the single channel active when nothing else is
// configured.
const DefaultChannel = "default"

// Kind identifies the severity of an emitted record.
type Kind int

const (
	KindInfo Kind = iota
	KindError
	KindDebug
)

// Decorator wraps the literal prefix text of a record before it is written,
// e.g. to add terminal colors. The prefix passed in is the final contract
// text ("[NET]", "[NET:ERROR]", ...); decorators should wrap it, not
// rewrite it.
type Decorator func(kind Kind, prefix string) string

// Gate filters log output by channel name. The zero value is not usable;
// construct with New or FromEnv. A Gate is safe for concurrent use: emit
// operations read one consistent snapshot of the active set per call.
type Gate struct {
	mu       sync.RWMutex
	channels []string

	out      io.Writer
	errOut   io.Writer
	debugOut io.Writer
	renderer Renderer
	decorate Decorator
}

// Option configures a Gate at construction time.
type Option func(*Gate)

// WithChannels sets the initial active set. Names are trimmed and empty
// names dropped, same as SetChannels.
func WithChannels(channels ...string) Option {
	return func(g *Gate) { g.channels = sanitize(channels) }
}

// WithOutput redirects info records away from stdout.
func WithOutput(w io.Writer) Option {
	return func(g *Gate) { g.out = w }
}

// WithErrorOutput redirects error records away from stderr.
func WithErrorOutput(w io.Writer) Option {
	return func(g *Gate) { g.errOut = w }
}

// WithDebugOutput redirects debug records away from stdout.
func WithDebugOutput(w io.Writer) Option {
	return func(g *Gate) { g.debugOut = w }
}

// WithRenderer replaces the message stringification policy.
func WithRenderer(r Renderer) Option {
	return func(g *Gate) { g.renderer = r }
}

// WithDecorator installs a prefix decorator.
func WithDecorator(d Decorator) Option {
	return func(g *Gate) { g.decorate = d }
}

// New returns a Gate with only DefaultChannel active, writing info and
// debug records to stdout and error records to stderr.
func New(opts ...Option) *Gate {
	g := &Gate{
		channels: []string{DefaultChannel},
		out:      os.Stdout,
		errOut:   os.Stderr,
		debugOut: os.Stdout,
		renderer: DefaultRenderer,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FromEnv returns a Gate whose active set is read from EnvChannels. An
// unset variable, or a value that trims down to nothing, falls back to
// DefaultChannel. Options are applied after the environment read and may
// override it. The environment is consulted only here, never again.
func FromEnv(opts ...Option) *Gate {
	return New(append([]Option{WithChannels(channelsFromEnv()...)}, opts...)...)
}

func channelsFromEnv() []string {
	raw, ok := os.LookupEnv(EnvChannels)
	if !ok {
		return []string{DefaultChannel}
	}
	channels := ParseChannels(raw)
	if len(channels) == 0 {
		return []string{DefaultChannel}
	}
	return channels
}

// ParseChannels splits a comma-separated channel list, trimming each name
// and dropping empty ones. Duplicates are kept.
func ParseChannels(csv string) []string {
	return sanitize(strings.Split(csv, ","))
}

func sanitize(channels []string) []string {
	out := make([]string, 0, len(channels))
	for _, ch := range channels {
		ch = strings.TrimSpace(ch)
		if ch != "" {
			out = append(out, ch)
		}
	}
	return out
}

// SetChannels replaces the whole active set. Names are trimmed and empty
// names dropped; the result may be empty, which silences every channel.
// There is no merge form: replacement is the only mutation.
func (g *Gate) SetChannels(channels ...string) {
	next := sanitize(channels)
	g.mu.Lock()
	g.channels = next
	g.mu.Unlock()
}

// ActiveChannels returns a copy of the active set in insertion order.
// Mutating the returned slice does not affect the Gate.
func (g *Gate) ActiveChannels() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.channels))
	copy(out, g.channels)
	return out
}

// Log emits an info record on channel if it is active and messages is
// non-empty. The record is prefixed "[CHANNEL]" with the channel name
// upper-cased.
func (g *Gate) Log(channel string, messages ...any) {
	g.emit(KindInfo, g.out, channel, messages)
}

// Error is Log with the "[CHANNEL:ERROR]" prefix, written to the error
// writer.
func (g *Gate) Error(channel string, messages ...any) {
	g.emit(KindError, g.errOut, channel, messages)
}

// Debug is Log with the "[CHANNEL:DEBUG]" prefix, written to the debug
// writer.
func (g *Gate) Debug(channel string, messages ...any) {
	g.emit(KindDebug, g.debugOut, channel, messages)
}

func (g *Gate) emit(kind Kind, w io.Writer, channel string, messages []any) {
	if len(messages) == 0 || !g.active(channel) {
		return
	}
	prefix := prefixFor(kind, channel)
	if g.decorate != nil {
		prefix = g.decorate(kind, prefix)
	}
	fmt.Fprintf(w, "%s %s\n", prefix, g.renderer.Render(messages))
}

// active compares the raw channel argument against the stored set. The
// comparison is exact: no trimming, no case folding.
func (g *Gate) active(channel string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, ch := range g.channels {
		if ch == channel {
			return true
		}
	}
	return false
}

func prefixFor(kind Kind, channel string) string {
	upper := strings.ToUpper(channel)
	switch kind {
	case KindError:
		return "[" + upper + ":ERROR]"
	case KindDebug:
		return "[" + upper + ":DEBUG]"
	default:
		return "[" + upper + "]"
	}
}

var (
	defaultOnce sync.Once
	defaultGate *Gate
)

// Default returns the process-wide gate, created from the environment on
// first use. The package-level SetChannels, Log, Error, Debug and
// ActiveChannels delegate to it.
func Default() *Gate {
	defaultOnce.Do(func() { defaultGate = FromEnv() })
	return defaultGate
}

// SetChannels replaces the active set of the process-wide gate.
func SetChannels(channels ...string) { Default().SetChannels(channels...) }

// Log emits an info record through the process-wide gate.
func Log(channel string, messages ...any) { Default().Log(channel, messages...) }

// Error emits an error record through the process-wide gate.
func Error(channel string, messages ...any) { Default().Error(channel, messages...) }

// Debug emits a debug record through the process-wide gate.
func Debug(channel string, messages ...any) { Default().Debug(channel, messages...) }

// ActiveChannels returns a copy of the process-wide gate's active set.
func ActiveChannels() []string { return Default().ActiveChannels() }
