package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/control-theory/chanlog"
	"github.com/control-theory/chanlog/internal/style"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/chanlog/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("chanlog - Channel-Gated Log Filter\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice != 0 {
		fmt.Fprintln(os.Stderr, "chanlog: reading from a terminal; pipe input to filter it (Ctrl+D to end)")
	}

	if err := runFilter(cfg, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newGate builds the gate from CLI configuration. An empty channels setting
// inherits LOG_CHANNELS so the filter and in-process users of the library
// agree on what is visible.
func newGate(cfg appConfig) *chanlog.Gate {
	var opts []chanlog.Option
	if cfg.Color {
		opts = append(opts, chanlog.WithDecorator(style.Prefix))
	}
	if cfg.Channels == "" {
		return chanlog.FromEnv(opts...)
	}
	opts = append(opts, chanlog.WithChannels(chanlog.ParseChannels(cfg.Channels)...))
	return chanlog.New(opts...)
}

func emitFor(gate *chanlog.Gate, severity string) func(string, ...any) {
	switch severity {
	case severityError:
		return gate.Error
	case severityDebug:
		return gate.Debug
	default:
		return gate.Log
	}
}

// splitLine extracts the channel token from a line. Lines without the
// delimiter, or with a blank token before it, belong to the fallback
// channel unchanged.
func splitLine(line, delimiter, fallback string) (channel, message string) {
	before, after, ok := strings.Cut(line, delimiter)
	if !ok {
		return fallback, line
	}
	channel = strings.TrimSpace(before)
	if channel == "" {
		return fallback, line
	}
	return channel, strings.TrimSpace(after)
}

func runFilter(cfg appConfig, in io.Reader) error {
	gate := newGate(cfg)
	emit := emitFor(gate, cfg.Severity)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	lines := make(chan string)

	g.Go(func() error {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-gctx.Done():
				return nil
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		for line := range lines {
			channel, message := splitLine(line, cfg.Delimiter, cfg.FallbackChannel)
			if message == "" {
				continue
			}
			emit(channel, message)
		}
		return nil
	})

	return g.Wait()
}
