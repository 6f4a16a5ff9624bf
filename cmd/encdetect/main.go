// Package main provides the entry point for the encdetect command line
// tool. It reads raw bytes from files or standard input, runs candidate
// based encoding detection, and prints the decoded text.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/radian-jp/encdetect"
	"github.com/radian-jp/encdetect/internal/terminal"
)

// Error definitions
var (
	ErrUnknownLogLevel = errors.New("unknown log level")
)

var (
	configPath     = flag.String("config", "", "path to TOML config file listing candidate encodings")
	logLevel       = flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	sniff          = flag.Bool("sniff", false, "build the candidate list by statistical charset sniffing instead of the configured list")
	quiet          = flag.Bool("quiet", false, "print only the decoded text")
	nonInteractive = flag.Bool("non-interactive", false, "force non-interactive log output")
)

func main() {
	// Generate run ID early so every log record of this invocation can be
	// correlated.
	runID := uuid.New().String()

	if err := run(runID); err != nil {
		fmt.Fprintf(os.Stderr, "encdetect: %v\n", err)
		os.Exit(1)
	}
}

func run(runID string) error {
	flag.Parse()

	if err := setupLogger(*logLevel, runID); err != nil {
		return err
	}

	candidates, err := loadCandidates(*configPath)
	if err != nil {
		return err
	}

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		if err := detectOne(path, candidates); err != nil {
			return err
		}
	}
	return nil
}

func detectOne(path string, candidates []encdetect.Candidate) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}
	// Console input usually carries a trailing newline that is not part of
	// the text under detection.
	data = bytes.TrimRight(data, "\r\n")

	if *sniff {
		sniffed, err := encdetect.SniffCandidates(data)
		if err != nil {
			slog.Warn("charset sniffing failed, using configured candidates", "input", path, "error", err)
		} else {
			candidates = sniffed
		}
	}

	res, ok := encdetect.Detect(data, candidates...)
	slog.Info("detection finished",
		"input", path,
		"candidate", res.Candidate.Name,
		"score", res.Score,
		"fallback", !ok,
	)
	if *quiet {
		fmt.Println(res.Text)
		return nil
	}
	fmt.Printf("%s\t%s\t%d\t%s\n", path, res.Candidate.Name, res.Score, res.Text)
	return nil
}

// readInput reads the named file, or standard input for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// loadCandidates resolves the candidate list from the config file, or
// returns nil so the library defaults apply.
func loadCandidates(path string) ([]encdetect.Candidate, error) {
	if path == "" {
		return nil, nil
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	return cfg.ResolveCandidates()
}

// setupLogger installs the process-wide slog logger on stderr. Interactive
// runs get compact output without timestamps; non-interactive runs keep the
// full record for log collection.
func setupLogger(level, runID string) error {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return err
	}

	det := terminal.New(terminal.Options{ForceNonInteractive: *nonInteractive})
	opts := &slog.HandlerOptions{Level: lvl}
	if det.IsInteractive() {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, opts)).With("run_id", runID)
	slog.SetDefault(logger)
	return nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
	}
}
