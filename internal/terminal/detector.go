// Package terminal reports whether the current process is attached to an
// interactive terminal or running under CI, so the command line tool can
// pick a suitable log output format.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains environment variables that indicate a CI environment.
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"JENKINS_URL",
	"TRAVIS",
	"CIRCLECI",
	"BUILDKITE",
	"DRONE",
	"TF_BUILD",
}

// Options force the interactivity decision regardless of the environment.
type Options struct {
	ForceInteractive    bool
	ForceNonInteractive bool
}

// Detector decides whether the process should behave interactively.
type Detector struct {
	opts Options
}

// New creates a Detector with the given options.
func New(opts Options) *Detector {
	return &Detector{opts: opts}
}

// IsInteractive returns true when the process should produce output meant
// for a human at a terminal. Explicit options take precedence, then CI
// detection, then whether stderr is a terminal.
func (d *Detector) IsInteractive() bool {
	if d.opts.ForceInteractive {
		return true
	}
	if d.opts.ForceNonInteractive {
		return false
	}
	if d.IsCI() {
		return false
	}
	return d.IsTerminal()
}

// IsTerminal reports whether stderr is connected to a terminal.
func (d *Detector) IsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// IsCI reports whether the process appears to run under a CI system. The
// generic CI variable must be truthy; for the system-specific variables
// presence is enough.
func (d *Detector) IsCI() bool {
	for _, name := range ciEnvVars {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		if name == "CI" {
			return isTruthy(v)
		}
		return true
	}
	return false
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
