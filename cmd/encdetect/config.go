package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/radian-jp/encdetect"
)

// Config holds the candidate encoding list for one invocation.
//
//	candidates = ["utf-16le", "utf-8"]
//	legacy_codepage = "shift_jis"
//
// legacy_codepage, when set, is appended as the final candidate in place of
// the environment-derived legacy code page.
type Config struct {
	Candidates     []string `toml:"candidates"`
	LegacyCodePage string   `toml:"legacy_codepage"`
}

// loadConfig reads and parses a TOML config file.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// ResolveCandidates turns the configured encoding names into candidates,
// preserving their order. An empty config resolves to nil so the library
// defaults apply.
func (c *Config) ResolveCandidates() ([]encdetect.Candidate, error) {
	var out []encdetect.Candidate
	for _, name := range c.Candidates {
		cand, err := encdetect.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("candidate %q: %w", name, err)
		}
		out = append(out, cand)
	}
	if c.LegacyCodePage != "" {
		cand, err := encdetect.Lookup(c.LegacyCodePage)
		if err != nil {
			return nil, fmt.Errorf("legacy_codepage %q: %w", c.LegacyCodePage, err)
		}
		out = append(out, cand)
	}
	return out, nil
}
