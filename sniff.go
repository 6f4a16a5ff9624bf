package encdetect

import (
	"errors"
	"fmt"

	"github.com/saintfish/chardet"
)

// ErrNoCandidates is returned by SniffCandidates when statistical detection
// produced no charset that resolves to a supported codec.
var ErrNoCandidates = errors.New("no resolvable encoding candidates")

// SniffCandidates builds an ordered candidate list for data by statistical
// charset detection, for callers who have no candidate list at all. Charsets
// are ordered by detector confidence; ones that do not resolve to a
// supported codec are skipped. This is best-effort input to DecodeAuto, not
// part of its correctness guarantee: the detector can and does misjudge
// short or ambiguous buffers.
func SniffCandidates(data []byte) ([]Candidate, error) {
	// The detector happily guesses on an empty buffer; there is nothing to
	// sniff in it.
	if len(data) == 0 {
		return nil, ErrNoCandidates
	}
	results, err := chardet.NewTextDetector().DetectAll(data)
	if err != nil {
		return nil, fmt.Errorf("charset detection: %w", err)
	}

	seen := make(map[string]struct{}, len(results))
	var candidates []Candidate
	for _, r := range results {
		c, err := Lookup(r.Charset)
		if err != nil {
			continue
		}
		if _, dup := seen[c.Name]; dup {
			continue
		}
		seen[c.Name] = struct{}{}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	return candidates, nil
}
