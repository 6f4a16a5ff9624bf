// Package encdetect guesses the text encoding of a byte buffer whose true
// encoding is unknown and returns the most plausible decoded text.
//
// For each candidate encoding the buffer is preprocessed (truncated at an
// embedded terminator appropriate to that candidate's code-unit width, then
// stripped of a matching byte-order mark), decoded, rejected when the result
// is definitely garbled, and scored for naturalness. The best-scoring
// survivor wins; when every candidate fails, a lossy decode with the host
// legacy code page is returned, so detection never fails.
//
// All package state is built lazily once and never mutated afterwards;
// concurrent callers need no locking.
package encdetect

import (
	"log/slog"

	"github.com/radian-jp/encdetect/internal/textscan"
)

// Result describes a detection outcome: the candidate that produced the
// text and the naturalness score it received.
type Result struct {
	Candidate Candidate
	Text      string
	Score     int
}

// DecodeAuto decodes data with the most plausible of the given candidate
// encodings and returns the decoded text. When no candidates are supplied,
// DefaultCandidates is used. DecodeAuto is total: it returns the empty
// string for empty input and falls back to a lossy legacy code page decode
// when every candidate is rejected.
func DecodeAuto(data []byte, candidates ...Candidate) string {
	res, _ := Detect(data, candidates...)
	return res.Text
}

// Detect is DecodeAuto with the full outcome: which candidate won and how it
// scored. ok is false when no candidate survived and the text came from the
// unconditional legacy fallback.
func Detect(data []byte, candidates ...Candidate) (res Result, ok bool) {
	if len(data) == 0 {
		return Result{}, false
	}
	// Printable ASCII decodes identically under every ASCII-compatible
	// candidate; return it verbatim rather than let a coincidentally
	// readable wide-encoding interpretation of the same bytes win.
	if textscan.IsPrintableASCII(data) {
		return Result{Candidate: ASCII, Text: string(data), Score: textscan.PerfectScore}, true
	}
	if len(candidates) == 0 {
		candidates = DefaultCandidates()
	}

	var best Result
	found := false
	for _, c := range candidates {
		text, err := decodeWith(preprocess(data, c), c)
		if err != nil {
			slog.Debug("candidate decode failed", "candidate", c.Name, "error", err)
			continue
		}
		if textscan.IsDefinitelyGarbled(text) {
			slog.Debug("candidate rejected as garbled", "candidate", c.Name)
			continue
		}
		// Strictly greater: ties keep the earlier-ordered candidate.
		if s := textscan.Score(text); !found || s > best.Score {
			best = Result{Candidate: c, Text: text, Score: s}
			found = true
			if s == textscan.PerfectScore {
				break
			}
		}
	}
	if found {
		return best, true
	}
	slog.Debug("all candidates rejected, using legacy fallback")
	return Result{Candidate: LegacyCodePage(), Text: decodeLossy(data)}, false
}

// decodeWith attempts to decode buf as the candidate's encoding. A malformed
// byte sequence is an ordinary error, never a panic; lenient codecs that
// substitute replacement characters instead of failing are caught by the
// garble filter downstream.
func decodeWith(buf []byte, c Candidate) (string, error) {
	out, err := c.Encoding.NewDecoder().Bytes(buf)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// decodeLossy decodes data with the legacy code page, accepting whatever
// comes out. This path cannot fail: single-byte code pages map every byte to
// some character, and if the decoder errors anyway the raw bytes are
// returned as-is.
func decodeLossy(data []byte) string {
	out, err := LegacyCodePage().Encoding.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(out)
}
