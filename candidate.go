package encdetect

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Error definitions for candidate resolution.
var (
	// ErrUnknownEncoding is returned when an encoding name cannot be
	// resolved to a supported codec.
	ErrUnknownEncoding = errors.New("unknown encoding name")
)

// Width classifies the code-unit width of a candidate encoding. The width
// determines how an embedded string terminator is located: a zero byte for
// width 1, a zero 16-bit unit for width 2, a zero 32-bit unit for width 4.
// Variable-width encodings (UTF-8 and the multibyte legacy code pages) use
// byte granularity, since none of them produce a zero byte except as a
// genuine terminator.
type Width int

// Supported code-unit widths.
const (
	WidthVariable Width = 0
	Width1        Width = 1
	Width2        Width = 2
	Width4        Width = 4
)

// UnitBytes returns the terminator scan step in bytes for the width.
func (w Width) UnitBytes() int {
	if w <= Width1 {
		return 1
	}
	return int(w)
}

// Candidate describes one encoding to try during detection: a name, the
// codec used to decode, the code-unit width for terminator scanning, and an
// optional preamble (BOM) that is stripped when present. Candidates are
// plain values; they are safe to copy and reuse across calls.
type Candidate struct {
	Name     string
	Encoding encoding.Encoding
	Width    Width
	Preamble []byte
}

// Prebuilt Unicode candidates. The UTF-8 candidate decodes plain UTF-8 and
// strips a BOM when one happens to be present; the UTF-16/UTF-32 candidates
// ignore BOM handling in the codec itself because the preamble is stripped
// during preprocessing.
var (
	UTF8 = Candidate{
		Name:     "utf-8",
		Encoding: unicode.UTF8,
		Width:    WidthVariable,
		Preamble: []byte{0xEF, 0xBB, 0xBF},
	}
	UTF16LE = Candidate{
		Name:     "utf-16le",
		Encoding: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
		Width:    Width2,
		Preamble: []byte{0xFF, 0xFE},
	}
	UTF16BE = Candidate{
		Name:     "utf-16be",
		Encoding: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
		Width:    Width2,
		Preamble: []byte{0xFE, 0xFF},
	}
	UTF32LE = Candidate{
		Name:     "utf-32le",
		Encoding: utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
		Width:    Width4,
		Preamble: []byte{0xFF, 0xFE, 0x00, 0x00},
	}
	UTF32BE = Candidate{
		Name:     "utf-32be",
		Encoding: utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
		Width:    Width4,
		Preamble: []byte{0x00, 0x00, 0xFE, 0xFF},
	}

	// ASCII is reported as the winning candidate when the input consists
	// entirely of printable ASCII and is returned verbatim.
	ASCII = Candidate{
		Name:     "us-ascii",
		Encoding: unicode.UTF8,
		Width:    Width1,
	}
)

var (
	legacyOnce sync.Once
	legacyCand Candidate
)

// LegacyCodePage returns the host environment's legacy code page as a
// candidate. It is resolved once, lazily, from the charset suffix of the
// LC_ALL, LC_CTYPE, or LANG environment variables (e.g. "ja_JP.sjis"). When
// the locale charset is missing, unknown, or a Unicode encoding (which
// carries no legacy code page information), Windows-1252 is used.
func LegacyCodePage() Candidate {
	legacyOnce.Do(func() {
		legacyCand = resolveLegacyCodePage(localeCharset())
	})
	return legacyCand
}

func localeCharset() string {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		_, charset, found := strings.Cut(v, ".")
		if !found {
			continue
		}
		// Strip a modifier such as "@euro".
		charset, _, _ = strings.Cut(charset, "@")
		return charset
	}
	return ""
}

func resolveLegacyCodePage(charset string) Candidate {
	fallback := Candidate{
		Name:     "windows-1252",
		Encoding: charmap.Windows1252,
		Width:    Width1,
	}
	if charset == "" {
		return fallback
	}
	c, err := Lookup(charset)
	if err != nil || (c.Width != Width1 && c.Width != WidthVariable) {
		return fallback
	}
	if strings.HasPrefix(c.Name, "utf-") {
		return fallback
	}
	return c
}

var (
	defaultsOnce sync.Once
	defaultCands []Candidate
)

// DefaultCandidates returns the candidate list used when the caller supplies
// none: UTF-16 little-endian, UTF-8, and the host legacy code page, in that
// order. The list is built once; each call returns a fresh copy so callers
// cannot mutate the shared defaults.
func DefaultCandidates() []Candidate {
	defaultsOnce.Do(func() {
		defaultCands = []Candidate{UTF16LE, UTF8, LegacyCodePage()}
	})
	out := make([]Candidate, len(defaultCands))
	copy(out, defaultCands)
	return out
}

// Lookup resolves an encoding name (a WHATWG label or IANA charset name,
// case-insensitive) into a Candidate with the appropriate code-unit width
// and preamble. Unknown names yield ErrUnknownEncoding.
func Lookup(name string) (Candidate, error) {
	label := strings.ToLower(strings.TrimSpace(name))

	// UTF-16/UTF-32 are handled up front: the WHATWG index treats UTF-16
	// labels as BOM-sensitive and has no UTF-32 entry at all, while
	// detection needs the fixed-endianness, BOM-ignoring variants.
	switch label {
	case "utf-8", "utf8":
		return UTF8, nil
	case "utf-16", "utf16", "utf-16le", "utf16le":
		return UTF16LE, nil
	case "utf-16be", "utf16be":
		return UTF16BE, nil
	case "utf-32", "utf32", "utf-32le", "utf32le":
		return UTF32LE, nil
	case "utf-32be", "utf32be":
		return UTF32BE, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		enc, err = ianaindex.IANA.Encoding(name)
		if err != nil || enc == nil {
			return Candidate{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
		}
	}
	canonical := label
	if n, err := htmlindex.Name(enc); err == nil {
		canonical = n
	}
	return Candidate{Name: canonical, Encoding: enc, Width: Width1}, nil
}
