package encdetect

import (
	"bytes"
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		wantName string
		width    Width
		preamble []byte
	}{
		{
			name:     "utf-8",
			label:    "utf-8",
			wantName: "utf-8",
			width:    WidthVariable,
			preamble: []byte{0xEF, 0xBB, 0xBF},
		},
		{
			name:     "utf-16le",
			label:    "UTF-16LE",
			wantName: "utf-16le",
			width:    Width2,
			preamble: []byte{0xFF, 0xFE},
		},
		{
			name:     "bare utf-16 means little endian",
			label:    "utf-16",
			wantName: "utf-16le",
			width:    Width2,
			preamble: []byte{0xFF, 0xFE},
		},
		{
			name:     "utf-32be",
			label:    "utf-32be",
			wantName: "utf-32be",
			width:    Width4,
			preamble: []byte{0x00, 0x00, 0xFE, 0xFF},
		},
		{
			name:     "shift_jis",
			label:    "shift_jis",
			wantName: "shift_jis",
			width:    Width1,
		},
		{
			name:     "sjis alias",
			label:    "sjis",
			wantName: "shift_jis",
			width:    Width1,
		},
		{
			name:     "windows-1252",
			label:    "windows-1252",
			wantName: "windows-1252",
			width:    Width1,
		},
		{
			name:     "euc-jp",
			label:    "EUC-JP",
			wantName: "euc-jp",
			width:    Width1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Lookup(tt.label)
			if err != nil {
				t.Fatalf("Lookup(%q) returned error: %v", tt.label, err)
			}
			if c.Name != tt.wantName {
				t.Errorf("Lookup(%q).Name = %q, expected %q", tt.label, c.Name, tt.wantName)
			}
			if c.Width != tt.width {
				t.Errorf("Lookup(%q).Width = %d, expected %d", tt.label, c.Width, tt.width)
			}
			if !bytes.Equal(c.Preamble, tt.preamble) {
				t.Errorf("Lookup(%q).Preamble = %v, expected %v", tt.label, c.Preamble, tt.preamble)
			}
			if c.Encoding == nil {
				t.Errorf("Lookup(%q).Encoding is nil", tt.label)
			}
		})
	}
}

func TestLookupUnknownEncoding(t *testing.T) {
	_, err := Lookup("no-such-encoding")
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("Lookup(unknown) error = %v, expected ErrUnknownEncoding", err)
	}
}

func TestDefaultCandidates(t *testing.T) {
	defaults := DefaultCandidates()
	if len(defaults) != 3 {
		t.Fatalf("DefaultCandidates() returned %d candidates, expected 3", len(defaults))
	}
	if defaults[0].Name != "utf-16le" {
		t.Errorf("defaults[0] = %q, expected utf-16le", defaults[0].Name)
	}
	if defaults[1].Name != "utf-8" {
		t.Errorf("defaults[1] = %q, expected utf-8", defaults[1].Name)
	}
	if defaults[2].Name != LegacyCodePage().Name {
		t.Errorf("defaults[2] = %q, expected legacy code page %q", defaults[2].Name, LegacyCodePage().Name)
	}
}

func TestDefaultCandidatesReturnsCopy(t *testing.T) {
	first := DefaultCandidates()
	first[0] = Candidate{Name: "mutated"}

	second := DefaultCandidates()
	if second[0].Name != "utf-16le" {
		t.Errorf("mutating the returned slice leaked into the shared defaults: %q", second[0].Name)
	}
}

func TestLegacyCodePage(t *testing.T) {
	c := LegacyCodePage()
	if c.Encoding == nil {
		t.Fatal("LegacyCodePage().Encoding is nil")
	}
	if c.Width != Width1 && c.Width != WidthVariable {
		t.Errorf("LegacyCodePage().Width = %d, expected a narrow width", c.Width)
	}
}

func TestResolveLegacyCodePage(t *testing.T) {
	tests := []struct {
		name    string
		charset string
		want    string
	}{
		{name: "empty falls back", charset: "", want: "windows-1252"},
		{name: "unknown falls back", charset: "bogus", want: "windows-1252"},
		{name: "utf-8 carries no legacy info", charset: "UTF-8", want: "windows-1252"},
		{name: "shift_jis", charset: "sjis", want: "shift_jis"},
		{name: "euc-jp", charset: "euc-jp", want: "euc-jp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveLegacyCodePage(tt.charset); got.Name != tt.want {
				t.Errorf("resolveLegacyCodePage(%q) = %q, expected %q", tt.charset, got.Name, tt.want)
			}
		})
	}
}
