package encdetect

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAutoAtNilPointer(t *testing.T) {
	assert.Equal(t, "", DecodeAutoAt(nil, 16))
}

func TestDecodeAutoAtZeroLength(t *testing.T) {
	buf := []byte{'a'}
	assert.Equal(t, "", DecodeAutoAt(unsafe.Pointer(&buf[0]), 0))
}

func TestDecodeAutoAtUTF16Terminator(t *testing.T) {
	// UTF-16LE text with an embedded zero 16-bit unit, followed by junk up
	// to maxLen. The output must stop at the logical terminator position,
	// not at the first zero byte (which is inside the very first code
	// unit).
	const want = "HID キーボード"
	data := encodeUTF16LE(t, want)
	data = append(data, 0x00, 0x00)
	data = append(data, []byte("garbage past the terminator")...)

	got := DecodeAutoAt(unsafe.Pointer(&data[0]), len(data))
	assert.Equal(t, want, got)
}

func TestDecodeAutoAtASCIITerminator(t *testing.T) {
	data := append([]byte("plain ascii"), 0x00)
	data = append(data, 0xFF, 0xFE)

	got := DecodeAutoAt(unsafe.Pointer(&data[0]), len(data), UTF8)
	assert.Equal(t, "plain ascii", got)
}

func TestDecodeAutoAtWithoutTerminator(t *testing.T) {
	data := encodeUTF16LE(t, "no terminator here")

	got := DecodeAutoAt(unsafe.Pointer(&data[0]), len(data))
	assert.Equal(t, "no terminator here", got)
}

func TestTerminatorBound(t *testing.T) {
	// "AB" in UTF-16LE followed by a 16-bit terminator. A width-1 scan
	// would stop after one byte; the bound must cover the full content for
	// the width-2 candidate.
	data := []byte{'A', 0x00, 'B', 0x00, 0x00, 0x00, 'x', 'y'}

	bound := terminatorBound(data, DefaultCandidates())
	require.Equal(t, 4, bound)
}
