package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecoder_ValidText(t *testing.T) {
	d := NewDecoder()
	assert.Equal(t, "hello 한글", d.Decode([]byte("hello 한글")))
	assert.Equal(t, 0, d.Pending())
}

func TestDecoder_InvalidBytesAreReplaced(t *testing.T) {
	d := NewDecoder()
	assert.Equal(t, "a�b", d.Decode([]byte("a\xffb")))
	assert.Equal(t, "��", d.Decode([]byte("\xfe\xff")))
}

func TestDecoder_CarriesSplitSequence(t *testing.T) {
	euro := []byte("€") // e2 82 ac
	d := NewDecoder()

	assert.Equal(t, "x", d.Decode(append([]byte("x"), euro[:2]...)))
	assert.Equal(t, 2, d.Pending())

	assert.Equal(t, "€y", d.Decode(append(euro[2:], 'y')))
	assert.Equal(t, 0, d.Pending())
}

func TestDecoder_SplitAcrossManyChunks(t *testing.T) {
	d := NewDecoder()
	var got string
	for _, b := range []byte("가나") {
		got += d.Decode([]byte{b})
	}
	assert.Equal(t, "가나", got)
}

func TestDecoder_BrokenCarryIsReplaced(t *testing.T) {
	d := NewDecoder()
	assert.Equal(t, "", d.Decode([]byte{0xe2, 0x82}))
	// The broken sequence is one maximal subpart and becomes a single U+FFFD.
	assert.Equal(t, "\uFFFDA", d.Decode([]byte("A")))
}

func TestDecoder_InvalidTailIsNotHeldBack(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"lead byte then line feed", []byte("abc\xe2\n"), "abc\uFFFD\n"},
		{"lead byte then ascii", []byte("x\xf0y"), "x\uFFFDy"},
		{"continuation then ascii", []byte("\xe2\x82A\n"), "\uFFFDA\n"},
		{"stray continuation byte at end", []byte("ok\x80"), "ok\uFFFD"},
		{"lead byte with no valid encoding", []byte("ok\xc0"), "ok\uFFFD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder()
			assert.Equal(t, tt.want, d.Decode(tt.in))
			assert.Equal(t, 0, d.Pending())
		})
	}
}

func TestIncomplete(t *testing.T) {
	assert.True(t, incomplete([]byte{0xe2}))
	assert.True(t, incomplete([]byte{0xe2, 0x82}))
	assert.True(t, incomplete([]byte{0xf0, 0x9f, 0x98}))
	assert.False(t, incomplete([]byte{0xe2, '\n'}))
	assert.False(t, incomplete([]byte{0xe2, 0x82, 0xac}))
	assert.False(t, incomplete([]byte{0x80}))
	assert.False(t, incomplete([]byte{0xff}))
	assert.False(t, incomplete(nil))
}

func TestDecoder_Reset(t *testing.T) {
	d := NewDecoder()
	d.Decode([]byte{0xe2})
	assert.Equal(t, 1, d.Pending())
	d.Reset()
	assert.Equal(t, 0, d.Pending())
	assert.Equal(t, "ok", d.Decode([]byte("ok")))
}
