package source

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decoder turns raw appended bytes into text. Invalid sequences become U+FFFD
// so binary content never stops the view. A sequence cut off at the end of one
// chunk is held back and completed by the next one instead of being replaced.
type Decoder struct {
	t       transform.Transformer
	pending []byte
}

// NewDecoder creates a UTF-8 decoder
func NewDecoder() *Decoder {
	return &Decoder{t: unicode.UTF8.NewDecoder()}
}

// Decode returns the text for p plus any bytes held back from the last call
func (d *Decoder) Decode(p []byte) string {
	if len(d.pending) > 0 {
		p = append(d.pending, p...)
		d.pending = nil
	}
	if len(p) == 0 {
		return ""
	}

	// Every input byte yields at most one U+FFFD, which is three bytes.
	dst := make([]byte, 3*len(p))
	nDst, nSrc, err := d.t.Transform(dst, p, false)
	if err != nil && err != transform.ErrShortSrc {
		// Only short buffers are reported by the UTF-8 decoder and dst is
		// always large enough; treat anything else as the end of usable input.
		return string(dst[:nDst])
	}
	if tail := p[nSrc:]; len(tail) > 0 {
		if incomplete(tail) {
			d.pending = append([]byte(nil), tail...)
		} else {
			// The tail can never become a valid character; replace it now so
			// a line feed behind it is not held back.
			d.t.Reset()
			n, _, _ := d.t.Transform(dst[nDst:], tail, true)
			nDst += n
		}
	}
	return string(dst[:nDst])
}

// incomplete reports whether b is a proper prefix of a UTF-8 encoding, that is
// a lead byte followed only by continuation bytes and fewer of them than the
// lead byte announces.
func incomplete(b []byte) bool {
	if len(b) == 0 || len(b) >= utf8.UTFMax {
		return false
	}
	var size int
	switch c := b[0]; {
	case c >= 0xc2 && c <= 0xdf:
		size = 2
	case c >= 0xe0 && c <= 0xef:
		size = 3
	case c >= 0xf0 && c <= 0xf4:
		size = 4
	default:
		return false
	}
	if len(b) >= size {
		return false
	}
	for _, c := range b[1:] {
		if c < 0x80 || c > 0xbf {
			return false
		}
	}
	return true
}

// Pending returns the number of bytes held back for the next call
func (d *Decoder) Pending() int {
	return len(d.pending)
}

// Reset drops held-back bytes
func (d *Decoder) Reset() {
	d.pending = nil
	d.t.Reset()
}
