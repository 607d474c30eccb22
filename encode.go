package gocmip6

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Bytes returns the parameter file contents: one line of JSON with ", " and
// ": " separators, DEL and non-ASCII characters escaped and no trailing newline.
// Downstream tools compare files byte for byte, so this form is fixed.
func (p *QueryParameters) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, errors.Wrap(err, "encode parameters")
	}
	return spaceAndEscape(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// Encode writes the parameter file contents to w.
func (p *QueryParameters) Encode(w io.Writer) error {
	b, err := p.Bytes()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// spaceAndEscape rewrites compact JSON so that a space follows every
// separator outside strings, and every DEL or non-ASCII rune inside a
// string becomes a \u escape.
func spaceAndEscape(src []byte) []byte {
	out := make([]byte, 0, len(src)+len(src)/8)
	inString, escaped := false, false
	for i := 0; i < len(src); {
		c := src[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			case c == 0x7f:
				out = appendRuneEscape(out, rune(c))
				i++
				continue
			case c >= utf8.RuneSelf:
				r, size := utf8.DecodeRune(src[i:])
				out = appendRuneEscape(out, r)
				i += size
				continue
			}
			out = append(out, c)
			i++
			continue
		}
		out = append(out, c)
		switch c {
		case '"':
			inString = true
		case ',', ':':
			out = append(out, ' ')
		}
		i++
	}
	return out
}

func appendRuneEscape(out []byte, r rune) []byte {
	if r > 0xffff {
		hi, lo := utf16.EncodeRune(r)
		return fmt.Appendf(out, `\u%04x\u%04x`, hi, lo)
	}
	return fmt.Appendf(out, `\u%04x`, r)
}
