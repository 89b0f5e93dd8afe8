package postscript

import "golang.org/x/text/encoding/charmap"

// EncodeLatin9 transcodes s to ISO 8859-15 (Latin-9) bytes, the single-byte
// Western European output encoding spec.md §5 requires. Runes with no
// codepoint in the target table are replaced by '?', applied rune by rune
// rather than relying on the encoder's all-or-nothing error return.
func EncodeLatin9(s string) []byte {
	enc := charmap.ISO8859_15.NewEncoder()
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, err := enc.Bytes([]byte(string(r)))
		if err != nil || len(b) == 0 {
			out = append(out, '?')
			continue
		}
		out = append(out, b...)
	}
	return out
}
