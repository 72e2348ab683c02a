// Package nick implements the 24-bit constructor name encoding used to tag
// OmniLisp terms and bind names in the binder stack.
//
// A nick packs up to 4 characters into a 24-bit value, 6 bits per character,
// most-significant character first: k = (k<<6 + code(c)) & 0xFFFFFF for each
// character in turn. Names longer than 4 characters are truncated to their
// first 4; this is a lossy encoding by design (the original identifier text
// is never recovered from a nick alone; grammar productions that need a
// reversible name keep the source text separately).
package nick

import "github.com/coregx/omnilisp/internal/classify"

// Mask keeps an accumulator to 24 significant bits.
const Mask = 0xFFFFFF

// MaxChars is the number of leading characters packed into a nick; any
// characters beyond the fourth are ignored.
const MaxChars = 4

// Encode packs s into a 24-bit nick using classify.NickCode for each byte.
// The empty string encodes to 0.
func Encode(s string) uint32 {
	var k uint32
	n := len(s)
	if n > MaxChars {
		n = MaxChars
	}
	for i := 0; i < n; i++ {
		code := classify.NickCode[s[i]]
		k = (k<<6 + uint32(code)) & Mask
	}
	return k
}
