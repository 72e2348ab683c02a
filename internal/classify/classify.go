// Package classify holds the byte-class table used by the name encoder.
//
// The table is a precomputed [256]byte array populated once at
// package init, the same shape the teacher's simd package uses for its
// byte-frequency and character-class tables: a single array lookup instead
// of a chain of comparisons.
package classify

// NickReserved is the 6-bit code assigned to any byte that has no dedicated
// slot in the nick alphabet (everything other than a-z, A-Z, 0-9, and '-').
const NickReserved = 63

// NickCode maps a byte to its 6-bit nick alphabet code:
//
//	'a'-'z' -> 0-25
//	'A'-'Z' -> 26-51
//	'0'-'9' -> 52-61
//	'-'     -> 62
//	anything else (including '_') -> NickReserved (63)
var NickCode [256]byte

func init() {
	for b := 0; b < 256; b++ {
		NickCode[b] = NickReserved
	}
	for b := byte('a'); b <= 'z'; b++ {
		NickCode[b] = b - 'a'
	}
	for b := byte('A'); b <= 'Z'; b++ {
		NickCode[b] = 26 + (b - 'A')
	}
	for b := byte('0'); b <= '9'; b++ {
		NickCode[b] = 52 + (b - '0')
	}
	NickCode['-'] = 62
}
