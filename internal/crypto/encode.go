package crypto

import "encoding/base64"

// EncodedKeySize is the length of a WireGuard textual key: 44 standard
// base64 characters, the last of which is always the '=' pad.
const EncodedKeySize = 44

// encodeGroup writes the four base64 characters covering one 3-byte group.
// The character for each 6-bit value is picked arithmetically, so encoding
// never branches or indexes a table on key bytes.
func encodeGroup(dst []byte, b0, b1, b2 byte) {
	v := [4]int{
		int(b0) >> 2,
		(int(b0)<<4 | int(b1)>>4) & 63,
		(int(b1)<<2 | int(b2)>>6) & 63,
		int(b2) & 63,
	}
	for i, x := range v {
		dst[i] = byte(x + 65 +
			(((25 - x) >> 8) & 6) -
			(((51 - x) >> 8) & 75) -
			(((61 - x) >> 8) & 15) +
			(((62 - x) >> 8) & 3))
	}
}

// KeyToBase64 renders a 32-byte key in WireGuard's 44-character form. Ten
// full groups cover bytes 0..29; the tail group encodes bytes 30..31 with a
// zero third byte and its last character is forced to '='. Output is always
// identical to standard padded base64.
func KeyToBase64(key [32]byte) string {
	var dst [EncodedKeySize]byte
	for i := 0; i < 10; i++ {
		encodeGroup(dst[i*4:], key[i*3], key[i*3+1], key[i*3+2])
	}
	encodeGroup(dst[40:], key[30], key[31], 0)
	dst[EncodedKeySize-1] = '='
	return string(dst[:])
}

// KeyFromBase64 decodes a WireGuard textual key. Malformed base64 surfaces
// as the standard decoder's error; well-formed input of any length other
// than 32 bytes is ErrInvalidKeyLength.
func KeyFromBase64(s string) ([32]byte, error) {
	var key [32]byte
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return key, err
	}
	if len(raw) != KeySize {
		return key, ErrInvalidKeyLength
	}
	copy(key[:], raw)
	return key, nil
}
