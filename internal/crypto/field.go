package crypto

// GF(2^255-19) arithmetic in the 16-limb, radix-2^16 representation from
// TweetNaCl. Limbs are int64 and may drift outside [0, 2^16) between
// operations; carry passes bring them back. Nothing below branches on limb
// values: swaps are mask arithmetic and the final reduction subtracts the
// prime conditionally via the same masks.

// fieldElement is a field element as 16 little-endian limbs of 16 bits each.
type fieldElement [16]int64

// fe121665 is (A-2)/4 for the curve parameter A = 486662.
var fe121665 = fieldElement{0xdb41, 1}

func feAdd(dst, a, b *fieldElement) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func feSub(dst, a, b *fieldElement) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// feCarry propagates limb overflow once, low to high. The carry out of the
// top limb wraps to limb 0 scaled by 38, since 2^256 = 38 mod 2^255-19.
// Arithmetic shift keeps the pass correct for negative limbs as well.
func feCarry(e *fieldElement) {
	for i := 0; i < 16; i++ {
		c := e[i] >> 16
		e[i] -= c << 16
		if i < 15 {
			e[i+1] += c
		} else {
			e[0] += 38 * c
		}
	}
}

// feMul sets dst = a*b. The 31-entry product is folded back into 16 limbs
// with the same 38-fold wraparound, then carried twice. dst may alias a or b.
func feMul(dst, a, b *fieldElement) {
	var t [31]int64
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			t[i+j] += a[i] * b[j]
		}
	}
	for i := 0; i < 15; i++ {
		t[i] += 38 * t[i+16]
	}
	for i := 0; i < 16; i++ {
		dst[i] = t[i]
	}
	feCarry(dst)
	feCarry(dst)
}

// feInvert sets dst = a^-1, computed as a^(p-2) by square-and-multiply over
// the fixed exponent 2^255-21. The multiply is skipped only at exponent bits
// 2 and 4, which are public, so the sequence is identical for every input.
// feInvert(0) yields 0.
func feInvert(dst, a *fieldElement) {
	c := *a
	for i := 253; i >= 0; i-- {
		feMul(&c, &c, &c)
		if i != 2 && i != 4 {
			feMul(&c, &c, a)
		}
	}
	*dst = c
}

// feCSwap exchanges a and b when swap is 1 and leaves them alone when swap
// is 0, using a full-width mask instead of a branch.
func feCSwap(a, b *fieldElement, swap int64) {
	m := -swap
	for i := range a {
		t := m & (a[i] ^ b[i])
		a[i] ^= t
		b[i] ^= t
	}
}

// feFromBytes loads a little-endian 32-byte string, masking off bit 255 as
// RFC 7748 requires for u-coordinates.
func feFromBytes(dst *fieldElement, src *[32]byte) {
	for i := 0; i < 16; i++ {
		dst[i] = int64(src[2*i]) | int64(src[2*i+1])<<8
	}
	dst[15] &= 0x7fff
}

// feToBytes freezes e to its canonical representative in [0, p) and writes
// it little-endian. Three carry passes normalize the limbs, then two rounds
// of trial subtraction of p keep or discard the result by mask, never by
// branch.
func feToBytes(dst *[32]byte, e *fieldElement) {
	t := *e
	feCarry(&t)
	feCarry(&t)
	feCarry(&t)
	var m fieldElement
	for j := 0; j < 2; j++ {
		m[0] = t[0] - 0xffed
		for i := 1; i < 15; i++ {
			m[i] = t[i] - 0xffff - ((m[i-1] >> 16) & 1)
			m[i-1] &= 0xffff
		}
		m[15] = t[15] - 0x7fff - ((m[14] >> 16) & 1)
		borrow := (m[15] >> 16) & 1
		m[14] &= 0xffff
		feCSwap(&t, &m, 1-borrow)
	}
	for i := 0; i < 16; i++ {
		dst[2*i] = byte(t[i])
		dst[2*i+1] = byte(t[i] >> 8)
	}
}
