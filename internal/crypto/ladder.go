package crypto

// basePoint is the canonical Curve25519 generator, u = 9.
var basePoint = [32]byte{9}

// scalarMult writes to dst the u-coordinate of scalar*P, where P is the
// point with u-coordinate point. The scalar is consumed exactly as given;
// callers wanting RFC 7748 clamping apply Clamp first.
//
// This is the classic Montgomery ladder over projective (X:Z) pairs: one
// combined differential add-and-double per scalar bit, 255 fixed
// iterations from bit 254 down to bit 0, with the working pairs swapped by
// mask before and after each step. A single field inversion at the end
// converts X/Z back to affine.
func scalarMult(dst, scalar, point *[32]byte) {
	var u fieldElement
	feFromBytes(&u, point)

	a := fieldElement{1}
	b := u
	var c fieldElement
	d := fieldElement{1}
	var e, f fieldElement

	for i := 254; i >= 0; i-- {
		bit := int64(scalar[i>>3]>>(uint(i)&7)) & 1
		feCSwap(&a, &b, bit)
		feCSwap(&c, &d, bit)
		feAdd(&e, &a, &c)
		feSub(&a, &a, &c)
		feAdd(&c, &b, &d)
		feSub(&b, &b, &d)
		feMul(&d, &e, &e)
		feMul(&f, &a, &a)
		feMul(&a, &c, &a)
		feMul(&c, &b, &e)
		feAdd(&e, &a, &c)
		feSub(&a, &a, &c)
		feMul(&b, &a, &a)
		feSub(&c, &d, &f)
		feMul(&a, &c, &fe121665)
		feAdd(&a, &a, &d)
		feMul(&c, &c, &a)
		feMul(&a, &d, &f)
		feMul(&d, &b, &u)
		feMul(&b, &e, &e)
		feCSwap(&a, &b, bit)
		feCSwap(&c, &d, bit)
	}

	feInvert(&c, &c)
	feMul(&a, &a, &c)
	feToBytes(dst, &a)
}
