package crc

// remainder folds data into the running remainder one bit at a time. Three
// register conventions keep the inner loop down to a single shift and
// conditional XOR:
//
//	Reflected input: the remainder runs in reflected bit order, shifting
//	right with the polynomial reflected over the width.
//
//	MSB-first, width >= 8: each byte is XORed into the top of the
//	remainder, which shifts left testing bit width-1.
//
//	MSB-first, width < 8: remainder and polynomial are held left-aligned
//	in a byte-sized register so bit 7 doubles as the top bit of the CRC,
//	then shifted back down on return.
func remainder[T Word](data []byte, p Params[T], rem T) T {
	switch {
	case p.ReflectIn:
		poly := Reflect(p.Poly, p.Width)
		for _, b := range data {
			rem ^= T(b)
			for i := 0; i < 8; i++ {
				if rem&1 != 0 {
					rem = rem>>1 ^ poly
				} else {
					rem >>= 1
				}
			}
		}
	case p.Width >= 8:
		shift := p.Width - 8
		top := T(1) << (p.Width - 1)
		for _, b := range data {
			rem ^= T(b) << shift
			for i := 0; i < 8; i++ {
				if rem&top != 0 {
					rem = rem<<1 ^ p.Poly
				} else {
					rem <<= 1
				}
			}
		}
	default:
		shift := 8 - p.Width
		poly := p.Poly << shift
		rem <<= shift
		for _, b := range data {
			rem ^= T(b)
			for i := 0; i < 8; i++ {
				if rem&0x80 != 0 {
					rem = rem<<1 ^ poly
				} else {
					rem <<= 1
				}
			}
		}
		rem >>= shift
	}

	return rem
}

// remainderBits folds nbits bits of the byte last into the remainder, under
// the same three conventions as remainder. Reflected algorithms consume the
// low-order bits of last; MSB-first algorithms consume the high-order bits.
// nbits must be in [1, 7].
func remainderBits[T Word](last byte, nbits uint, p Params[T], rem T) T {
	switch {
	case p.ReflectIn:
		poly := Reflect(p.Poly, p.Width)
		rem ^= T(last)
		for i := uint(0); i < nbits; i++ {
			if rem&1 != 0 {
				rem = rem>>1 ^ poly
			} else {
				rem >>= 1
			}
		}
	case p.Width >= 8:
		rem ^= T(last) << (p.Width - 8)
		top := T(1) << (p.Width - 1)
		for i := uint(0); i < nbits; i++ {
			if rem&top != 0 {
				rem = rem<<1 ^ p.Poly
			} else {
				rem <<= 1
			}
		}
	default:
		shift := 8 - p.Width
		poly := p.Poly << shift
		rem <<= shift
		rem ^= T(last)
		for i := uint(0); i < nbits; i++ {
			if rem&0x80 != 0 {
				rem = rem<<1 ^ poly
			} else {
				rem <<= 1
			}
		}
		rem >>= shift
	}

	return rem
}

// remainderBitCount folds the first nbits bits of data into the remainder:
// whole bytes first, then any trailing partial byte.
func remainderBitCount[T Word](data []byte, nbits int, p Params[T], rem T) T {
	whole := nbits >> 3
	rem = remainder(data[:whole], p, rem)
	if extra := uint(nbits & 7); extra != 0 {
		rem = remainderBits(data[whole], extra, p, rem)
	}
	return rem
}
