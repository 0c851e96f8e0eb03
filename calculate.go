package crc

// finalize transforms a raw remainder into the externally visible checksum:
// optional bit reversal over the width, then the final XOR, masked to the
// width.
//
// The reflect flag passed by the public functions is ReflectIn != ReflectOut,
// not ReflectOut alone: the calculators keep the remainder in the input bit
// order, so finalization corrects only the difference between the input and
// output conventions.
func finalize[T Word](rem, finalXOR T, reflect bool, width uint) T {
	if reflect {
		rem = Reflect(rem, width)
	}
	return (rem ^ finalXOR) & mask[T](width)
}

// unfinalize is the exact inverse of finalize, recovering the raw remainder
// from a checksum so that computation can continue where it left off.
func unfinalize[T Word](sum, finalXOR T, reflect bool, width uint) T {
	rem := (sum & mask[T](width)) ^ finalXOR
	if reflect {
		rem = Reflect(rem, width)
	}
	return rem
}

// Checksum returns the CRC of data under the algorithm described by p,
// computed one bit at a time.
func Checksum[T Word](data []byte, p Params[T]) T {
	rem := remainder(data, p, p.Init)
	return finalize(rem, p.FinalXOR, p.ReflectIn != p.ReflectOut, p.Width)
}

// Update continues a computation begun by a previous Checksum or Update
// call, returning the CRC of the concatenation of all data seen so far.
func Update[T Word](prev T, data []byte, p Params[T]) T {
	rem := unfinalize(prev, p.FinalXOR, p.ReflectIn != p.ReflectOut, p.Width)
	rem = remainder(data, p, rem)
	return finalize(rem, p.FinalXOR, p.ReflectIn != p.ReflectOut, p.Width)
}

// ChecksumBits returns the CRC of the first nbits bits of data, which need
// not be a whole number of bytes. See the package documentation for the
// placement of trailing bits within the final byte. data must hold at least
// (nbits+7)/8 bytes.
func ChecksumBits[T Word](data []byte, nbits int, p Params[T]) T {
	rem := remainderBitCount(data, nbits, p, p.Init)
	return finalize(rem, p.FinalXOR, p.ReflectIn != p.ReflectOut, p.Width)
}

// UpdateBits continues a previous computation with the first nbits bits of
// data.
func UpdateBits[T Word](prev T, data []byte, nbits int, p Params[T]) T {
	rem := unfinalize(prev, p.FinalXOR, p.ReflectIn != p.ReflectOut, p.Width)
	rem = remainderBitCount(data, nbits, p, rem)
	return finalize(rem, p.FinalXOR, p.ReflectIn != p.ReflectOut, p.Width)
}

// Checksum returns the CRC of data, one table lookup per byte. The result
// is identical to the bit-serial Checksum for the same parameters.
func (t *Table[T]) Checksum(data []byte) T {
	p := t.params
	rem := t.update(p.Init, data)
	return finalize(rem, p.FinalXOR, p.ReflectIn != p.ReflectOut, p.Width)
}

// Update continues a computation begun by a previous Checksum or Update
// call, one table lookup per byte.
func (t *Table[T]) Update(prev T, data []byte) T {
	p := t.params
	rem := unfinalize(prev, p.FinalXOR, p.ReflectIn != p.ReflectOut, p.Width)
	rem = t.update(rem, data)
	return finalize(rem, p.FinalXOR, p.ReflectIn != p.ReflectOut, p.Width)
}

// ChecksumBits returns the CRC of the first nbits bits of data, processing
// whole bytes through the table.
func (t *Table[T]) ChecksumBits(data []byte, nbits int) T {
	p := t.params
	rem := t.updateBitCount(p.Init, data, nbits)
	return finalize(rem, p.FinalXOR, p.ReflectIn != p.ReflectOut, p.Width)
}

// UpdateBits continues a previous computation with the first nbits bits of
// data.
func (t *Table[T]) UpdateBits(prev T, data []byte, nbits int) T {
	p := t.params
	rem := unfinalize(prev, p.FinalXOR, p.ReflectIn != p.ReflectOut, p.Width)
	rem = t.updateBitCount(rem, data, nbits)
	return finalize(rem, p.FinalXOR, p.ReflectIn != p.ReflectOut, p.Width)
}
