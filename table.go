package crc

// A Table binds a parameter set to a 256-entry lookup table mapping each
// possible byte of input to its contribution to the next remainder,
// replacing the per-bit inner loop with one lookup per byte. A Table owns a
// copy of its Params and is safe for concurrent use once built.
type Table[T Word] struct {
	params  Params[T]
	entries [256]T
}

// NewTable builds the lookup table for p by running the bit-serial
// calculator over each possible input byte.
func NewTable[T Word](p Params[T]) (*Table[T], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	tbl := &Table[T]{params: p}
	m := mask[T](p.Width)
	for b := range tbl.entries {
		entry := remainder([]byte{byte(b)}, p, 0) & m
		if !p.ReflectIn && p.Width < 8 {
			// Left-align narrow entries to match the byte-sized register
			// convention used while processing.
			entry <<= 8 - p.Width
		}
		tbl.entries[b] = entry
	}

	return tbl, nil
}

// MustTable is like NewTable but panics if the parameters are invalid. It
// simplifies table construction for static configuration.
func MustTable[T Word](p Params[T]) *Table[T] {
	tbl, err := NewTable(p)
	if err != nil {
		panic(err)
	}
	return tbl
}

// Params returns a copy of the parameter set the table was built from.
func (t *Table[T]) Params() Params[T] {
	return t.params
}

// update folds data into the running remainder one byte per lookup,
// mirroring the three register conventions of the bit-serial calculator.
func (t *Table[T]) update(rem T, data []byte) T {
	switch p := t.params; {
	case p.ReflectIn:
		for _, b := range data {
			// The shift is split so vet accepts it when T is uint8, where a
			// single shift of 8 would still be a defined zero result.
			rem = rem>>4>>4 ^ t.entries[byte(rem)^b]
		}
	case p.Width >= 8:
		shift := p.Width - 8
		for _, b := range data {
			rem = rem<<4<<4 ^ t.entries[byte(rem>>shift)^b]
		}
	default:
		shift := 8 - p.Width
		rem <<= shift
		for _, b := range data {
			// Entries are left-aligned and fit a single byte, so there is
			// no accumulation shift.
			rem = t.entries[byte(rem)^b]
		}
		rem >>= shift
	}

	return rem
}

// updateBitCount folds the first nbits bits of data into the remainder:
// whole bytes through the table, then any trailing bits bit-serially.
func (t *Table[T]) updateBitCount(rem T, data []byte, nbits int) T {
	whole := nbits >> 3
	rem = t.update(rem, data[:whole])
	if extra := uint(nbits & 7); extra != 0 {
		rem = remainderBits(data[whole], extra, t.params, rem)
	}
	return rem
}
