package crc

// A Digest accumulates a checksum over successive writes, holding the raw
// remainder between calls rather than refinalizing. It satisfies hash.Hash
// and hash.Hash64.
type Digest[T Word] struct {
	rem T
	tbl *Table[T]
}

// Digest returns a new streaming digest over the table's algorithm.
func (t *Table[T]) Digest() *Digest[T] {
	return &Digest[T]{rem: t.params.Init, tbl: t}
}

func (d *Digest[T]) Write(p []byte) (n int, err error) {
	d.rem = d.tbl.update(d.rem, p)
	return len(p), nil
}

// Value returns the checksum of the bytes written so far. It does not
// disturb the running state; writes may continue afterward.
func (d *Digest[T]) Value() T {
	p := d.tbl.params
	return finalize(d.rem, p.FinalXOR, p.ReflectIn != p.ReflectOut, p.Width)
}

func (d *Digest[T]) Sum64() uint64 {
	return uint64(d.Value())
}

// Sum appends the big-endian checksum to in and returns the result.
func (d *Digest[T]) Sum(in []byte) []byte {
	v := uint64(d.Value())
	for shift := (d.Size() - 1) * 8; shift >= 0; shift -= 8 {
		in = append(in, byte(v>>uint(shift)))
	}
	return in
}

func (d *Digest[T]) Reset() {
	d.rem = d.tbl.params.Init
}

// Size returns the number of bytes Sum appends.
func (d *Digest[T]) Size() int {
	return int(d.tbl.params.Width+7) >> 3
}

func (d *Digest[T]) BlockSize() int {
	return 1
}
