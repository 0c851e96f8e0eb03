// Package crc computes cyclic redundancy checks for any algorithm described
// by the usual five-parameter model: generator polynomial, initial value,
// final XOR, input reflection and output reflection, at any width up to 64
// bits.
//
// A Params value fully describes an algorithm. Checksum and Update compute
// directly from Params one bit at a time; deriving a Table first replaces
// the per-bit inner loop with a single 256-entry lookup per byte:
//
//	tbl := crc.MustTable(crc.CRC32)
//	sum := tbl.Checksum([]byte("123456789")) // 0xCBF43926
//
// Checksums may be computed incrementally. Update accepts the checksum
// returned by a previous call and yields the same result as a single
// computation over the concatenated input:
//
//	sum := tbl.Checksum(head)
//	sum = tbl.Update(sum, tail)
//
// The ChecksumBits and UpdateBits variants consume inputs whose length is
// not a whole number of bytes. Trailing bits occupy the high-order bits of
// the final byte for MSB-first (non-reflected) algorithms and the low-order
// bits for reflected ones, matching the order in which each mode consumes
// input.
//
// The package also carries a catalogue of common named algorithms, from
// CRC-4/ITU through CRC-64, each recorded with its published check value:
// the checksum of the ASCII string "123456789".
//
// A Table is immutable once built and safe for concurrent use. Params and
// Table values are plain data; the package holds no global state.
package crc
