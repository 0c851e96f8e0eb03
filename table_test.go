package crc

import (
	"math/rand"
	"testing"
)

const Trials = 256

// randParams draws a random parameter set of the given width, masked to fit.
func randParams[T Word](rng *rand.Rand, width uint) Params[T] {
	m := mask[T](width)
	return Params[T]{
		Poly:       T(rng.Uint64())&m | 1,
		Init:       T(rng.Uint64()) & m,
		FinalXOR:   T(rng.Uint64()) & m,
		ReflectIn:  rng.Intn(2) == 0,
		ReflectOut: rng.Intn(2) == 0,
		Width:      width,
	}
}

// equivalenceTrials checks that for arbitrary parameter sets the table-driven
// calculator, the incremental path and the bit-count path all agree with the
// bit-serial calculator.
func equivalenceTrials[T Word](t *testing.T, rng *rand.Rand) {
	t.Helper()

	storage := wordBits[T]()

	for trial := 0; trial < Trials; trial++ {
		width := 1 + uint(rng.Intn(int(storage)))
		p := randParams[T](rng, width)

		buf := make([]byte, rng.Intn(64))
		rng.Read(buf)

		expected := Checksum(buf, p)
		tbl := MustTable(p)

		if got := tbl.Checksum(buf); got != expected {
			t.Fatalf("%s: table mismatch on % 02X: expected 0x%X got 0x%X", p, buf, uint64(expected), uint64(got))
		}

		k := rng.Intn(len(buf) + 1)
		if got := Update(Checksum(buf[:k], p), buf[k:], p); got != expected {
			t.Fatalf("%s: bit-serial split at %d on % 02X: expected 0x%X got 0x%X", p, k, buf, uint64(expected), uint64(got))
		}
		if got := tbl.Update(tbl.Checksum(buf[:k]), buf[k:]); got != expected {
			t.Fatalf("%s: table split at %d on % 02X: expected 0x%X got 0x%X", p, k, buf, uint64(expected), uint64(got))
		}

		// Bit-count paths over a whole number of bytes match the byte paths,
		// and the two bit-count calculators match each other elsewhere.
		if got := ChecksumBits(buf, len(buf)*8, p); got != expected {
			t.Fatalf("%s: bit-count over %d bytes: expected 0x%X got 0x%X", p, len(buf), uint64(expected), uint64(got))
		}
		nbits := rng.Intn(len(buf)*8 + 1)
		serial := ChecksumBits(buf, nbits, p)
		if got := tbl.ChecksumBits(buf, nbits); got != serial {
			t.Fatalf("%s: bit-count mismatch at %d bits on % 02X: bit-serial 0x%X table 0x%X", p, nbits, buf, uint64(serial), uint64(got))
		}
	}
}

func TestTableEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(0x1BADB002))

	equivalenceTrials[uint8](t, rng)
	equivalenceTrials[uint16](t, rng)
	equivalenceTrials[uint32](t, rng)
	equivalenceTrials[uint64](t, rng)
}

func TestTableParams(t *testing.T) {
	tbl := MustTable(CRC16DNP)
	if got := tbl.Params(); got != CRC16DNP {
		t.Fatalf("expected %s got %s", CRC16DNP, got)
	}
}

func TestNewTableInvalid(t *testing.T) {
	if _, err := NewTable(Params[uint8]{Poly: 0x07, Width: 9}); err == nil {
		t.Fatal("expected error for width 9 on uint8 storage")
	}
	if _, err := NewTable(Params[uint32]{Poly: 0x04C11DB7}); err == nil {
		t.Fatal("expected error for zero width")
	}
}
