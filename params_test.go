package crc

import (
	"math/rand"
	"testing"
)

func TestReflect(t *testing.T) {
	if got := Reflect(uint8(0x01), 8); got != 0x80 {
		t.Fatalf("expected 0x80 got 0x%02X", got)
	}
	if got := Reflect(uint16(0x8000), 16); got != 0x0001 {
		t.Fatalf("expected 0x0001 got 0x%04X", got)
	}
	if got := Reflect(uint32(0x04C11DB7), 32); got != 0xEDB88320 {
		t.Fatalf("expected 0xEDB88320 got 0x%08X", got)
	}

	// Bits above n are cleared.
	if got := Reflect(uint8(0xF5), 4); got != 0x0A {
		t.Fatalf("expected 0x0A got 0x%02X", got)
	}
}

func TestReflectInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5EED))

	for trial := 0; trial < Trials; trial++ {
		n := 1 + uint(rng.Intn(64))
		v := uint64(rng.Uint64()) & mask[uint64](n)
		if got := Reflect(Reflect(v, n), n); got != v {
			t.Fatalf("reflect over %d bits not an involution: 0x%X became 0x%X", n, v, got)
		}
	}
}

func TestValidate(t *testing.T) {
	for _, width := range []uint{1, 4, 8} {
		p := Params[uint8]{Poly: 0x07, Width: width}
		if err := p.Validate(); err != nil {
			t.Fatalf("width %d on uint8: unexpected error: %v", width, err)
		}
	}

	if err := (Params[uint8]{Poly: 0x07, Width: 9}).Validate(); err == nil {
		t.Fatal("expected error for width 9 on uint8 storage")
	}
	if err := (Params[uint16]{Poly: 0x8005, Width: 0}).Validate(); err == nil {
		t.Fatal("expected error for zero width")
	}

	if _, err := NewParams[uint32](0x04C11DB7, 0xFFFFFFFF, 0xFFFFFFFF, true, true, 33); err == nil {
		t.Fatal("expected error for width 33 on uint32 storage")
	}
	if p, err := NewParams[uint32](0x04C11DB7, 0xFFFFFFFF, 0xFFFFFFFF, true, true, 32); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if p != CRC32 {
		t.Fatalf("expected %s got %s", CRC32, p)
	}
}

func TestParamsString(t *testing.T) {
	expected := "{Poly:0x04C11DB7 Init:0xFFFFFFFF XOR:0xFFFFFFFF RefIn:true RefOut:true Width:32}"
	if got := CRC32.String(); got != expected {
		t.Fatalf("expected %q got %q", expected, got)
	}

	expected = "{Poly:0x3 Init:0x0 XOR:0x0 RefIn:true RefOut:true Width:4}"
	if got := CRC4ITU.String(); got != expected {
		t.Fatalf("expected %q got %q", expected, got)
	}
}
