package crc

import (
	"fmt"
	"math/bits"

	"github.com/pkg/errors"
)

// Word is the set of unsigned integer types a checksum may be stored in.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Params describes a CRC algorithm. Poly is the generator polynomial
// without its implicit leading bit. ReflectIn selects LSB-first consumption
// of each input byte; ReflectOut bit-reverses the remainder over Width bits
// before the final XOR. Width is the number of bits in the checksum and
// must not exceed the bits of T.
type Params[T Word] struct {
	Poly       T
	Init       T
	FinalXOR   T
	ReflectIn  bool
	ReflectOut bool
	Width      uint
}

// NewParams returns a validated parameter set.
func NewParams[T Word](poly, init, finalXOR T, reflectIn, reflectOut bool, width uint) (Params[T], error) {
	p := Params[T]{
		Poly:       poly,
		Init:       init,
		FinalXOR:   finalXOR,
		ReflectIn:  reflectIn,
		ReflectOut: reflectOut,
		Width:      width,
	}

	if err := p.Validate(); err != nil {
		return Params[T]{}, err
	}

	return p, nil
}

// Validate reports whether the width fits the storage type. A Params value
// that fails validation is a programming error; the computation functions
// assume a valid width.
func (p Params[T]) Validate() error {
	if p.Width < 1 {
		return errors.Errorf("width must be at least 1 bit, got %d", p.Width)
	}
	if storage := wordBits[T](); p.Width > storage {
		return errors.Errorf("width %d exceeds %d-bit storage type", p.Width, storage)
	}
	return nil
}

func (p Params[T]) String() string {
	digits := int(p.Width+3) >> 2
	return fmt.Sprintf("{Poly:0x%0*X Init:0x%0*X XOR:0x%0*X RefIn:%t RefOut:%t Width:%d}",
		digits, uint64(p.Poly), digits, uint64(p.Init), digits, uint64(p.FinalXOR),
		p.ReflectIn, p.ReflectOut, p.Width)
}

// wordBits returns the number of bits in the storage type T.
func wordBits[T Word]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// mask returns a value with the low width bits set.
func mask[T Word](width uint) T {
	// A shift by the full storage width yields zero, so this also covers
	// width == wordBits[T]().
	return (T(1) << width) - 1
}

// Reflect reverses the order of the low n bits of v. Bit 0 becomes bit n-1
// and so on; all higher bits are cleared.
func Reflect[T Word](v T, n uint) T {
	var reversed T
	for i := uint(0); i < n; i++ {
		reversed = reversed<<1 | v&1
		v >>= 1
	}
	return reversed
}
