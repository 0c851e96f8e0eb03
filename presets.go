package crc

import (
	"fmt"
	"hash"
	"strings"
)

// Common CRC algorithms up to 64 bits. The check value noted for each is
// the checksum of the ASCII string "123456789".
var (
	CRC4ITU       = Params[uint8]{Poly: 0x3, Init: 0x0, FinalXOR: 0x0, ReflectIn: true, ReflectOut: true, Width: 4}    // check 0x7
	CRC5EPC       = Params[uint8]{Poly: 0x09, Init: 0x09, FinalXOR: 0x00, ReflectIn: false, ReflectOut: false, Width: 5} // check 0x00
	CRC5ITU       = Params[uint8]{Poly: 0x15, Init: 0x00, FinalXOR: 0x00, ReflectIn: true, ReflectOut: true, Width: 5}   // check 0x07
	CRC5USB       = Params[uint8]{Poly: 0x05, Init: 0x1F, FinalXOR: 0x1F, ReflectIn: true, ReflectOut: true, Width: 5}   // check 0x19
	CRC6CDMA2000A = Params[uint8]{Poly: 0x27, Init: 0x3F, FinalXOR: 0x00, ReflectIn: false, ReflectOut: false, Width: 6} // check 0x0D
	CRC6CDMA2000B = Params[uint8]{Poly: 0x07, Init: 0x3F, FinalXOR: 0x00, ReflectIn: false, ReflectOut: false, Width: 6} // check 0x3B
	CRC6ITU       = Params[uint8]{Poly: 0x03, Init: 0x00, FinalXOR: 0x00, ReflectIn: true, ReflectOut: true, Width: 6}   // check 0x06
	CRC7          = Params[uint8]{Poly: 0x09, Init: 0x00, FinalXOR: 0x00, ReflectIn: false, ReflectOut: false, Width: 7} // check 0x75
	CRC8          = Params[uint8]{Poly: 0x07, Init: 0x00, FinalXOR: 0x00, ReflectIn: false, ReflectOut: false, Width: 8} // check 0xF4
	CRC8EBU       = Params[uint8]{Poly: 0x1D, Init: 0xFF, FinalXOR: 0x00, ReflectIn: true, ReflectOut: true, Width: 8}   // check 0x97
	CRC8Maxim     = Params[uint8]{Poly: 0x31, Init: 0x00, FinalXOR: 0x00, ReflectIn: true, ReflectOut: true, Width: 8}   // check 0xA1
	CRC8WCDMA     = Params[uint8]{Poly: 0x9B, Init: 0x00, FinalXOR: 0x00, ReflectIn: true, ReflectOut: true, Width: 8}   // check 0x25

	CRC10         = Params[uint16]{Poly: 0x233, Init: 0x000, FinalXOR: 0x000, ReflectIn: false, ReflectOut: false, Width: 10}    // check 0x199
	CRC10CDMA2000 = Params[uint16]{Poly: 0x3D9, Init: 0x3FF, FinalXOR: 0x000, ReflectIn: false, ReflectOut: false, Width: 10}    // check 0x233
	CRC11         = Params[uint16]{Poly: 0x385, Init: 0x01A, FinalXOR: 0x000, ReflectIn: false, ReflectOut: false, Width: 11}    // check 0x5A3
	CRC12UMTS     = Params[uint16]{Poly: 0x80F, Init: 0x000, FinalXOR: 0x000, ReflectIn: false, ReflectOut: true, Width: 12}     // aka CRC-12/3GPP, check 0xDAF
	CRC12CDMA2000 = Params[uint16]{Poly: 0xF13, Init: 0xFFF, FinalXOR: 0x000, ReflectIn: false, ReflectOut: false, Width: 12}    // check 0xD4D
	CRC12DECT     = Params[uint16]{Poly: 0x80F, Init: 0x000, FinalXOR: 0x000, ReflectIn: false, ReflectOut: false, Width: 12}    // check 0xF5B
	CRC13BBC      = Params[uint16]{Poly: 0x1CF5, Init: 0x0000, FinalXOR: 0x0000, ReflectIn: false, ReflectOut: false, Width: 13} // check 0x04FA
	CRC15         = Params[uint16]{Poly: 0x4599, Init: 0x0000, FinalXOR: 0x0000, ReflectIn: false, ReflectOut: false, Width: 15} // check 0x059E
	CRC15MPT1327  = Params[uint16]{Poly: 0x6815, Init: 0x0000, FinalXOR: 0x0001, ReflectIn: false, ReflectOut: false, Width: 15} // check 0x2566

	CRC16Buypass    = Params[uint16]{Poly: 0x8005, Init: 0x0000, FinalXOR: 0x0000, ReflectIn: false, ReflectOut: false, Width: 16} // check 0xFEE8
	CRC16CCITTFalse = Params[uint16]{Poly: 0x1021, Init: 0xFFFF, FinalXOR: 0x0000, ReflectIn: false, ReflectOut: false, Width: 16} // check 0x29B1
	CRC16CDMA2000   = Params[uint16]{Poly: 0xC867, Init: 0xFFFF, FinalXOR: 0x0000, ReflectIn: false, ReflectOut: false, Width: 16} // check 0x4C06
	CRC16DECTR      = Params[uint16]{Poly: 0x0589, Init: 0x0000, FinalXOR: 0x0001, ReflectIn: false, ReflectOut: false, Width: 16} // check 0x007E
	CRC16DECTX      = Params[uint16]{Poly: 0x0589, Init: 0x0000, FinalXOR: 0x0000, ReflectIn: false, ReflectOut: false, Width: 16} // check 0x007F
	CRC16DNP        = Params[uint16]{Poly: 0x3D65, Init: 0x0000, FinalXOR: 0xFFFF, ReflectIn: true, ReflectOut: true, Width: 16}   // check 0xEA82
	CRC16Genibus    = Params[uint16]{Poly: 0x1021, Init: 0xFFFF, FinalXOR: 0xFFFF, ReflectIn: false, ReflectOut: false, Width: 16} // check 0xD64E
	CRC16Kermit     = Params[uint16]{Poly: 0x1021, Init: 0x0000, FinalXOR: 0x0000, ReflectIn: true, ReflectOut: true, Width: 16}   // check 0x2189
	CRC16Maxim      = Params[uint16]{Poly: 0x8005, Init: 0x0000, FinalXOR: 0xFFFF, ReflectIn: true, ReflectOut: true, Width: 16}   // check 0x44C2
	CRC16Modbus     = Params[uint16]{Poly: 0x8005, Init: 0xFFFF, FinalXOR: 0x0000, ReflectIn: true, ReflectOut: true, Width: 16}   // check 0x4B37
	CRC16T10DIF     = Params[uint16]{Poly: 0x8BB7, Init: 0x0000, FinalXOR: 0x0000, ReflectIn: false, ReflectOut: false, Width: 16} // check 0xD0DB
	CRC16USB        = Params[uint16]{Poly: 0x8005, Init: 0xFFFF, FinalXOR: 0xFFFF, ReflectIn: true, ReflectOut: true, Width: 16}   // check 0xB4C8
	CRC16X25        = Params[uint16]{Poly: 0x1021, Init: 0xFFFF, FinalXOR: 0xFFFF, ReflectIn: true, ReflectOut: true, Width: 16}   // check 0x906E
	CRC16XModem     = Params[uint16]{Poly: 0x1021, Init: 0x0000, FinalXOR: 0x0000, ReflectIn: false, ReflectOut: false, Width: 16} // check 0x31C3

	CRC17CAN      = Params[uint32]{Poly: 0x1685B, Init: 0x00000, FinalXOR: 0x00000, ReflectIn: false, ReflectOut: false, Width: 17}                // check 0x04F03
	CRC21CAN      = Params[uint32]{Poly: 0x102899, Init: 0x000000, FinalXOR: 0x000000, ReflectIn: false, ReflectOut: false, Width: 21}             // check 0x0ED841
	CRC24         = Params[uint32]{Poly: 0x864CFB, Init: 0xB704CE, FinalXOR: 0x000000, ReflectIn: false, ReflectOut: false, Width: 24}             // check 0x21CF02
	CRC24FlexrayA = Params[uint32]{Poly: 0x5D6DCB, Init: 0xFEDCBA, FinalXOR: 0x000000, ReflectIn: false, ReflectOut: false, Width: 24}             // check 0x7979BD
	CRC24FlexrayB = Params[uint32]{Poly: 0x5D6DCB, Init: 0xABCDEF, FinalXOR: 0x000000, ReflectIn: false, ReflectOut: false, Width: 24}             // check 0x1F23B8
	CRC30         = Params[uint32]{Poly: 0x2030B9C7, Init: 0x3FFFFFFF, FinalXOR: 0x00000000, ReflectIn: false, ReflectOut: false, Width: 30}       // check 0x3B3CB540
	CRC32         = Params[uint32]{Poly: 0x04C11DB7, Init: 0xFFFFFFFF, FinalXOR: 0xFFFFFFFF, ReflectIn: true, ReflectOut: true, Width: 32}         // check 0xCBF43926
	CRC32BZip2    = Params[uint32]{Poly: 0x04C11DB7, Init: 0xFFFFFFFF, FinalXOR: 0xFFFFFFFF, ReflectIn: false, ReflectOut: false, Width: 32}       // check 0xFC891918
	CRC32C        = Params[uint32]{Poly: 0x1EDC6F41, Init: 0xFFFFFFFF, FinalXOR: 0xFFFFFFFF, ReflectIn: true, ReflectOut: true, Width: 32}         // check 0xE3069283
	CRC32MPEG2    = Params[uint32]{Poly: 0x04C11DB7, Init: 0xFFFFFFFF, FinalXOR: 0x00000000, ReflectIn: false, ReflectOut: false, Width: 32}       // check 0x0376E6E7
	CRC32POSIX    = Params[uint32]{Poly: 0x04C11DB7, Init: 0x00000000, FinalXOR: 0xFFFFFFFF, ReflectIn: false, ReflectOut: false, Width: 32}       // check 0x765E7680
	CRC32Q        = Params[uint32]{Poly: 0x814141AB, Init: 0x00000000, FinalXOR: 0x00000000, ReflectIn: false, ReflectOut: false, Width: 32}       // check 0x3010BF7F

	CRC40GSM = Params[uint64]{Poly: 0x0004820009, Init: 0x0000000000, FinalXOR: 0xFFFFFFFFFF, ReflectIn: false, ReflectOut: false, Width: 40}                       // check 0xD4164FC646
	CRC64    = Params[uint64]{Poly: 0x42F0E1EBA9EA3693, Init: 0x0000000000000000, FinalXOR: 0x0000000000000000, ReflectIn: false, ReflectOut: false, Width: 64}     // check 0x6C40DF5F0B497347
)

// A Preset is a catalogue row for one named algorithm, wide enough to carry
// any width up to 64 bits.
type Preset struct {
	Name   string
	Width  uint
	Check  uint64 // checksum of the ASCII string "123456789"
	Params fmt.Stringer
	New    func() hash.Hash64
}

func preset[T Word](name string, p Params[T], check T) Preset {
	return Preset{
		Name:   name,
		Width:  p.Width,
		Check:  uint64(check),
		Params: p,
		New:    func() hash.Hash64 { return MustTable(p).Digest() },
	}
}

var presets = []Preset{
	preset("CRC-4/ITU", CRC4ITU, 0x7),
	preset("CRC-5/EPC", CRC5EPC, 0x00),
	preset("CRC-5/ITU", CRC5ITU, 0x07),
	preset("CRC-5/USB", CRC5USB, 0x19),
	preset("CRC-6/CDMA2000-A", CRC6CDMA2000A, 0x0D),
	preset("CRC-6/CDMA2000-B", CRC6CDMA2000B, 0x3B),
	preset("CRC-6/ITU", CRC6ITU, 0x06),
	preset("CRC-7", CRC7, 0x75),
	preset("CRC-8", CRC8, 0xF4),
	preset("CRC-8/EBU", CRC8EBU, 0x97),
	preset("CRC-8/MAXIM", CRC8Maxim, 0xA1),
	preset("CRC-8/WCDMA", CRC8WCDMA, 0x25),
	preset("CRC-10", CRC10, 0x199),
	preset("CRC-10/CDMA2000", CRC10CDMA2000, 0x233),
	preset("CRC-11", CRC11, 0x5A3),
	preset("CRC-12/3GPP", CRC12UMTS, 0xDAF),
	preset("CRC-12/CDMA2000", CRC12CDMA2000, 0xD4D),
	preset("CRC-12/DECT", CRC12DECT, 0xF5B),
	preset("CRC-13/BBC", CRC13BBC, 0x04FA),
	preset("CRC-15", CRC15, 0x059E),
	preset("CRC-15/MPT1327", CRC15MPT1327, 0x2566),
	preset("CRC-16/BUYPASS", CRC16Buypass, 0xFEE8),
	preset("CRC-16/CCITT-FALSE", CRC16CCITTFalse, 0x29B1),
	preset("CRC-16/CDMA2000", CRC16CDMA2000, 0x4C06),
	preset("CRC-16/DECT-R", CRC16DECTR, 0x007E),
	preset("CRC-16/DECT-X", CRC16DECTX, 0x007F),
	preset("CRC-16/DNP", CRC16DNP, 0xEA82),
	preset("CRC-16/GENIBUS", CRC16Genibus, 0xD64E),
	preset("CRC-16/KERMIT", CRC16Kermit, 0x2189),
	preset("CRC-16/MAXIM", CRC16Maxim, 0x44C2),
	preset("CRC-16/MODBUS", CRC16Modbus, 0x4B37),
	preset("CRC-16/T10-DIF", CRC16T10DIF, 0xD0DB),
	preset("CRC-16/USB", CRC16USB, 0xB4C8),
	preset("CRC-16/X-25", CRC16X25, 0x906E),
	preset("CRC-16/XMODEM", CRC16XModem, 0x31C3),
	preset("CRC-17/CAN", CRC17CAN, 0x04F03),
	preset("CRC-21/CAN", CRC21CAN, 0x0ED841),
	preset("CRC-24", CRC24, 0x21CF02),
	preset("CRC-24/FLEXRAY-A", CRC24FlexrayA, 0x7979BD),
	preset("CRC-24/FLEXRAY-B", CRC24FlexrayB, 0x1F23B8),
	preset("CRC-30", CRC30, 0x3B3CB540),
	preset("CRC-32", CRC32, 0xCBF43926),
	preset("CRC-32/BZIP2", CRC32BZip2, 0xFC891918),
	preset("CRC-32/C", CRC32C, 0xE3069283),
	preset("CRC-32/MPEG-2", CRC32MPEG2, 0x0376E6E7),
	preset("CRC-32/POSIX", CRC32POSIX, 0x765E7680),
	preset("CRC-32/Q", CRC32Q, 0x3010BF7F),
	preset("CRC-40/GSM", CRC40GSM, 0xD4164FC646),
	preset("CRC-64", CRC64, 0x6C40DF5F0B497347),
}

// Presets returns the catalogue of named algorithms.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a catalogue entry by name, case-insensitively.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}
