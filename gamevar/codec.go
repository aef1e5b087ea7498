package gamevar

import (
	"encoding/binary"
	"fmt"
)

// Codec converts between a fixed-width byte representation and a typed
// value. The GameCube is big-endian, so all multi-byte codecs encode
// big-endian.
type Codec[T any] interface {
	// Width is the exact serialized byte width of T.
	Width() MemorySize

	// Decode converts exactly Width bytes into a value. Decoding a bit
	// pattern outside T's valid domain fails with ErrInvalidValue.
	Decode(data []byte) (T, error)

	// Encode converts a value into exactly Width bytes.
	Encode(value T) []byte
}

func checkWidth(got int, want MemorySize) error {
	if got != int(want) {
		return fmt.Errorf("decode: got %d bytes, want %s: %w", got, want, ErrBackendIO)
	}
	return nil
}

type u8Codec struct{}

func (u8Codec) Width() MemorySize { return 1 }

func (u8Codec) Decode(data []byte) (uint8, error) {
	if err := checkWidth(len(data), 1); err != nil {
		return 0, err
	}
	return data[0], nil
}

func (u8Codec) Encode(value uint8) []byte {
	return []byte{value}
}

// U8 returns a codec for an unsigned 8-bit integer.
func U8() Codec[uint8] { return u8Codec{} }

type i16Codec struct{}

func (i16Codec) Width() MemorySize { return 2 }

func (i16Codec) Decode(data []byte) (int16, error) {
	if err := checkWidth(len(data), 2); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(data)), nil
}

func (i16Codec) Encode(value int16) []byte {
	data := make([]byte, 2)
	binary.BigEndian.PutUint16(data, uint16(value))
	return data
}

// I16 returns a codec for a signed big-endian 16-bit integer.
func I16() Codec[int16] { return i16Codec{} }

type u32Codec struct{}

func (u32Codec) Width() MemorySize { return 4 }

func (u32Codec) Decode(data []byte) (uint32, error) {
	if err := checkWidth(len(data), 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(data), nil
}

func (u32Codec) Encode(value uint32) []byte {
	data := make([]byte, 4)
	binary.BigEndian.PutUint32(data, value)
	return data
}

// U32 returns a codec for an unsigned big-endian 32-bit integer.
func U32() Codec[uint32] { return u32Codec{} }

type bytes4Codec struct{}

func (bytes4Codec) Width() MemorySize { return 4 }

func (bytes4Codec) Decode(data []byte) ([4]byte, error) {
	var out [4]byte
	if err := checkWidth(len(data), 4); err != nil {
		return out, err
	}
	copy(out[:], data)
	return out, nil
}

func (bytes4Codec) Encode(value [4]byte) []byte {
	data := make([]byte, 4)
	copy(data, value[:])
	return data
}

// Bytes4 returns a codec for a raw 4-byte array. The game stores scene ids
// as multi-character literals, so no byte swapping is applied.
func Bytes4() Codec[[4]byte] { return bytes4Codec{} }

type enumCodec[T ~uint8] struct {
	max uint8
}

func (enumCodec[T]) Width() MemorySize { return 1 }

func (c enumCodec[T]) Decode(data []byte) (T, error) {
	if err := checkWidth(len(data), 1); err != nil {
		return 0, err
	}
	if data[0] > c.max {
		return 0, fmt.Errorf("byte 0x%02X is outside enum domain [0, %d]: %w", data[0], c.max, ErrInvalidValue)
	}
	return T(data[0]), nil
}

func (c enumCodec[T]) Encode(value T) []byte {
	return []byte{uint8(value)}
}

// Enum returns a codec for a single-byte enum whose valid values are the
// contiguous range [0, max]. Out-of-domain bit patterns decode to
// ErrInvalidValue rather than a default.
func Enum[T ~uint8](max T) Codec[T] {
	return enumCodec[T]{max: uint8(max)}
}
