package gamevar

import (
	"encoding/binary"
	"fmt"
)

// Path locates a value in the game's address space. The first element is a
// base address; every element except the last is dereferenced as a
// big-endian 32-bit game pointer, and the last element is a raw byte offset
// into the final structure. A single-element path is a plain fixed address.
type Path []Address

// Resolve walks path against the backend and returns the final address.
// Resolution happens afresh on every access because the target process
// relocates heap structures as it runs.
func Resolve(b Backend, path Path) (Address, error) {
	if len(path) == 0 {
		return 0, fmt.Errorf("resolve: empty path: %w", ErrInvalidPointer)
	}

	var current Address
	for i, offset := range path[:len(path)-1] {
		addr := current + offset
		raw, err := b.ReadBytes(addr, 4)
		if err != nil {
			return 0, fmt.Errorf("resolve: step %d at %s: %w", i, addr, err)
		}
		ptr := Address(binary.BigEndian.Uint32(raw))
		if ptr == 0 {
			return 0, fmt.Errorf("resolve: null pointer at step %d (addr=%s): %w", i, addr, ErrInvalidPointer)
		}
		current = ptr
	}

	return current + path[len(path)-1], nil
}

// Var is a typed, read-only view of one value in game memory. It borrows
// the backend it was built from and must not outlive it. Every Get performs
// a full round-trip; nothing is cached because the game mutates its memory
// concurrently with this library.
type Var[T any] struct {
	backend Backend
	codec   Codec[T]
	path    Path
}

// New creates a Var for the value of type T located by path.
func New[T any](b Backend, codec Codec[T], path ...Address) Var[T] {
	return Var[T]{backend: b, codec: codec, path: Path(path)}
}

// Get reads and decodes the current value. It fails with ErrUnhooked when
// the backend reports it is no longer attached, checked at call time rather
// than assumed from earlier state.
func (v Var[T]) Get() (T, error) {
	var zero T

	if !v.backend.IsHooked() {
		return zero, ErrUnhooked
	}

	addr, err := Resolve(v.backend, v.path)
	if err != nil {
		return zero, v.liveness(err)
	}

	raw, err := v.backend.ReadBytes(addr, v.codec.Width())
	if err != nil {
		return zero, v.liveness(err)
	}

	return v.codec.Decode(raw)
}

// liveness re-probes the backend after a failed access: a process that
// exited mid-operation surfaces as ErrUnhooked, anything else passes
// through unchanged.
func (v Var[T]) liveness(err error) error {
	if !v.backend.IsHooked() {
		return ErrUnhooked
	}
	return err
}

// MutVar extends Var with a write capability.
type MutVar[T any] struct {
	Var[T]
}

// NewMut creates a MutVar for the value of type T located by path.
func NewMut[T any](b Backend, codec Codec[T], path ...Address) MutVar[T] {
	return MutVar[T]{Var: New(b, codec, path...)}
}

// Set encodes value and writes exactly the codec's byte width at the
// resolved address. Failure taxonomy matches Get.
func (v MutVar[T]) Set(value T) error {
	if !v.backend.IsHooked() {
		return ErrUnhooked
	}

	addr, err := Resolve(v.backend, v.path)
	if err != nil {
		return v.liveness(err)
	}

	if err := v.backend.WriteBytes(addr, v.codec.Encode(value)); err != nil {
		return v.liveness(err)
	}
	return nil
}
