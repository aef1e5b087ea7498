// Package mock provides an in-memory backend implementing the same
// capability contract as the real emulator backend, for testing logic
// against known state without a running process.
package mock

import (
	"fmt"
	"sync"

	"bfbb/gamevar"
	"bfbb/hexdump"
)

// ErrUnseededAddress is returned when a read touches a byte that was never
// seeded or written. The sentinel wraps gamevar.ErrBackendIO, so callers
// classifying by taxonomy see a backend failure. Unseeded memory fails
// loudly rather than reading as zero, so tests cannot silently rely on
// uninitialized defaults.
var ErrUnseededAddress = fmt.Errorf("%w: unseeded address", gamevar.ErrBackendIO)

// Backend is a gamevar.Backend over a private, sparse address-to-byte map.
// The zero value is not usable; construct with New.
type Backend struct {
	mu     sync.Mutex
	mem    map[gamevar.Address]byte
	hooked bool
}

// New returns an empty, hooked mock backend.
func New() *Backend {
	return &Backend{
		mem:    make(map[gamevar.Address]byte),
		hooked: true,
	}
}

// ReadBytes returns exactly size bytes starting at addr, failing with
// ErrUnseededAddress if any byte in the range was never written.
func (b *Backend) ReadBytes(addr gamevar.Address, size gamevar.MemorySize) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.hooked {
		return nil, gamevar.ErrUnhooked
	}

	out := make([]byte, size)
	for i := range out {
		v, ok := b.mem[addr+gamevar.Address(i)]
		if !ok {
			return nil, fmt.Errorf("read %s at %s: %w", size, addr, ErrUnseededAddress)
		}
		out[i] = v
	}
	return out, nil
}

// WriteBytes stores data starting at addr. Writes may target unseeded
// memory; they seed it.
func (b *Backend) WriteBytes(addr gamevar.Address, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.hooked {
		return gamevar.ErrUnhooked
	}

	for i, v := range data {
		b.mem[addr+gamevar.Address(i)] = v
	}
	return nil
}

// IsHooked reports whether the mock still simulates an attached process.
func (b *Backend) IsHooked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hooked
}

// Detach simulates the target process going away. Subsequent accesses
// observe ErrUnhooked until Rehook (or a provider Hook) is called.
func (b *Backend) Detach() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hooked = false
}

// Rehook simulates a fresh attach to the simulated process. Seeded memory
// is preserved, mirroring an emulator that kept running while this library
// was detached from it.
func (b *Backend) Rehook() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hooked = true
}

// Seed stores bytes at addr directly, bypassing the backend contract. Only
// the mock offers this; tests use it to arrange preconditions.
func (b *Backend) Seed(addr gamevar.Address, data ...byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, v := range data {
		b.mem[addr+gamevar.Address(i)] = v
	}
}

// SeedU32 seeds a big-endian 32-bit value, convenient for planting game
// pointers.
func (b *Backend) SeedU32(addr gamevar.Address, value uint32) {
	b.Seed(addr, byte(value>>24), byte(value>>16), byte(value>>8), byte(value))
}

// Peek returns size bytes starting at addr without going through the
// backend contract and regardless of hook state. ok is false if any byte
// in the range is unseeded.
func (b *Backend) Peek(addr gamevar.Address, size gamevar.MemorySize) (data []byte, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]byte, size)
	for i := range out {
		v, present := b.mem[addr+gamevar.Address(i)]
		if !present {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// Dump renders a seeded window of memory as a hexdump for debugging test
// failures. Unseeded bytes render as "..".
func (b *Backend) Dump(addr gamevar.Address, size gamevar.MemorySize) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	data := make([]byte, size)
	present := make([]bool, size)
	for i := range data {
		data[i], present[i] = b.mem[addr+gamevar.Address(i)]
	}
	return hexdump.DumpSparse(data, present, hexdump.Options{StartOffset: uint64(addr)})
}
