// Package gamevar provides typed, address-bound accessors over the memory of
// a running game process. A Backend performs the raw byte transfer; Var and
// MutVar layer fixed-width typed (de)serialization and per-access liveness
// checking on top of it.
package gamevar

// Backend is the capability contract for raw memory access against a target
// process. Every implementation, real or simulated, satisfies exactly these
// three operations.
type Backend interface {
	// ReadBytes reads exactly size bytes starting at addr. It must return
	// the full requested length or an error, never a truncated or padded
	// buffer.
	ReadBytes(addr Address, size MemorySize) ([]byte, error)

	// WriteBytes writes all of data starting at addr. From the caller's
	// perspective the write either fully happens or fails.
	WriteBytes(addr Address, data []byte) error

	// IsHooked is a cheap liveness probe. It reports false once the backend
	// can no longer reach the target process.
	IsHooked() bool
}
