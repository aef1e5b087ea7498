package gamevar

import (
	"fmt"
)

// Address represents a location within the GameCube's 32-bit address space.
// Game pointers live at 0x80000000 and above; translation to a host-process
// address is the backend's concern.
type Address uint32

func (a Address) String() string {
	return fmt.Sprintf("0x%08X", uint32(a))
}

// MemorySize represents a size of memory region
type MemorySize uint

func (s MemorySize) String() string {
	return fmt.Sprintf("%d bytes", uint(s))
}
