// Package dolphin implements the real memory backend and provider against
// a Dolphin emulator process running on the local machine.
//
// Dolphin backs the emulated GameCube RAM with one 0x2000000-byte mapping
// in its own address space. Hooking locates that mapping; after that every
// game address translates to base + (addr - 0x80000000) and raw IO goes
// through the platform's cross-process read/write primitives.
package dolphin

import (
	"fmt"
	"sync"

	"bfbb/gamevar"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// GCNBaseAddress is where the GameCube maps the start of main RAM.
const GCNBaseAddress gamevar.Address = 0x80000000

// RegionSize is the size of Dolphin's emulated-RAM mapping.
const RegionSize = 0x2000000

// Backend is a gamevar.Backend over one hooked Dolphin process. It is
// created by a Provider and not reused across hooks; once the emulator
// goes away the backend stays unhooked forever and a fresh Hook builds a
// new one.
type Backend struct {
	pid  int32
	base uintptr // host address of the emulated region
	log  *logger.Logger

	mu       sync.Mutex
	hooked   bool
	osHandle uintptr // platform process handle, 0 where not needed
}

func newBackend(pid int32, base uintptr, osHandle uintptr) *Backend {
	return &Backend{
		pid:      pid,
		base:     base,
		osHandle: osHandle,
		hooked:   true,
		log:      logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("dolphin-%d", pid))),
	}
}

// regionOffset translates a GameCube address to an offset into the
// emulated region, rejecting anything that does not fit entirely inside
// it.
func regionOffset(addr gamevar.Address, size gamevar.MemorySize) (uintptr, error) {
	if addr < GCNBaseAddress {
		return 0, fmt.Errorf("address %s below emulated memory: %w", addr, gamevar.ErrBackendIO)
	}
	offset := uint64(addr - GCNBaseAddress)
	if offset+uint64(size) > RegionSize {
		return 0, fmt.Errorf("address %s + %s exceeds emulated memory: %w", addr, size, gamevar.ErrBackendIO)
	}
	return uintptr(offset), nil
}

// ReadBytes reads exactly size bytes at the emulated address addr.
func (d *Backend) ReadBytes(addr gamevar.Address, size gamevar.MemorySize) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	offset, err := regionOffset(addr, size)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, size)
	if err := d.readRaw(d.base+offset, buf); err != nil {
		d.markUnhookedIfGone()
		return nil, fmt.Errorf("read %s at %s: %v: %w", size, addr, err, gamevar.ErrBackendIO)
	}
	return buf, nil
}

// WriteBytes writes all of data at the emulated address addr.
func (d *Backend) WriteBytes(addr gamevar.Address, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	offset, err := regionOffset(addr, gamevar.MemorySize(len(data)))
	if err != nil {
		return err
	}

	if err := d.writeRaw(d.base+offset, data); err != nil {
		d.markUnhookedIfGone()
		return fmt.Errorf("write %d bytes at %s: %v: %w", len(data), addr, err, gamevar.ErrBackendIO)
	}
	return nil
}

// IsHooked probes whether the emulator process is still reachable.
func (d *Backend) IsHooked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.hooked {
		return false
	}
	if !d.processAlive() {
		d.hooked = false
		d.log.Infoln("Dolphin process gone, interface unhooked")
	}
	return d.hooked
}

func (d *Backend) markUnhookedIfGone() {
	d.IsHooked()
}

// Close releases any platform handle held for the emulator process. Reads
// and writes fail once closed. Closing is optional; an abandoned backend
// only holds a process handle, not the emulator itself.
func (d *Backend) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.hooked = false
	return d.closeHandle()
}

// PID returns the hooked emulator's process id.
func (d *Backend) PID() int32 {
	return d.pid
}
