// Package memorymap enumerates the mapped memory regions of another
// process. The dolphin provider uses it to locate the emulator's
// emulated-RAM region by size and backing file.
package memorymap

import (
	"fmt"
	"sort"
)

// Region represents one mapped region in a process's address space.
type Region struct {
	Start uint64 // starting address of the region
	Size  uint   // size of the region in bytes
	Perms string // permissions, e.g. "rw-s"
	Path  string // backing file path, empty for anonymous mappings
}

func (r Region) String() string {
	return fmt.Sprintf("Address: %x, Size: %d, Perms: %s, Path: %s", r.Start, r.Size, r.Perms, r.Path)
}

func (r Region) IsReadable() bool {
	return len(r.Perms) > 0 && r.Perms[0] == 'r'
}

func (r Region) IsWritable() bool {
	return len(r.Perms) > 1 && r.Perms[1] == 'w'
}

// Contains reports whether addr falls inside the region.
func (r Region) Contains(addr uint64) bool {
	return addr >= r.Start && addr < r.Start+uint64(r.Size)
}

// SortByStart orders regions by start address, the precondition for Find.
func SortByStart(regions []Region) {
	sort.Slice(regions, func(i, j int) bool {
		return regions[i].Start < regions[j].Start
	})
}

// Find returns the region containing addr, or nil. The slice must be
// sorted by start address.
func Find(addr uint64, regions []Region) *Region {
	i := sort.Search(len(regions), func(i int) bool {
		return regions[i].Start+uint64(regions[i].Size) > addr
	})
	if i < len(regions) && regions[i].Start <= addr {
		return &regions[i]
	}
	return nil
}
