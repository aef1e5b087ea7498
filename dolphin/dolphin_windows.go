//go:build windows

package dolphin

import (
	"fmt"
	"syscall"
	"unsafe"
)

const defaultProcessName = "Dolphin"

var (
	modkernel32            = syscall.NewLazyDLL("kernel32.dll")
	procOpenProcess        = modkernel32.NewProc("OpenProcess")
	procCloseHandle        = modkernel32.NewProc("CloseHandle")
	procReadProcessMemory  = modkernel32.NewProc("ReadProcessMemory")
	procWriteProcessMemory = modkernel32.NewProc("WriteProcessMemory")
	procVirtualQueryEx     = modkernel32.NewProc("VirtualQueryEx")
	procGetExitCodeProcess = modkernel32.NewProc("GetExitCodeProcess")
)

const (
	processQueryInformation = 0x0400
	processVMOperation      = 0x0008
	processVMRead           = 0x0010
	processVMWrite          = 0x0020

	memCommit = 0x1000
	memMapped = 0x40000

	stillActive = 259
)

type memoryBasicInformation struct {
	BaseAddress       uintptr
	AllocationBase    uintptr
	AllocationProtect uint32
	_                 uint32
	RegionSize        uintptr
	State             uint32
	Protect           uint32
	Type              uint32
	_                 uint32
}

// attachEmulated opens the Dolphin process and scans its address space for
// the committed MEM_MAPPED region backing emulated RAM.
func attachEmulated(pid int32) (base uintptr, osHandle uintptr, err error) {
	handle, _, callErr := procOpenProcess.Call(
		uintptr(processQueryInformation|processVMOperation|processVMRead|processVMWrite),
		0,
		uintptr(pid),
	)
	if handle == 0 {
		return 0, 0, fmt.Errorf("OpenProcess failed: %v", callErr)
	}

	var info memoryBasicInformation
	var addr uintptr
	for {
		ret, _, _ := procVirtualQueryEx.Call(
			handle,
			addr,
			uintptr(unsafe.Pointer(&info)),
			unsafe.Sizeof(info),
		)
		if ret != unsafe.Sizeof(info) {
			break
		}
		if info.RegionSize == RegionSize && info.Type == memMapped && info.State == memCommit {
			return info.BaseAddress, handle, nil
		}
		addr = info.BaseAddress + info.RegionSize
	}

	procCloseHandle.Call(handle)
	return 0, 0, fmt.Errorf("no emulated memory region found")
}

func (d *Backend) readRaw(host uintptr, buf []byte) error {
	var bytesRead uintptr
	ret, _, callErr := procReadProcessMemory.Call(
		d.osHandle,
		host,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&bytesRead)),
	)
	if ret == 0 {
		return fmt.Errorf("ReadProcessMemory failed: %v", callErr)
	}
	if bytesRead != uintptr(len(buf)) {
		return fmt.Errorf("partial read: %d of %d bytes", bytesRead, len(buf))
	}
	return nil
}

func (d *Backend) writeRaw(host uintptr, data []byte) error {
	var bytesWritten uintptr
	ret, _, callErr := procWriteProcessMemory.Call(
		d.osHandle,
		host,
		uintptr(unsafe.Pointer(&data[0])),
		uintptr(len(data)),
		uintptr(unsafe.Pointer(&bytesWritten)),
	)
	if ret == 0 {
		return fmt.Errorf("WriteProcessMemory failed: %v", callErr)
	}
	if bytesWritten != uintptr(len(data)) {
		return fmt.Errorf("partial write: %d of %d bytes", bytesWritten, len(data))
	}
	return nil
}

// processAlive asks the process handle for an exit code. Called with d.mu
// held.
func (d *Backend) processAlive() bool {
	if d.osHandle == 0 {
		return false
	}
	var code uint32
	ret, _, _ := procGetExitCodeProcess.Call(d.osHandle, uintptr(unsafe.Pointer(&code)))
	return ret != 0 && code == stillActive
}

func (d *Backend) closeHandle() error {
	if d.osHandle == 0 {
		return nil
	}
	ret, _, callErr := procCloseHandle.Call(d.osHandle)
	d.osHandle = 0
	if ret == 0 {
		return fmt.Errorf("CloseHandle failed: %v", callErr)
	}
	return nil
}
