package dolphin

import (
	"fmt"
	"strings"

	"bfbb/gameinterface"
	"bfbb/gamevar"
	"bfbb/hexdump"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	gopsproc "github.com/shirou/gopsutil/process"
)

// Provider locates a running Dolphin emulator and attaches to its emulated
// memory. It owns the discovery policy only; every successful Hook yields
// a fresh Backend bound into a new Interface.
type Provider struct {
	processName string
	table       gameinterface.AddressTable
	log         *logger.Logger
}

// NewProvider returns a provider looking for the platform's default
// Dolphin process name and using the Gamecube address table.
func NewProvider() *Provider {
	return &Provider{
		processName: defaultProcessName,
		table:       gameinterface.GCN,
		log:         logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "dolphin-unhooked")),
	}
}

// SetProcessName overrides the emulator process name matched during
// discovery.
func (p *Provider) SetProcessName(name string) {
	p.processName = name
}

// SetAddressTable overrides the address table bound into hooked
// interfaces.
func (p *Provider) SetAddressTable(table gameinterface.AddressTable) {
	p.table = table
}

// Hook finds the emulator process, locates its emulated-RAM region and
// returns an Interface over it. Dolphin is hookable only while a game is
// open, since the region exists only then. Hook never reuses a previous
// backend: each call attaches from scratch.
func (p *Provider) Hook() (*gameinterface.Interface, error) {
	backend, err := p.HookBackend()
	if err != nil {
		return nil, err
	}
	return gameinterface.New(backend, p.table), nil
}

// HookBackend performs the same discovery as Hook but returns the raw
// backend, for tools that want untyped memory access instead of the game
// interface. The caller owns the backend and should Close it.
func (p *Provider) HookBackend() (*Backend, error) {
	procs, err := gopsproc.Processes()
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %v: %w", err, gamevar.ErrHookingFailed)
	}

	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil || !strings.Contains(name, p.processName) {
			continue
		}
		p.log.Debugln(fmt.Sprintf("%s found with pid %d", name, proc.Pid))

		base, osHandle, err := attachEmulated(proc.Pid)
		if err != nil {
			p.log.Debugln(fmt.Sprintf("pid %d: %v", proc.Pid, err))
			continue
		}

		backend := newBackend(proc.Pid, base, osHandle)

		// The first bytes of emulated RAM hold the disc's game id; an
		// unreadable region means this candidate is no good. Several
		// same-size mappings can exist in one Dolphin process, so a
		// readable region whose header does not look like a game id is
		// rejected too.
		header, err := backend.ReadBytes(GCNBaseAddress, 8)
		if err != nil {
			p.log.Debugln(fmt.Sprintf("pid %d: emulated region unreadable: %v", proc.Pid, err))
			_ = backend.Close()
			continue
		}
		if !plausibleGameID(header[:6]) {
			p.log.Debugln(fmt.Sprintf("pid %d: region at %#x holds no game id (%q), skipping", proc.Pid, base, string(header[:6])))
			_ = backend.Close()
			continue
		}

		backend.log.Infoln(fmt.Sprintf("Hooked emulated memory region at %#x (game id %q)", base, string(header[:6])))
		backend.log.Debugln("\n" + hexdump.Dump(header, hexdump.Options{StartOffset: uint64(GCNBaseAddress), Color: true}))

		return backend, nil
	}

	return nil, fmt.Errorf("no %s process with an emulated memory region found: %w", p.processName, gamevar.ErrHookingFailed)
}

// plausibleGameID reports whether id looks like a GameCube disc id: six
// uppercase-alphanumeric ASCII bytes (e.g. "GQPE78").
func plausibleGameID(id []byte) bool {
	if len(id) != 6 {
		return false
	}
	for _, c := range id {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
