package gameinterface

// Provider encapsulates how one backend variant is located and attached.
// It owns the discovery policy but not the live connection: each successful
// Hook produces a fresh backend bound into a new Interface.
type Provider interface {
	// Hook performs discovery and attach as one step from the caller's
	// point of view. It fails with gamevar.ErrHookingFailed when the
	// target cannot be found or attached, leaving nothing half
	// constructed. Calling Hook again after an earlier Interface became
	// unhooked is always legal and attempts a fresh attach.
	Hook() (*Interface, error)
}
