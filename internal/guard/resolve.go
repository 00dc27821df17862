package guard

// Value is the decision for one flag: emit the kernel-side definition, or
// suppress it because the libc already provided one. The numeric values are
// exactly what the rendered guard macros expand to.
type Value uint8

const (
	Suppress Value = 0
	Emit     Value = 1
)

func (v Value) String() string {
	if v == Suppress {
		return "suppress"
	}
	return "emit"
}

// Mode selects the evaluation context.
type Mode uint8

const (
	// ModeUserspace coordinates with a libc: probes decide each family.
	ModeUserspace Mode = iota
	// ModeKernel is the in-tree context where no libc exists; every flag
	// is emit and probes are ignored.
	ModeKernel
)

func (m Mode) String() string {
	if m == ModeKernel {
		return "kernel"
	}
	return "userspace"
}

// Env is the complete input of a resolution.
type Env struct {
	Mode   Mode
	Probes ProbeSet
}

// FlagSet holds one Value per flag, indexed by FlagID.
type FlagSet [flagCount]Value

// Get returns the value for f. Out-of-range flags read as Emit, the safe
// default.
func (fs FlagSet) Get(f FlagID) Value {
	if f >= flagCount {
		return Emit
	}
	return fs[f]
}

// Resolve maps an environment to its flag set. Pure: no state, no failure
// path, identical inputs give identical outputs.
//
// Userspace rules: a family is suppressed iff its probe is present. The one
// exception is __UAPI_DEF_IN6_ADDR_ALT: even when the libc owns in6_addr,
// its definition is not guaranteed to carry the extended accessor macros
// (s6_addr16, s6_addr32), so the kernel side must emit them regardless.
// Suppressing the alternate flag alongside the primary one would lose the
// accessors entirely.
func Resolve(env Env) FlagSet {
	var out FlagSet
	for f := range out {
		out[f] = Emit
	}
	if env.Mode == ModeKernel {
		return out
	}
	for _, row := range table {
		if !env.Probes.Has(row.probe) {
			continue
		}
		for _, f := range row.flags {
			out[f] = Suppress
		}
	}
	// Forced one way only: primary suppressed does not drag the alternate
	// accessors down with it.
	out[FlagIn6AddrAlt] = Emit
	return out
}
