package guard

// Decision records why a single flag resolved the way it did. It is derived
// data for reporting; Resolve stays the source of truth for values.
type Decision struct {
	Flag   FlagID
	Value  Value
	Family Family
	Probe  ProbeID
	// Probed reports whether the owning probe's sentinel was present.
	Probed bool
	// Forced marks the in6_addr alternate-accessor exception: the probe
	// suppressed the family but this flag is emitted anyway.
	Forced bool
}

// Reason returns a one-line human explanation of the decision.
func (d Decision) Reason() string {
	switch {
	case d.Forced:
		return "libc owns in6_addr but may lack the extended accessor macros; kernel side emits them regardless"
	case d.Value == Suppress:
		return "sentinel " + d.Probe.Sentinel() + " present; " + d.Probe.Header() + " already provided this group"
	case d.Probed:
		// Probe present but flag still emit: only reachable for flags the
		// probe does not own, which Explain never produces. Kept for
		// completeness of the switch.
		return "emitted"
	default:
		return "sentinel " + d.Probe.Sentinel() + " absent; kernel side provides this group"
	}
}

// Explain resolves env and reports per-flag provenance in flag order.
func Explain(env Env) []Decision {
	flags := Resolve(env)
	out := make([]Decision, 0, flagCount)
	for f := FlagID(0); f < flagCount; f++ {
		probe := ProbeOf(f)
		probed := env.Mode == ModeUserspace && env.Probes.Has(probe)
		out = append(out, Decision{
			Flag:   f,
			Value:  flags.Get(f),
			Family: FamilyOf(f),
			Probe:  probe,
			Probed: probed,
			Forced: f == FlagIn6AddrAlt && probed && flags.Get(f) == Emit,
		})
	}
	return out
}
