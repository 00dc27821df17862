package sentinel

import (
	"sort"

	"hdrguard/internal/guard"
)

// Set is the collection of macro names defined at the observation point.
// Values are irrelevant for sentinel purposes; presence is the signal.
type Set struct {
	macros map[string]struct{}
}

func NewSet(macros ...string) *Set {
	s := &Set{macros: make(map[string]struct{}, len(macros))}
	for _, m := range macros {
		s.Add(m)
	}
	return s
}

func (s *Set) Add(macro string) {
	if s == nil || macro == "" {
		return
	}
	s.macros[macro] = struct{}{}
}

func (s *Set) Has(macro string) bool {
	if s == nil {
		return false
	}
	_, ok := s.macros[macro]
	return ok
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.macros)
}

// Names returns the macro names in sorted order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.macros))
	for m := range s.macros {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Detect maps the set to the probes whose sentinel macros it contains.
func Detect(s *Set) guard.ProbeSet {
	var probes guard.ProbeSet
	for _, p := range guard.Probes() {
		if s.Has(p.Sentinel()) {
			probes = probes.With(p)
		}
	}
	return probes
}
