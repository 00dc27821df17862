// Package driver wires observation, resolution and reporting together for
// the CLI commands.
package driver

import (
	"fmt"
	"os"

	"hdrguard/internal/diag"
	"hdrguard/internal/guard"
	"hdrguard/internal/observ"
	"hdrguard/internal/sentinel"
)

// Result is the outcome of resolving one translation unit's macro dump.
type Result struct {
	Path   string
	Macros int
	Probes guard.ProbeSet
	Flags  guard.FlagSet
	Bag    *diag.Bag
	Timer  *observ.Timer
}

// ResolveDump reads a macro dump file and resolves the guard table for it.
func ResolveDump(path string, maxDiagnostics int) (*Result, error) {
	bag := diag.NewBag(maxDiagnostics)
	timer := observ.NewTimer()

	load := timer.Begin("load")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open macro dump: %w", err)
	}
	defer f.Close()

	set, err := sentinel.ParseDump(f, path, bag)
	timer.End(load, fmt.Sprintf("%d macros", set.Len()))
	if err != nil {
		return nil, err
	}

	resolve := timer.Begin("resolve")
	probes := sentinel.Detect(set)
	flags := guard.Resolve(guard.Env{Mode: guard.ModeUserspace, Probes: probes})
	timer.End(resolve, "")

	return &Result{
		Path:   path,
		Macros: set.Len(),
		Probes: probes,
		Flags:  flags,
		Bag:    bag,
		Timer:  timer,
	}, nil
}
