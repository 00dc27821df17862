package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hdrguard/internal/diag"
	"hdrguard/internal/guard"
)

var explainCmd = &cobra.Command{
	Use:   "explain [flags] [macro...]",
	Short: "Explain why guard flags resolve the way they do",
	Long: `Explain reports, per __UAPI_DEF_* macro, the sentinel that governs it and
the reason for its value, including the in6_addr accessor exception`,
	RunE: runExplain,
}

var explainEnv envFlags

func init() {
	explainEnv.register(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	bag := diag.NewBag(maxDiagnostics(cmd))
	env, err := explainEnv.environment(bag)
	if err != nil {
		return err
	}
	reportDiagnostics(cmd, bag)

	wanted := make(map[guard.FlagID]bool, len(args))
	for _, macro := range args {
		f, ok := guard.FlagByMacro(macro)
		if !ok {
			return fmt.Errorf("unknown guard macro %q", macro)
		}
		wanted[f] = true
	}

	bold := color.New(color.Bold)
	colored := useColor(cmd, os.Stdout)
	for _, d := range guard.Explain(env) {
		if len(wanted) > 0 && !wanted[d.Flag] {
			continue
		}
		name := d.Flag.Macro()
		if colored {
			name = bold.Sprint(name)
		}
		fmt.Fprintf(os.Stdout, "%s = %d (%s family, probes %s)\n", name, d.Value, d.Family, d.Probe.Sentinel())
		fmt.Fprintf(os.Stdout, "  %s\n", d.Reason())
	}
	return nil
}
