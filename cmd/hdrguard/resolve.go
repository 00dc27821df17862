package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hdrguard/internal/diag"
	"hdrguard/internal/guard"
	"hdrguard/internal/observ"
	"hdrguard/internal/render"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the guard flag table for a translation unit",
	Long:  `Resolve decides, per conflicting definition group, whether the kernel-side header emits or suppresses its definition`,
	Args:  cobra.NoArgs,
	RunE:  runResolve,
}

var resolveEnv envFlags

func init() {
	resolveEnv.register(resolveCmd)
	resolveCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	resolveCmd.Flags().Bool("reasons", false, "include per-flag explanations")
}

func runResolve(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	reasons, _ := cmd.Flags().GetBool("reasons")

	timer := observ.NewTimer()
	bag := diag.NewBag(maxDiagnostics(cmd))

	phase := timer.Begin("observe")
	env, err := resolveEnv.environment(bag)
	timer.End(phase, "")
	if err != nil {
		return err
	}
	reportDiagnostics(cmd, bag)

	phase = timer.Begin("resolve")
	decisions := guard.Explain(env)
	timer.End(phase, "")

	switch format {
	case "pretty":
		err = render.WriteTable(os.Stdout, decisions, render.TableOpts{
			Color:   useColor(cmd, os.Stdout),
			Reasons: reasons,
		})
	case "json":
		err = render.WriteJSON(os.Stdout, env)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}

	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}
