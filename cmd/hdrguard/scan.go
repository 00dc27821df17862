package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hdrguard/internal/driver"
	"hdrguard/internal/guard"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] dir",
	Short: "Resolve every macro dump under a directory",
	Long:  `Scan walks a directory of *.dump files (cc -dM -E output, one per translation unit) and resolves the guard table for each`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = GOMAXPROCS)")
	scanCmd.Flags().Bool("cache", false, "memoize probe detection per dump content")
	scanCmd.Flags().Bool("suppressed-only", false, "list only flags the libc side owns")
}

func runScan(cmd *cobra.Command, args []string) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	useCache, _ := cmd.Flags().GetBool("cache")
	suppressedOnly, _ := cmd.Flags().GetBool("suppressed-only")

	opts := driver.ScanOptions{
		MaxDiagnostics: maxDiagnostics(cmd),
		Jobs:           jobs,
	}
	if useCache {
		cache, err := driver.OpenDumpCache("hdrguard")
		if err != nil {
			return fmt.Errorf("failed to open dump cache: %w", err)
		}
		opts.Cache = cache
	}

	results, err := driver.ScanDir(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "no *.dump files found")
		return nil
	}

	failed := false
	for _, res := range results {
		reportDiagnostics(cmd, res.Bag)
		if res.Bag.HasErrors() {
			failed = true
		}

		suppressed := 0
		for _, f := range guard.Flags() {
			if res.Flags.Get(f) == guard.Suppress {
				suppressed++
			}
		}
		fmt.Fprintf(os.Stdout, "%s: %d macros, %d of %d groups suppressed\n",
			res.Path, res.Macros, suppressed, len(guard.Flags()))

		if suppressedOnly {
			for _, f := range guard.Flags() {
				if res.Flags.Get(f) == guard.Suppress {
					fmt.Fprintf(os.Stdout, "  %s 0\n", f.Macro())
				}
			}
		}
	}
	if failed {
		return fmt.Errorf("some dumps could not be read")
	}
	return nil
}
