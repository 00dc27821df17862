package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hdrguard/internal/diag"
	"hdrguard/internal/guard"
	"hdrguard/internal/profile"
	"hdrguard/internal/sentinel"
)

// envFlags are the input-selection flags shared by resolve, render and
// explain. Exactly one source of probes applies: explicit --define macros, a
// --dump file, or a libc profile simulation; --kernel overrides them all.
type envFlags struct {
	defines  []string
	dump     string
	libc     string
	profile  string
	includes []string
	kernel   bool
}

func (ef *envFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&ef.defines, "define", nil, "macro defined in the translation unit (repeatable)")
	cmd.Flags().StringVar(&ef.dump, "dump", "", "compiler macro dump file (cc -dM -E output)")
	cmd.Flags().StringVar(&ef.libc, "libc", "", "built-in libc profile (glibc|musl)")
	cmd.Flags().StringVar(&ef.profile, "profile", "", "custom libc profile TOML file")
	cmd.Flags().StringArrayVar(&ef.includes, "include", nil, "libc header to simulate as already included (repeatable)")
	cmd.Flags().BoolVar(&ef.kernel, "kernel", false, "kernel context: emit everything, ignore probes")
}

// environment builds the guard environment from the flags, collecting input
// diagnostics into bag.
func (ef *envFlags) environment(bag *diag.Bag) (guard.Env, error) {
	if ef.kernel {
		return guard.Env{Mode: guard.ModeKernel}, nil
	}

	sources := 0
	for _, used := range []bool{len(ef.defines) > 0, ef.dump != "", ef.libc != "" || ef.profile != ""} {
		if used {
			sources++
		}
	}
	if sources > 1 {
		return guard.Env{}, fmt.Errorf("--define, --dump and --libc/--profile are mutually exclusive")
	}

	switch {
	case ef.dump != "":
		f, err := os.Open(ef.dump)
		if err != nil {
			return guard.Env{}, fmt.Errorf("failed to open macro dump: %w", err)
		}
		defer f.Close()
		set, err := sentinel.ParseDump(f, ef.dump, bag)
		if err != nil {
			return guard.Env{}, err
		}
		return guard.Env{Probes: sentinel.Detect(set)}, nil

	case ef.libc != "" || ef.profile != "":
		var (
			p   *profile.Profile
			err error
		)
		if ef.profile != "" {
			if ef.libc != "" {
				return guard.Env{}, fmt.Errorf("--libc and --profile are mutually exclusive")
			}
			p, err = profile.Load(ef.profile)
			if err != nil {
				return guard.Env{}, err
			}
		} else {
			var ok bool
			p, ok = profile.Builtin(ef.libc)
			if !ok {
				return guard.Env{}, fmt.Errorf("unknown libc profile %q (have: %v)", ef.libc, profile.BuiltinNames())
			}
		}
		if len(ef.includes) == 0 {
			return guard.Env{}, fmt.Errorf("a libc profile needs at least one --include header")
		}
		return guard.Env{Probes: profile.ProbesForIncludes(p, ef.includes, bag)}, nil

	default:
		if len(ef.includes) > 0 {
			return guard.Env{}, fmt.Errorf("--include needs --libc or --profile")
		}
		return guard.Env{Probes: sentinel.Detect(sentinel.NewSet(ef.defines...))}, nil
	}
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 100
	}
	return n
}

func reportDiagnostics(cmd *cobra.Command, bag *diag.Bag) {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet || bag.Len() == 0 {
		return
	}
	bag.Dedup()
	diag.Pretty(os.Stderr, bag, diag.PrettyOpts{Color: useColor(cmd, os.Stderr)})
}
