package main

import (
	"os"
	"path/filepath"
	"testing"

	"hdrguard/internal/diag"
	"hdrguard/internal/guard"
)

func TestEnvironmentFromDefines(t *testing.T) {
	ef := envFlags{defines: []string{"_NETINET_IN_H", "__GLIBC__"}}
	env, err := ef.environment(diag.NewBag(8))
	if err != nil {
		t.Fatalf("environment: %v", err)
	}
	if env.Mode != guard.ModeUserspace || !env.Probes.Has(guard.ProbeNetinetIn) {
		t.Fatalf("env = %+v", env)
	}
}

func TestEnvironmentKernelOverrides(t *testing.T) {
	ef := envFlags{kernel: true, defines: []string{"_NETINET_IN_H"}}
	env, err := ef.environment(diag.NewBag(8))
	if err != nil {
		t.Fatalf("environment: %v", err)
	}
	if env.Mode != guard.ModeKernel {
		t.Fatalf("kernel flag ignored: %+v", env)
	}
}

func TestEnvironmentMutuallyExclusiveSources(t *testing.T) {
	ef := envFlags{defines: []string{"_TIME_H"}, dump: "x.dump"}
	if _, err := ef.environment(diag.NewBag(8)); err == nil {
		t.Fatalf("conflicting sources accepted")
	}
}

func TestEnvironmentLibcNeedsIncludes(t *testing.T) {
	ef := envFlags{libc: "musl"}
	if _, err := ef.environment(diag.NewBag(8)); err == nil {
		t.Fatalf("libc profile without includes accepted")
	}

	ef = envFlags{includes: []string{"time.h"}}
	if _, err := ef.environment(diag.NewBag(8)); err == nil {
		t.Fatalf("--include without a profile accepted")
	}

	ef = envFlags{libc: "nosuch", includes: []string{"time.h"}}
	if _, err := ef.environment(diag.NewBag(8)); err == nil {
		t.Fatalf("unknown libc accepted")
	}
}

func TestEnvironmentFromDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tu.dump")
	if err := os.WriteFile(path, []byte("#define _SYS_XATTR_H 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ef := envFlags{dump: path}
	env, err := ef.environment(diag.NewBag(8))
	if err != nil {
		t.Fatalf("environment: %v", err)
	}
	if !env.Probes.Has(guard.ProbeSysXattr) || env.Probes.Has(guard.ProbeNetinetIn) {
		t.Fatalf("probes = %v", env.Probes)
	}
}

func TestEnvironmentFromLibcProfile(t *testing.T) {
	ef := envFlags{libc: "musl", includes: []string{"netinet/if_ether.h", "time.h"}}
	env, err := ef.environment(diag.NewBag(8))
	if err != nil {
		t.Fatalf("environment: %v", err)
	}
	if !env.Probes.Has(guard.ProbeNetinetIfEther) || !env.Probes.Has(guard.ProbeTime) {
		t.Fatalf("probes = %v", env.Probes)
	}
}
