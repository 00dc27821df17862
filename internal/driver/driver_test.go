package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hdrguard/internal/guard"
)

func writeDump(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestResolveDump(t *testing.T) {
	dir := t.TempDir()
	path := writeDump(t, dir, "glibc.dump",
		"#define __GLIBC__ 2\n#define _NETINET_IN_H 1\n")

	res, err := ResolveDump(path, 16)
	if err != nil {
		t.Fatalf("ResolveDump: %v", err)
	}
	if !res.Probes.Has(guard.ProbeNetinetIn) {
		t.Fatalf("netinet-in probe not detected")
	}
	if res.Flags.Get(guard.FlagIn6Addr) != guard.Suppress {
		t.Fatalf("__UAPI_DEF_IN6_ADDR not suppressed")
	}
	if res.Flags.Get(guard.FlagIn6AddrAlt) != guard.Emit {
		t.Fatalf("__UAPI_DEF_IN6_ADDR_ALT not forced to emit")
	}
	if res.Macros != 2 {
		t.Fatalf("macros = %d, want 2", res.Macros)
	}
}

func TestResolveDumpMissingFile(t *testing.T) {
	if _, err := ResolveDump(filepath.Join(t.TempDir(), "nope.dump"), 16); err == nil {
		t.Fatalf("missing file did not error")
	}
}

func TestScanDirOrderAndValues(t *testing.T) {
	dir := t.TempDir()
	writeDump(t, dir, "b.dump", "#define _SYS_XATTR_H 1\n")
	writeDump(t, dir, "a.dump", "#define _NETINET_IN_H 1\n")
	writeDump(t, dir, "c.dump", "#define __GLIBC__ 2\n")

	results, err := ScanDir(context.Background(), dir, ScanOptions{MaxDiagnostics: 16, Jobs: 2})
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if !strings.HasSuffix(results[0].Path, "a.dump") || !strings.HasSuffix(results[2].Path, "c.dump") {
		t.Fatalf("results out of path order: %v, %v, %v", results[0].Path, results[1].Path, results[2].Path)
	}
	if results[0].Flags.Get(guard.FlagSockaddrIn) != guard.Suppress {
		t.Fatalf("a.dump: sockaddr_in not suppressed")
	}
	if results[1].Flags.Get(guard.FlagXattr) != guard.Suppress {
		t.Fatalf("b.dump: xattr not suppressed")
	}
	for _, f := range guard.Flags() {
		if results[2].Flags.Get(f) != guard.Emit {
			t.Fatalf("c.dump: %s suppressed without sentinels", f.Macro())
		}
	}
}

func TestScanDirEmpty(t *testing.T) {
	results, err := ScanDir(context.Background(), t.TempDir(), ScanOptions{MaxDiagnostics: 4})
	if err != nil || results != nil {
		t.Fatalf("empty dir: results=%v err=%v", results, err)
	}
}

func TestScanDirNestedAndMalformed(t *testing.T) {
	dir := t.TempDir()
	writeDump(t, dir, "ok.dump", "#define _TIME_H 1\n")
	sub := filepath.Join(dir, "dir.dump")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeDump(t, sub, "inner.dump", "not a define\n")

	results, err := ScanDir(context.Background(), dir, ScanOptions{MaxDiagnostics: 16})
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// inner.dump parsed with a malformed-line warning but still resolved.
	for _, res := range results {
		if strings.HasSuffix(res.Path, "inner.dump") && !res.Bag.HasWarnings() {
			t.Fatalf("malformed dump produced no warning")
		}
	}
}

func TestDumpCacheRoundTrip(t *testing.T) {
	cache, err := OpenDumpCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("OpenDumpCacheAt: %v", err)
	}

	key := DigestOf([]byte("#define _NET_IF_H 1\n"))
	if _, _, ok, err := cache.Get(key); ok || err != nil {
		t.Fatalf("unexpected hit on empty cache: ok=%v err=%v", ok, err)
	}

	probes := guard.NewProbeSet(guard.ProbeNetIf)
	if err := cache.Put(key, probes, 1); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, macros, ok, err := cache.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get after Put: ok=%v err=%v", ok, err)
	}
	if got != probes || macros != 1 {
		t.Fatalf("cached probes=%v macros=%d", got, macros)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if _, _, ok, _ := cache.Get(key); ok {
		t.Fatalf("hit after DropAll")
	}
}

func TestScanDirUsesCache(t *testing.T) {
	dir := t.TempDir()
	writeDump(t, dir, "tu.dump", "#define _SYS_TIME_H 1\n")
	cache, err := OpenDumpCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("OpenDumpCacheAt: %v", err)
	}
	opts := ScanOptions{MaxDiagnostics: 16, Cache: cache}

	first, err := ScanDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("first scan: %v", err)
	}
	second, err := ScanDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("second scan: %v", err)
	}
	if first[0].Probes != second[0].Probes || first[0].Macros != second[0].Macros {
		t.Fatalf("cached scan disagrees: %+v vs %+v", first[0], second[0])
	}
	if second[0].Flags.Get(guard.FlagTimeval) != guard.Suppress {
		t.Fatalf("cached result lost suppression")
	}
}

func TestScanDirDoesNotCacheDiagnosedDumps(t *testing.T) {
	dir := t.TempDir()
	writeDump(t, dir, "bad.dump", "garbage\n#define _TIME_H 1\n")
	cache, err := OpenDumpCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("OpenDumpCacheAt: %v", err)
	}
	opts := ScanOptions{MaxDiagnostics: 16, Cache: cache}

	if _, err := ScanDir(context.Background(), dir, opts); err != nil {
		t.Fatalf("first scan: %v", err)
	}
	second, err := ScanDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("second scan: %v", err)
	}
	if !second[0].Bag.HasWarnings() {
		t.Fatalf("diagnostics lost on re-scan: dump was cached despite warnings")
	}
}
