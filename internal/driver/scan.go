package driver

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"hdrguard/internal/diag"
	"hdrguard/internal/guard"
	"hdrguard/internal/sentinel"
)

// ScanOptions configures a directory scan.
type ScanOptions struct {
	MaxDiagnostics int
	Jobs           int
	Cache          *DumpCache
}

// listDumpFiles returns the sorted *.dump files under dir.
func listDumpFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".dump") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ScanDir resolves every macro dump under dir concurrently. Results come
// back in path order regardless of completion order. Per-file I/O failures
// become diagnostics on the file's result, not scan failures.
func ScanDir(ctx context.Context, dir string, opts ScanOptions) ([]Result, error) {
	files, err := listDumpFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Slots are per-goroutine unique, no mutex needed.
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = scanOne(path, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func scanOne(path string, opts ScanOptions) Result {
	bag := diag.NewBag(opts.MaxDiagnostics)
	res := Result{Path: path, Bag: bag}

	content, err := os.ReadFile(path)
	if err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  "failed to load file: " + err.Error(),
			File:     path,
		})
		res.Flags = guard.Resolve(guard.Env{})
		return res
	}

	key := DigestOf(content)
	if probes, macros, ok, _ := opts.Cache.Get(key); ok {
		res.Probes = probes
		res.Macros = macros
		res.Flags = guard.Resolve(guard.Env{Probes: probes})
		return res
	}

	set, err := sentinel.ParseDump(bytes.NewReader(content), path, bag)
	if err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  err.Error(),
			File:     path,
		})
	}
	res.Macros = set.Len()
	res.Probes = sentinel.Detect(set)
	res.Flags = guard.Resolve(guard.Env{Probes: res.Probes})

	// Clean parses are safe to memoize; anything diagnosed is re-read next
	// time so the diagnostics come back.
	if bag.Len() == 0 {
		_ = opts.Cache.Put(key, res.Probes, res.Macros)
	}
	return res
}
