package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"hdrguard/internal/guard"
)

// Current schema version - increment when cachePayload format changes.
const cacheSchemaVersion uint16 = 1

// Digest identifies a dump file by content.
type Digest [sha256.Size]byte

// DigestOf hashes raw dump bytes.
func DigestOf(content []byte) Digest {
	return sha256.Sum256(content)
}

// DumpCache memoizes probe detection per dump content on disk. Resolution
// itself is pure and cheap; what the cache saves is re-reading large
// compiler dumps. Dumps that produced diagnostics are never cached so a
// re-run reproduces them.
type DumpCache struct {
	dir string
}

type cachePayload struct {
	Schema uint16
	Probes uint8
	Macros int
}

// OpenDumpCache initializes the cache under the standard cache location.
func OpenDumpCache(app string) (*DumpCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "dumps")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DumpCache{dir: dir}, nil
}

// OpenDumpCacheAt places the cache in an explicit directory.
func OpenDumpCacheAt(dir string) (*DumpCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DumpCache{dir: dir}, nil
}

func (c *DumpCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Put stores the probe set detected for a dump digest. Atomic via rename.
func (c *DumpCache) Put(key Digest, probes guard.ProbeSet, macros int) error {
	if c == nil {
		return nil
	}
	p := c.pathFor(key)
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&cachePayload{
		Schema: cacheSchemaVersion,
		Probes: uint8(probes),
		Macros: macros,
	}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get looks up a dump digest. Misses and schema mismatches report ok=false.
func (c *DumpCache) Get(key Digest) (probes guard.ProbeSet, macros int, ok bool, err error) {
	if c == nil {
		return 0, 0, false, nil
	}
	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, 0, false, nil
		}
		return 0, 0, false, err
	}
	defer f.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return 0, 0, false, err
	}
	if payload.Schema != cacheSchemaVersion {
		return 0, 0, false, nil
	}
	return guard.ProbeSet(payload.Probes), payload.Macros, true, nil
}

// DropAll removes every cached entry, useful after format changes.
func (c *DumpCache) DropAll() error {
	if c == nil {
		return nil
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".mp" {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
