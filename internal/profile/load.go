package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrNameMissing indicates that name is missing in a profile file.
	ErrNameMissing = errors.New("missing name")
	// ErrHeadersMissing indicates that [headers] is missing or empty.
	ErrHeadersMissing = errors.New("missing [headers]")
	// ErrEmptySentinels indicates a header entry with no macros.
	ErrEmptySentinels = errors.New("header entry has no macros")
)

type profileFile struct {
	Name    string              `toml:"name"`
	Headers map[string][]string `toml:"headers"`
}

// Load parses a libc profile from a TOML file:
//
//	name = "mylibc"
//
//	[headers]
//	"netinet/in.h" = ["_NETINET_IN_H"]
//	"sys/xattr.h"  = ["_SYS_XATTR_H"]
func Load(path string) (*Profile, error) {
	var cfg profileFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	name := strings.TrimSpace(cfg.Name)
	if !meta.IsDefined("name") || name == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrNameMissing)
	}
	if !meta.IsDefined("headers") || len(cfg.Headers) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrHeadersMissing)
	}
	headers := make(map[string][]string, len(cfg.Headers))
	for header, macros := range cfg.Headers {
		cleaned := make([]string, 0, len(macros))
		for _, m := range macros {
			if m = strings.TrimSpace(m); m != "" {
				cleaned = append(cleaned, m)
			}
		}
		if len(cleaned) == 0 {
			return nil, fmt.Errorf("%s: header %q: %w", path, header, ErrEmptySentinels)
		}
		headers[header] = cleaned
	}
	return &Profile{Name: name, Headers: headers}, nil
}
