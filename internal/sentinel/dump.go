package sentinel

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"

	"hdrguard/internal/diag"
)

// ParseDump reads a compiler macro dump (one "#define NAME value" per line,
// the format of cc -dM -E) into a Set. Irregular lines never abort the read:
// they are reported into bag and skipped, since a dump is advisory input,
// not a strict format.
//
// A dump that already defines __UAPI_DEF_* macros is flagged too: it means
// some other coordination mechanism ran first, and resolving on top of it
// may disagree with what the compiler actually saw.
func ParseDump(r io.Reader, path string, bag *diag.Bag) (*Set, error) {
	set := NewSet()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		name, ok := parseDefine(line)
		if !ok {
			addDiag(bag, diag.SevWarning, diag.DumpMalformedLine, path, lineNo,
				fmt.Sprintf("not a #define line: %q", truncate(line, 60)))
			continue
		}
		if strings.HasPrefix(name, "__UAPI_DEF_") {
			addDiag(bag, diag.SevWarning, diag.DumpGuardOverride, path, lineNo,
				fmt.Sprintf("guard macro %s already defined in this translation unit", name))
		}
		if set.Has(name) {
			addDiag(bag, diag.SevInfo, diag.DumpDuplicateMacro, path, lineNo,
				fmt.Sprintf("macro %s defined more than once", name))
			continue
		}
		set.Add(name)
	}
	if err := sc.Err(); err != nil {
		return set, fmt.Errorf("%s: reading macro dump: %w", path, err)
	}
	return set, nil
}

// parseDefine extracts the macro name from a "#define NAME ..." line.
// Function-like macros keep only the name before the parameter list.
func parseDefine(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, "#define")
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}
	rest = strings.TrimLeft(rest, " \t")
	if rest == "" {
		return "", false
	}
	end := strings.IndexAny(rest, " \t(")
	name := rest
	if end >= 0 {
		name = rest[:end]
	}
	if !validMacroName(name) {
		return "", false
	}
	return name, true
}

func validMacroName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func addDiag(bag *diag.Bag, sev diag.Severity, code diag.Code, path string, lineNo int, msg string) {
	if bag == nil {
		return
	}
	line, err := safecast.Conv[uint32](lineNo)
	if err != nil {
		line = 0
	}
	bag.Add(diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		File:     path,
		Line:     line,
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
