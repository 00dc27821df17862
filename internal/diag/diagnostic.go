package diag

import "fmt"

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Code is a stable diagnostic identifier.
type Code uint16

const (
	UnknownCode Code = 0

	// Macro dump reading.
	DumpMalformedLine  Code = 1001
	DumpGuardOverride  Code = 1002
	DumpDuplicateMacro Code = 1003

	// libc profile loading.
	ProfileUnknownHeader Code = 2001
	ProfileNoSentinels   Code = 2002

	// Orchestration / I/O.
	IOLoadFileError Code = 3001
)

func (c Code) String() string {
	return fmt.Sprintf("HG%04d", uint16(c))
}

// Diagnostic is one finding, anchored to a line of an input file when the
// source is known.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	File     string
	Line     uint32 // 1-based; 0 when the diagnostic has no line anchor
}

func (d Diagnostic) String() string {
	if d.File == "" {
		return fmt.Sprintf("%s %s: %s", d.Severity, d.Code, d.Message)
	}
	if d.Line == 0 {
		return fmt.Sprintf("%s %s: %s: %s", d.Severity, d.Code, d.File, d.Message)
	}
	return fmt.Sprintf("%s %s: %s:%d: %s", d.Severity, d.Code, d.File, d.Line, d.Message)
}
