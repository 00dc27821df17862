package guard

import "fmt"

// ProbeID identifies a libc header area whose prior inclusion we can detect
// through the sentinel macro that header unconditionally defines.
type ProbeID uint8

const (
	ProbeNetinetIn ProbeID = iota
	ProbeNetinetTCP
	ProbeNetinetIfEther
	ProbeTime
	ProbeSysTime
	ProbeNetIf
	ProbeSysXattr

	probeCount
)

func (p ProbeID) String() string {
	switch p {
	case ProbeNetinetIn:
		return "netinet-in"
	case ProbeNetinetTCP:
		return "netinet-tcp"
	case ProbeNetinetIfEther:
		return "netinet-if-ether"
	case ProbeTime:
		return "time"
	case ProbeSysTime:
		return "sys-time"
	case ProbeNetIf:
		return "net-if"
	case ProbeSysXattr:
		return "sys-xattr"
	default:
		return "unknown"
	}
}

func (p ProbeID) GoString() string {
	return fmt.Sprintf("ProbeID(%s)", p.String())
}

// Sentinel returns the macro that signals "this libc header was already
// processed". The libc owns the macro; we only ever test its presence.
func (p ProbeID) Sentinel() string {
	switch p {
	case ProbeNetinetIn:
		return "_NETINET_IN_H"
	case ProbeNetinetTCP:
		return "_NETINET_TCP_H"
	case ProbeNetinetIfEther:
		return "_NETINET_IF_ETHER_H"
	case ProbeTime:
		return "_TIME_H"
	case ProbeSysTime:
		return "_SYS_TIME_H"
	case ProbeNetIf:
		return "_NET_IF_H"
	case ProbeSysXattr:
		return "_SYS_XATTR_H"
	default:
		return ""
	}
}

// Header returns the libc header path the probe stands for.
func (p ProbeID) Header() string {
	switch p {
	case ProbeNetinetIn:
		return "netinet/in.h"
	case ProbeNetinetTCP:
		return "netinet/tcp.h"
	case ProbeNetinetIfEther:
		return "netinet/if_ether.h"
	case ProbeTime:
		return "time.h"
	case ProbeSysTime:
		return "sys/time.h"
	case ProbeNetIf:
		return "net/if.h"
	case ProbeSysXattr:
		return "sys/xattr.h"
	default:
		return ""
	}
}

// Probes enumerates all probes in declaration order.
func Probes() []ProbeID {
	out := make([]ProbeID, 0, probeCount)
	for p := ProbeID(0); p < probeCount; p++ {
		out = append(out, p)
	}
	return out
}

// ProbeBySentinel maps a sentinel macro back to its probe.
func ProbeBySentinel(macro string) (ProbeID, bool) {
	for p := ProbeID(0); p < probeCount; p++ {
		if p.Sentinel() == macro {
			return p, true
		}
	}
	return 0, false
}

// ProbeSet is a bitmask of probes observed in a translation unit.
type ProbeSet uint8

// With returns a copy of the set with p added.
func (s ProbeSet) With(p ProbeID) ProbeSet {
	if p >= probeCount {
		return s
	}
	return s | 1<<p
}

// Has reports whether p is in the set.
func (s ProbeSet) Has(p ProbeID) bool {
	if p >= probeCount {
		return false
	}
	return s&(1<<p) != 0
}

// Empty reports whether no probe was observed.
func (s ProbeSet) Empty() bool { return s == 0 }

// NewProbeSet builds a set from explicit probes.
func NewProbeSet(probes ...ProbeID) ProbeSet {
	var s ProbeSet
	for _, p := range probes {
		s = s.With(p)
	}
	return s
}
