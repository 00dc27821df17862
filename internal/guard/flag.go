package guard

import "fmt"

// FlagID identifies one conflicting definition group. Each flag controls a
// __UAPI_DEF_* guard macro that the kernel-side headers test before emitting
// the group's definitions.
type FlagID uint8

const (
	// netinet/in.h, IPv4 side.
	FlagInAddr FlagID = iota
	FlagInIPProto
	FlagInPktinfo
	FlagIPMreq
	FlagSockaddrIn
	FlagInClass

	// netinet/in.h, IPv6 side.
	FlagIn6Addr
	FlagIn6AddrAlt
	FlagSockaddrIn6
	FlagIPv6Mreq
	FlagIPProtoV6
	FlagIPv6Options
	FlagIn6Pktinfo
	FlagIP6Mtuinfo

	// netinet/tcp.h and netinet/if_ether.h.
	FlagTCPHdr
	FlagEthHdr

	// time.h and sys/time.h interval structures.
	FlagTimespec
	FlagItimerspec
	FlagTimeval
	FlagItimerval
	FlagTimezone

	// net/if.h interface request structures.
	FlagIfIfnamsiz
	FlagIfNetDeviceFlagsLowerUpDormantEcho
	FlagIfNetDeviceFlags
	FlagIfIfmap
	FlagIfIfreq
	FlagIfIfconf

	// sys/xattr.h constants.
	FlagXattr

	flagCount
)

var flagMacros = [flagCount]string{
	FlagInAddr:      "__UAPI_DEF_IN_ADDR",
	FlagInIPProto:   "__UAPI_DEF_IN_IPPROTO",
	FlagInPktinfo:   "__UAPI_DEF_IN_PKTINFO",
	FlagIPMreq:      "__UAPI_DEF_IP_MREQ",
	FlagSockaddrIn:  "__UAPI_DEF_SOCKADDR_IN",
	FlagInClass:     "__UAPI_DEF_IN_CLASS",
	FlagIn6Addr:     "__UAPI_DEF_IN6_ADDR",
	FlagIn6AddrAlt:  "__UAPI_DEF_IN6_ADDR_ALT",
	FlagSockaddrIn6: "__UAPI_DEF_SOCKADDR_IN6",
	FlagIPv6Mreq:    "__UAPI_DEF_IPV6_MREQ",
	FlagIPProtoV6:   "__UAPI_DEF_IPPROTO_V6",
	FlagIPv6Options: "__UAPI_DEF_IPV6_OPTIONS",
	FlagIn6Pktinfo:  "__UAPI_DEF_IN6_PKTINFO",
	FlagIP6Mtuinfo:  "__UAPI_DEF_IP6_MTUINFO",
	FlagTCPHdr:      "__UAPI_DEF_TCPHDR",
	FlagEthHdr:      "__UAPI_DEF_ETHHDR",
	FlagTimespec:    "__UAPI_DEF_TIMESPEC",
	FlagItimerspec:  "__UAPI_DEF_ITIMERSPEC",
	FlagTimeval:     "__UAPI_DEF_TIMEVAL",
	FlagItimerval:   "__UAPI_DEF_ITIMERVAL",
	FlagTimezone:    "__UAPI_DEF_TIMEZONE",
	FlagIfIfnamsiz:  "__UAPI_DEF_IF_IFNAMSIZ",
	FlagIfNetDeviceFlagsLowerUpDormantEcho: "__UAPI_DEF_IF_NET_DEVICE_FLAGS_LOWER_UP_DORMANT_ECHO",
	FlagIfNetDeviceFlags:                   "__UAPI_DEF_IF_NET_DEVICE_FLAGS",
	FlagIfIfmap:                            "__UAPI_DEF_IF_IFMAP",
	FlagIfIfreq:                            "__UAPI_DEF_IF_IFREQ",
	FlagIfIfconf:                           "__UAPI_DEF_IF_IFCONF",
	FlagXattr:                              "__UAPI_DEF_XATTR",
}

// Macro returns the guard macro this flag controls.
func (f FlagID) Macro() string {
	if f >= flagCount {
		return ""
	}
	return flagMacros[f]
}

func (f FlagID) String() string { return f.Macro() }

func (f FlagID) GoString() string {
	return fmt.Sprintf("FlagID(%s)", f.Macro())
}

// Flags enumerates all flags in declaration order, which is also the order
// the rendered header lists them in.
func Flags() []FlagID {
	out := make([]FlagID, 0, flagCount)
	for f := FlagID(0); f < flagCount; f++ {
		out = append(out, f)
	}
	return out
}

// FlagByMacro maps a guard macro name back to its flag.
func FlagByMacro(macro string) (FlagID, bool) {
	for f := FlagID(0); f < flagCount; f++ {
		if flagMacros[f] == macro {
			return f, true
		}
	}
	return 0, false
}

// Family groups flags that share a libc header area. Families are the unit
// of suppression: one probe flips one family (the in.h and in6.h families
// share the netinet/in.h probe but stay distinct groups).
type Family uint8

const (
	FamilyIn Family = iota
	FamilyIn6
	FamilyTCP
	FamilyEther
	FamilyTime
	FamilySysTime
	FamilyNetIf
	FamilyXattr

	familyCount
)

func (fa Family) String() string {
	switch fa {
	case FamilyIn:
		return "in"
	case FamilyIn6:
		return "in6"
	case FamilyTCP:
		return "tcp"
	case FamilyEther:
		return "ether"
	case FamilyTime:
		return "time"
	case FamilySysTime:
		return "sys-time"
	case FamilyNetIf:
		return "net-if"
	case FamilyXattr:
		return "xattr"
	default:
		return "unknown"
	}
}
