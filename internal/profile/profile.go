// Package profile models which sentinel macros a given C library defines
// when each of its headers is included. Profiles let the CLI answer "what
// would the guard table decide if libc X had already provided headers
// H1..Hn" without a real compiler macro dump.
package profile

import "sort"

// Profile describes one libc: header path -> macros the libc defines upon
// including that header. Only macros that are sentinels for known probes
// influence resolution; the rest are carried for completeness.
type Profile struct {
	Name    string
	Headers map[string][]string
}

// KnownHeaders returns the profile's header paths in sorted order.
func (p *Profile) KnownHeaders() []string {
	out := make([]string, 0, len(p.Headers))
	for h := range p.Headers {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}

// Macros returns the macros the profile defines for a header.
func (p *Profile) Macros(header string) ([]string, bool) {
	m, ok := p.Headers[header]
	return m, ok
}

var builtins = map[string]*Profile{
	"glibc": {
		Name: "glibc",
		Headers: map[string][]string{
			"netinet/in.h": {"_NETINET_IN_H"},
			"netinet/tcp.h": {"_NETINET_TCP_H"},
			// glibc's if_ether.h guards itself with a double-underscore
			// macro and pulls in the kernel header, so its inclusion is
			// invisible to the probe and the kernel side keeps emitting.
			"netinet/if_ether.h": {"__NETINET_IF_ETHER_H"},
			"time.h":             {"_TIME_H"},
			"sys/time.h":         {"_SYS_TIME_H"},
			"net/if.h":           {"_NET_IF_H"},
			"sys/xattr.h":        {"_SYS_XATTR_H"},
		},
	},
	"musl": {
		Name: "musl",
		Headers: map[string][]string{
			"netinet/in.h":       {"_NETINET_IN_H"},
			"netinet/tcp.h":      {"_NETINET_TCP_H"},
			"netinet/if_ether.h": {"_NETINET_IF_ETHER_H"},
			"time.h":             {"_TIME_H"},
			"sys/time.h":         {"_SYS_TIME_H"},
			"net/if.h":           {"_NET_IF_H"},
			"sys/xattr.h":        {"_SYS_XATTR_H"},
		},
	},
}

// Builtin returns a built-in libc profile by name.
func Builtin(name string) (*Profile, bool) {
	p, ok := builtins[name]
	return p, ok
}

// BuiltinNames lists the built-in profiles in sorted order.
func BuiltinNames() []string {
	out := make([]string, 0, len(builtins))
	for name := range builtins {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
