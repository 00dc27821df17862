// Package render turns a resolved flag set back into consumable output: the
// C preprocessor fragment kernel-side headers ship, and human-readable
// tables for the CLI.
package render

import (
	"fmt"
	"io"

	"hdrguard/internal/guard"
)

var familyComments = map[guard.Family]string{
	guard.FamilyIn:      "Definitions for in.h",
	guard.FamilyIn6:     "Definitions for in6.h",
	guard.FamilyTCP:     "Definitions for tcp.h",
	guard.FamilyEther:   "Definitions for if_ether.h",
	guard.FamilyTime:    "Definitions for time.h",
	guard.FamilySysTime: "Definitions for sys/time.h",
	guard.FamilyNetIf:   "Definitions for net/if.h",
	guard.FamilyXattr:   "Definitions for xattr.h",
}

var familyOrder = []guard.Family{
	guard.FamilyIn, guard.FamilyIn6, guard.FamilyXattr,
	guard.FamilyTCP, guard.FamilyEther,
	guard.FamilyTime, guard.FamilySysTime, guard.FamilyNetIf,
}

// WriteHeader emits the coordination fragment for env as C preprocessor
// text, one #define per guard macro, grouped by definition family in the
// order the kernel's shipped header uses.
func WriteHeader(w io.Writer, env guard.Env) error {
	flags := guard.Resolve(env)
	for i, fam := range familyOrder {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "/* %s */\n", familyComments[fam]); err != nil {
			return err
		}
		for _, f := range guard.FamilyFlags(fam) {
			if f == guard.FlagIn6AddrAlt && flags.Get(guard.FlagIn6Addr) == guard.Suppress {
				// The one asymmetric entry: the libc owns in6_addr yet the
				// accessor macros still come from the kernel side.
				if _, err := fmt.Fprintln(w, "/* accessor macros are emitted even when the libc owns in6_addr */"); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "#define %s %d\n", f.Macro(), flags.Get(f)); err != nil {
				return err
			}
		}
	}
	return nil
}
