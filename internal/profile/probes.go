package profile

import (
	"fmt"

	"hdrguard/internal/diag"
	"hdrguard/internal/guard"
	"hdrguard/internal/sentinel"
)

// ProbesForIncludes simulates including the given headers under the profile
// and reports the resulting probe set. Headers the profile does not know are
// reported into bag and otherwise ignored: an unknown header cannot define a
// sentinel, so the safe reading is "nothing was pre-defined".
func ProbesForIncludes(p *Profile, includes []string, bag *diag.Bag) guard.ProbeSet {
	set := sentinel.NewSet()
	for _, header := range includes {
		macros, ok := p.Macros(header)
		if !ok {
			if bag != nil {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevWarning,
					Code:     diag.ProfileUnknownHeader,
					Message:  fmt.Sprintf("profile %s does not describe header %q", p.Name, header),
				})
			}
			continue
		}
		for _, m := range macros {
			set.Add(m)
		}
	}
	probes := sentinel.Detect(set)
	if probes.Empty() && set.Len() > 0 && bag != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevInfo,
			Code:     diag.ProfileNoSentinels,
			Message:  fmt.Sprintf("profile %s defined %d macros but none is a known sentinel", p.Name, set.Len()),
		})
	}
	return probes
}
