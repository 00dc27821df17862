package render

import (
	"encoding/json"
	"io"

	"hdrguard/internal/guard"
)

type jsonFlag struct {
	Macro    string `json:"macro"`
	Value    int    `json:"value"`
	Sentinel string `json:"sentinel"`
	Forced   bool   `json:"forced,omitempty"`
}

type jsonResolution struct {
	Mode      string     `json:"mode"`
	Sentinels []string   `json:"sentinels_present"`
	Flags     []jsonFlag `json:"flags"`
}

// WriteJSON emits the resolution for env as indented JSON.
func WriteJSON(w io.Writer, env guard.Env) error {
	out := jsonResolution{
		Mode:      env.Mode.String(),
		Sentinels: []string{},
	}
	for _, p := range guard.Probes() {
		if env.Mode == guard.ModeUserspace && env.Probes.Has(p) {
			out.Sentinels = append(out.Sentinels, p.Sentinel())
		}
	}
	for _, d := range guard.Explain(env) {
		out.Flags = append(out.Flags, jsonFlag{
			Macro:    d.Flag.Macro(),
			Value:    int(d.Value),
			Sentinel: d.Probe.Sentinel(),
			Forced:   d.Forced,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
