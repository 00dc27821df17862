package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"hdrguard/internal/guard"
)

func TestWriteHeaderDefault(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHeader(&buf, guard.Env{}); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	out := buf.String()
	for _, f := range guard.Flags() {
		want := "#define " + f.Macro() + " 1"
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q", want)
		}
	}
	if strings.Contains(out, " 0\n") {
		t.Fatalf("default header must not suppress anything:\n%s", out)
	}
}

func TestWriteHeaderNetinetIn(t *testing.T) {
	var buf bytes.Buffer
	env := guard.Env{Probes: guard.NewProbeSet(guard.ProbeNetinetIn)}
	if err := WriteHeader(&buf, env); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	out := buf.String()
	checks := map[string]string{
		"__UAPI_DEF_IN_ADDR":      "#define __UAPI_DEF_IN_ADDR 0",
		"__UAPI_DEF_IN6_ADDR":     "#define __UAPI_DEF_IN6_ADDR 0",
		"__UAPI_DEF_IN6_ADDR_ALT": "#define __UAPI_DEF_IN6_ADDR_ALT 1",
		"__UAPI_DEF_XATTR":        "#define __UAPI_DEF_XATTR 1",
		"__UAPI_DEF_TCPHDR":       "#define __UAPI_DEF_TCPHDR 1",
	}
	for macro, want := range checks {
		if !strings.Contains(out, want+"\n") {
			t.Fatalf("%s line wrong, want %q in:\n%s", macro, want, out)
		}
	}
	if !strings.Contains(out, "accessor macros") {
		t.Fatalf("asymmetry comment missing from header output")
	}
}

func TestWriteHeaderEveryFlagOnce(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHeader(&buf, guard.Env{Mode: guard.ModeKernel}); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	out := buf.String()
	for _, f := range guard.Flags() {
		if n := strings.Count(out, "#define "+f.Macro()+" "); n != 1 {
			t.Fatalf("%s defined %d times, want once", f.Macro(), n)
		}
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	env := guard.Env{Probes: guard.NewProbeSet(guard.ProbeSysXattr)}
	if err := WriteTable(&buf, guard.Explain(env), TableOpts{}); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(guard.Flags())+1 {
		t.Fatalf("table has %d lines, want %d", len(lines), len(guard.Flags())+1)
	}
	found := false
	for _, line := range lines {
		if strings.HasPrefix(line, "__UAPI_DEF_XATTR") {
			found = true
			if !strings.Contains(line, "0") || !strings.Contains(line, "_SYS_XATTR_H") {
				t.Fatalf("xattr row wrong: %q", line)
			}
		}
	}
	if !found {
		t.Fatalf("xattr row missing")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	env := guard.Env{Probes: guard.NewProbeSet(guard.ProbeNetinetIn)}
	if err := WriteJSON(&buf, env); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var decoded struct {
		Mode      string   `json:"mode"`
		Sentinels []string `json:"sentinels_present"`
		Flags     []struct {
			Macro  string `json:"macro"`
			Value  int    `json:"value"`
			Forced bool   `json:"forced"`
		} `json:"flags"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Mode != "userspace" {
		t.Fatalf("mode = %q", decoded.Mode)
	}
	if len(decoded.Sentinels) != 1 || decoded.Sentinels[0] != "_NETINET_IN_H" {
		t.Fatalf("sentinels = %v", decoded.Sentinels)
	}
	forced := 0
	for _, f := range decoded.Flags {
		if f.Forced {
			forced++
			if f.Macro != "__UAPI_DEF_IN6_ADDR_ALT" || f.Value != 1 {
				t.Fatalf("forced flag = %+v", f)
			}
		}
	}
	if forced != 1 {
		t.Fatalf("forced flags = %d, want 1", forced)
	}
}
