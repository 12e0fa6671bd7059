package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"flexcluster/src/arch"

	"github.com/c2h5oh/datasize"
)

func parseDefines(t *testing.T, text string) map[string]string {
	t.Helper()

	defines := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		tokens := strings.Fields(line)
		if len(tokens) == 3 && tokens[0] == "#define" {
			defines[tokens[1]] = tokens[2]
		}
	}
	return defines
}

func TestWriteHeader(t *testing.T) {
	cfg := arch.NewArchitectureConfig()

	var buf bytes.Buffer
	if err := WriteHeader(&buf, cfg); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	text := buf.String()

	if !strings.HasPrefix(text, "#ifndef "+headerGuard+"\n#define "+headerGuard+"\n") {
		t.Fatalf("expected include guard, got %q", text[:40])
	}
	if !strings.Contains(text, "#endif") {
		t.Fatalf("expected closing #endif")
	}

	defines := parseDefines(t, text)
	if len(defines) != len(cfg.Fields()) {
		t.Fatalf("expected %d defines, got %d", len(cfg.Fields()), len(defines))
	}

	cases := map[string]string{
		"ARCH_NUM_CLUSTER_X":       "16",
		"ARCH_CLUSTER_TCDM_BASE":   "0x00000000",
		"ARCH_CLUSTER_TCDM_SIZE":   "0x00040000",
		"ARCH_MTXTRAN_REG_BASE":    "0x20020000",
		"ARCH_VECTENG_REG_BASE":    "0x20030000",
		"ARCH_HBM_START_BASE":      "0xc0000000",
		"ARCH_HBM_PLACEMENT":       "{16,0,0,16}",
		"ARCH_NOC_LINK_WIDTH":      "1024",
		"ARCH_SOC_REGISTER_WAKEUP": "0x90000004",
		"ARCH_SYNC_SPECIAL_MEM":    "0x00000040",
	}
	for name, want := range cases {
		if got := defines[name]; got != want {
			t.Fatalf("%s: expected %s, got %q", name, want, got)
		}
	}

	for _, title := range []string{"//Cluster", "//RedMulE", "//HBM", "//Synchronization"} {
		if !strings.Contains(text, title+"\n") {
			t.Fatalf("expected group comment %s", title)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	cfg := arch.NewArchitectureConfig()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, cfg); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var object map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &object); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(object) != len(cfg.Fields()) {
		t.Fatalf("expected %d keys, got %d", len(cfg.Fields()), len(object))
	}
	if object["num_cluster_x"] != float64(16) {
		t.Fatalf("expected num_cluster_x=16, got %v", object["num_cluster_x"])
	}
	if object["instruction_mem_base"] != float64(0x80000000) {
		t.Fatalf("expected instruction_mem_base=0x80000000, got %v", object["instruction_mem_base"])
	}

	placement, ok := object["hbm_placement"].([]interface{})
	if !ok || len(placement) != 4 || placement[0] != float64(16) || placement[3] != float64(16) {
		t.Fatalf("expected hbm_placement [16 0 0 16], got %v", object["hbm_placement"])
	}
}

func TestWriteTable(t *testing.T) {
	cfg := arch.NewArchitectureConfig()

	var buf bytes.Buffer
	if err := WriteTable(&buf, cfg); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(cfg.Fields())+1 {
		t.Fatalf("expected %d lines, got %d", len(cfg.Fields())+1, len(lines))
	}

	var tcdm string
	for _, line := range lines {
		if strings.Contains(line, "cluster_tcdm_size") {
			tcdm = line
		}
	}
	tokens := strings.Fields(tcdm)
	want := []string{"Cluster", "cluster_tcdm_size", "size", "0x00040000", (256 * datasize.KB).String()}
	if strings.Join(tokens, " ") != strings.Join(want, " ") {
		t.Fatalf("expected row %v, got %v", want, tokens)
	}
}

func TestWriteDispatch(t *testing.T) {
	cfg := arch.NewArchitectureConfig()

	for _, name := range []string{"table", "json", "header"} {
		format, ok := FormatFromString(name)
		if !ok {
			t.Fatalf("expected %s to be a known format", name)
		}
		var buf bytes.Buffer
		if err := Write(&buf, format, cfg); err != nil {
			t.Fatalf("%s: Write failed: %v", name, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("%s: expected output", name)
		}
	}

	if _, ok := FormatFromString("yaml"); ok {
		t.Fatalf("expected yaml to be unknown")
	}
	err := Write(&bytes.Buffer{}, Format("yaml"), cfg)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestFormatValue(t *testing.T) {
	cfg := arch.NewArchitectureConfig()

	cases := map[string]string{
		"num_core_per_cluster": "3",
		"redmule_reg_base":     "0x20010000",
		"sync_interleave":      "0x00000080",
		"hbm_placement":        "[16, 0, 0, 16]",
	}
	for name, want := range cases {
		field, ok := cfg.Lookup(name)
		if !ok {
			t.Fatalf("expected %s to exist", name)
		}
		if got := FormatValue(field); got != want {
			t.Fatalf("%s: expected %s, got %s", name, want, got)
		}
	}
}
