package thing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDefs = `; lights
[Lamp]
width = 32
height = 64
id = 7
preview = lamp_on

[Torch]
width = 16
height = 48
id = 8        ; wall mounted
preview = torch
`

func TestParseDefinitions(t *testing.T) {
	defs, err := ParseDefinitions(strings.NewReader(sampleDefs), "lights.ini")
	if err != nil {
		t.Fatalf("ParseDefinitions failed: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}

	lamp := defs[0]
	if lamp.Name != "Lamp" || lamp.ID != 7 || lamp.Width != 32 || lamp.Height != 64 || lamp.Preview != "lamp_on" {
		t.Errorf("unexpected lamp definition: %+v", lamp)
	}
	if defs[1].ID != 8 {
		t.Errorf("torch id = %d, want 8", defs[1].ID)
	}
}

func TestParseDefinitions_MissingID(t *testing.T) {
	input := "[Lamp]\nwidth = 32\nheight = 64\n"
	if _, err := ParseDefinitions(strings.NewReader(input), "bad.ini"); err == nil {
		t.Error("expected error for missing id")
	}
}

func TestParseDefinitions_IDOutOfRange(t *testing.T) {
	input := "[Lamp]\nid = 65535\n"
	if _, err := ParseDefinitions(strings.NewReader(input), "bad.ini"); err == nil {
		t.Error("expected error for id 65535")
	}
}

func TestParseDefinitions_KeyOutsideSection(t *testing.T) {
	input := "width = 32\n"
	if _, err := ParseDefinitions(strings.NewReader(input), "bad.ini"); err == nil {
		t.Error("expected error for key outside section")
	}
}

func TestParseDefinitions_UnknownKey(t *testing.T) {
	input := "[Lamp]\nid = 1\ncolor = red\n"
	if _, err := ParseDefinitions(strings.NewReader(input), "bad.ini"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoadDefinitionsDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("b.ini", "[Torch]\nid = 2\n")
	write("a.ini", "[Lamp]\nid = 1\n")
	write("notes.txt", "ignored")

	defs, err := LoadDefinitionsDir(dir)
	if err != nil {
		t.Fatalf("LoadDefinitionsDir failed: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
	// Files are read in name order.
	if defs[0].Name != "Lamp" || defs[1].Name != "Torch" {
		t.Errorf("unexpected order: %q, %q", defs[0].Name, defs[1].Name)
	}
}
