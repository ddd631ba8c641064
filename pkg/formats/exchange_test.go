package formats

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cloudcalvin/HillVacuum/pkg/anim"
	"github.com/cloudcalvin/HillVacuum/pkg/geom"
	"github.com/cloudcalvin/HillVacuum/pkg/props"
	"github.com/cloudcalvin/HillVacuum/pkg/thing"
)

func TestANMSRoundTrip(t *testing.T) {
	animations := []TextureAnimation{
		{Texture: "water", Animation: anim.NewList(
			anim.Frame{Texture: "water1", Duration: 0.1},
			anim.Frame{Texture: "water2", Duration: 0.2},
			anim.Frame{Texture: "water3", Duration: 0.1},
		)},
		{Texture: "torch", Animation: anim.NewAtlas("torch", 1, 4, anim.UniformTiming(0.25))},
		{Texture: "coils", Animation: anim.NewAtlas("coils", 2, 3,
			anim.PerFrameTiming([]float32{0.1, 0.1, 0.2, 0.2, 0.3, 0.3}))},
	}

	data, err := WriteANMS(animations)
	if err != nil {
		t.Fatalf("WriteANMS failed: %v", err)
	}
	parsed, err := ParseANMS(data)
	if err != nil {
		t.Fatalf("ParseANMS failed: %v", err)
	}
	if len(parsed) != len(animations) {
		t.Fatalf("got %d animations, want %d", len(parsed), len(animations))
	}
	for i, want := range animations {
		if parsed[i].Texture != want.Texture || !want.Animation.Equal(parsed[i].Animation) {
			t.Errorf("animation %d mismatch after round trip", i)
		}
	}
}

func TestPRPSRoundTrip(t *testing.T) {
	doc := testDocument(t)
	ps := []*props.Prop{
		doc.Props[0],
		props.Capture(nil, []*thing.Instance{doc.Things[0]}, geom.Vec2{X: -8, Y: 4}),
	}

	data, err := WritePRPS(ps)
	if err != nil {
		t.Fatalf("WritePRPS failed: %v", err)
	}
	parsed, err := ParsePRPS(data)
	if err != nil {
		t.Fatalf("ParsePRPS failed: %v", err)
	}
	if len(parsed) != len(ps) {
		t.Fatalf("got %d props, want %d", len(parsed), len(ps))
	}
	for i, want := range ps {
		if !want.Equal(parsed[i]) {
			t.Errorf("prop %d mismatch after round trip", i)
		}
	}
}

func TestExchangeMagicsAreDistinct(t *testing.T) {
	animations := []TextureAnimation{
		{Texture: "water", Animation: anim.NewAtlas("water", 1, 2, anim.UniformTiming(0.5))},
	}
	data, err := WriteANMS(animations)
	if err != nil {
		t.Fatal(err)
	}

	// An animations file must not parse as a props or document file.
	if _, err := ParsePRPS(data); !errors.Is(err, ErrInvalidMagic) {
		t.Errorf("ParsePRPS on anms data: expected ErrInvalidMagic, got %v", err)
	}
	if _, err := ParseHV(data); !errors.Is(err, ErrInvalidMagic) {
		t.Errorf("ParseHV on anms data: expected ErrInvalidMagic, got %v", err)
	}
}

func TestParseANMS_Truncated(t *testing.T) {
	animations := []TextureAnimation{
		{Texture: "water", Animation: anim.NewList(anim.Frame{Texture: "water1", Duration: 0.5})},
	}
	data, err := WriteANMS(animations)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseANMS(data[:len(data)-2]); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
	if _, err := ParseANMS(append(data, 0)); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("trailing byte: expected ErrMalformedRecord, got %v", err)
	}
}

func TestFileHelpers(t *testing.T) {
	dir := t.TempDir()

	doc := testDocument(t)
	hvPath := filepath.Join(dir, "map.hv")
	if err := WriteHVFile(hvPath, doc); err != nil {
		t.Fatalf("WriteHVFile failed: %v", err)
	}
	parsed, err := ParseHVFile(hvPath)
	if err != nil {
		t.Fatalf("ParseHVFile failed: %v", err)
	}
	assertFilesEqual(t, doc, parsed)

	if _, err := ParseHVFile(filepath.Join(dir, "missing.hv")); err == nil {
		t.Error("expected error for missing file")
	}

	anmsPath := filepath.Join(dir, "pack.anms")
	animations := []TextureAnimation{
		{Texture: "water", Animation: anim.NewAtlas("water", 2, 2, anim.UniformTiming(0.5))},
	}
	anmsData, err := WriteANMS(animations)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(anmsPath, anmsData, 0644); err != nil {
		t.Fatal(err)
	}
	loaded, err := ParseANMSFile(anmsPath)
	if err != nil {
		t.Fatalf("ParseANMSFile failed: %v", err)
	}
	if len(loaded) != 1 || !loaded[0].Animation.Equal(animations[0].Animation) {
		t.Error("anms file round trip mismatch")
	}
}
