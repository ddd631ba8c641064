package formats

import (
	"fmt"
	"os"

	"github.com/cloudcalvin/HillVacuum/pkg/props"
)

// Animations-only (.anms) and props-only (.prps) streams carry a single
// counted section for cross-document exchange.

// ParseANMS parses an animations exchange stream.
func ParseANMS(data []byte) ([]TextureAnimation, error) {
	r, err := checkHeader(data, anmsMagic, "anms file")
	if err != nil {
		return nil, err
	}

	r.section = "header"
	n, err := r.count("animation count", 1)
	if err != nil {
		return nil, err
	}

	out := make([]TextureAnimation, 0, n)
	for i := 0; i < n; i++ {
		r.section = fmt.Sprintf("animations[%d]", i)
		ta, err := r.textureAnimation()
		if err != nil {
			return nil, err
		}
		out = append(out, ta)
	}

	r.section = "trailer"
	if r.remaining() != 0 {
		return nil, r.failf("%d trailing bytes", r.remaining())
	}
	return out, nil
}

// WriteANMS encodes an animations exchange stream.
func WriteANMS(animations []TextureAnimation) ([]byte, error) {
	w := &writer{}
	w.header(anmsMagic)
	w.u64(uint64(len(animations)))
	for _, ta := range animations {
		if err := w.appendTextureAnimation(ta); err != nil {
			return nil, err
		}
	}
	return w.bytes(), nil
}

// ParsePRPS parses a props exchange stream.
func ParsePRPS(data []byte) ([]*props.Prop, error) {
	r, err := checkHeader(data, prpsMagic, "prps file")
	if err != nil {
		return nil, err
	}

	r.section = "header"
	n, err := r.count("prop count", 1)
	if err != nil {
		return nil, err
	}

	out := make([]*props.Prop, 0, n)
	for i := 0; i < n; i++ {
		r.section = fmt.Sprintf("props[%d]", i)
		p, err := r.prop(i)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	r.section = "trailer"
	if r.remaining() != 0 {
		return nil, r.failf("%d trailing bytes", r.remaining())
	}
	return out, nil
}

// WritePRPS encodes a props exchange stream.
func WritePRPS(ps []*props.Prop) ([]byte, error) {
	w := &writer{}
	w.header(prpsMagic)
	w.u64(uint64(len(ps)))
	for _, p := range ps {
		if err := w.appendProp(p); err != nil {
			return nil, err
		}
	}
	return w.bytes(), nil
}

// ParseANMSFile parses an .anms file from disk.
func ParseANMSFile(path string) ([]TextureAnimation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading anms file: %w", err)
	}
	return ParseANMS(data)
}

// ParsePRPSFile parses a .prps file from disk.
func ParsePRPSFile(path string) ([]*props.Prop, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prps file: %w", err)
	}
	return ParsePRPS(data)
}
