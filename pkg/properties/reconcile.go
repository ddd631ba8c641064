package properties

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrSchemaMismatch signals drift between a saved schema and the current one.
// It is surfaced to the caller for an explicit resolution choice and never
// resolved silently.
var ErrSchemaMismatch = errors.New("schema mismatch")

// Resolution selects which schema wins when a saved document's property
// schema drifts from the application's. The choice is made once per load, at
// document granularity.
type Resolution uint8

const (
	// AdoptApplication keeps the application schema: stored values for
	// unmatched or mismatched names are discarded, missing ones filled with
	// defaults.
	AdoptApplication Resolution = iota
	// AdoptMap keeps the file's schema for this load session.
	AdoptMap
)

// String returns the resolution name.
func (r Resolution) String() string {
	switch r {
	case AdoptApplication:
		return "adopt-application"
	case AdoptMap:
		return "adopt-map"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(r))
	}
}

// Drift describes how a saved schema differs from the current one.
type Drift struct {
	// Missing names exist in the current schema but not in the saved one.
	Missing []string
	// Extra names exist in the saved schema but not in the current one.
	Extra []string
	// Mismatched names exist in both with different types.
	Mismatched []string
}

// None returns true when the schemas are identical in names and types.
func (d Drift) None() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0 && len(d.Mismatched) == 0
}

// Err returns ErrSchemaMismatch wrapped with a summary, or nil when there is
// no drift.
func (d Drift) Err() error {
	if d.None() {
		return nil
	}
	var parts []string
	if len(d.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing %v", d.Missing))
	}
	if len(d.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("extra %v", d.Extra))
	}
	if len(d.Mismatched) > 0 {
		parts = append(parts, fmt.Sprintf("type mismatch %v", d.Mismatched))
	}
	return fmt.Errorf("%w: %s", ErrSchemaMismatch, strings.Join(parts, ", "))
}

// Diff compares a saved schema against the current one.
func Diff(saved, current *Schema) Drift {
	var d Drift
	for _, name := range current.Names() {
		cur, _ := current.Get(name)
		old, ok := saved.Get(name)
		switch {
		case !ok:
			d.Missing = append(d.Missing, name)
		case old.Type != cur.Type:
			d.Mismatched = append(d.Mismatched, name)
		}
	}
	for _, name := range saved.Names() {
		if _, ok := current.Get(name); !ok {
			d.Extra = append(d.Extra, name)
		}
	}
	sort.Strings(d.Missing)
	sort.Strings(d.Extra)
	sort.Strings(d.Mismatched)
	return d
}

// Reconcile maps a stored instance onto the schema chosen by the resolution.
// Under AdoptApplication the result matches the current schema exactly; under
// AdoptMap it matches the saved schema exactly. There is no third outcome.
func Reconcile(stored Instance, saved, current *Schema, res Resolution) Instance {
	target := current
	if res == AdoptMap {
		target = saved
	}

	out := make(Instance, target.Len())
	for _, name := range target.Names() {
		def, _ := target.Get(name)
		if v, ok := stored[name]; ok && v.Type() == def.Type {
			out[name] = v
			continue
		}
		out[name] = def.Default
	}
	return out
}
