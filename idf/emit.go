package idf

import (
	"fmt"
	"strings"

	"idfgen/idferrors"
)

// Model is an ordered, append-only collection of objects grouped by
// kind. Emission order is: object kind in first-seen order, then
// insertion order within kind — this is what makes a rerun with
// identical inputs byte-identical.
type Model struct {
	order  []string
	byKind map[string][]Object
}

// NewModel returns an empty emitter model.
func NewModel() *Model {
	return &Model{byKind: make(map[string][]Object)}
}

// Add appends obj to the model under its own Kind(), registering the
// kind's emission order on first use.
func (m *Model) Add(obj Object) {
	k := obj.Kind()
	if _, ok := m.byKind[k]; !ok {
		m.order = append(m.order, k)
	}
	m.byKind[k] = append(m.byKind[k], obj)
}

// Objects returns every object of kind, in insertion order.
func (m *Model) Objects(kind string) []Object {
	return m.byKind[kind]
}

// All returns every object across all kinds, in emission order.
func (m *Model) All() []Object {
	var out []Object
	for _, k := range m.order {
		out = append(out, m.byKind[k]...)
	}
	return out
}

// Emit serializes the model to the strict field-positional IDF text
// format: "Kind,\n  value, !- comment\n ... value; !- comment\n\n" per
// object, groups in kind-then-insertion order. Fails only if an object
// declares zero fields, which should be unreachable once the validator
// (C7) has passed; reaching it indicates a pre-emit bug.
func Emit(m *Model) (string, error) {
	var sb strings.Builder
	for _, kind := range m.order {
		for _, obj := range m.byKind[kind] {
			fields := obj.Fields()
			if len(fields) == 0 {
				return "", idferrors.NewEmitError(obj.Name(), fmt.Sprintf("%s has no fields", kind))
			}
			sb.WriteString(kind)
			sb.WriteString(",\n")
			for i, f := range fields {
				sep := ","
				if i == len(fields)-1 {
					sep = ";"
				}
				sb.WriteString("  ")
				sb.WriteString(f.Value)
				sb.WriteString(sep)
				if f.Comment != "" {
					sb.WriteString(" !- ")
					sb.WriteString(f.Comment)
				}
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
