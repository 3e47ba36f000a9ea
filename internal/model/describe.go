package model

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// String describes the meter structure and the raw attribution mapping,
// kinds and entities in ascending order. It is meant for debugging and is
// not a stable serialization format.
func (m *Model) String() string {
	var b strings.Builder

	if m.meter == nil {
		b.WriteString("meter: none\n")
	} else {
		fmt.Fprintf(&b, "meter: %s\n", m.meter)
	}

	if len(m.kinds) == 0 {
		b.WriteString("attributes: (none)\n")
		return b.String()
	}

	b.WriteString("attributes:\n")
	for _, kind := range m.kinds {
		group := m.attributes[kind]
		fmt.Fprintf(&b, "  %s:\n", kind)
		for _, id := range slices.Sorted(maps.Keys(group)) {
			fmt.Fprintf(&b, "    %d: %s\n", id, group[id])
		}
	}
	return b.String()
}
