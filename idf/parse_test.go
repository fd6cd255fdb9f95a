package idf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTripsEmittedObjects(t *testing.T) {
	m := NewModel()
	m.Add(Version{VersionID: "24.2"})
	m.Add(Zone{ZoneName: "Z1", Multiplier: 1, CeilingHeightM: 3, VolumeM3: 300})
	m.Add(Zone{ZoneName: "Z2", Multiplier: 1, CeilingHeightM: 3, VolumeM3: 150})

	text, err := Emit(m)
	require.NoError(t, err)

	parsed := Parse(text)
	require.Len(t, parsed, 3)
	assert.Equal(t, "Version", parsed[0].Kind)
	assert.Equal(t, []string{"24.2"}, parsed[0].Values)
	assert.Equal(t, "Zone", parsed[1].Kind)
	assert.Equal(t, "Z1", parsed[1].Values[0])
	assert.Equal(t, "Z2", parsed[2].Values[0])

	// The recovered field sequence must equal the in-memory emit
	// sequence, value for value.
	for i, obj := range m.All() {
		fields := obj.Fields()
		require.Len(t, parsed[i].Values, len(fields))
		for j, f := range fields {
			assert.Equal(t, f.Value, parsed[i].Values[j])
		}
	}
}

func TestParseIgnoresCommentsAndBlankLines(t *testing.T) {
	text := "! header comment\n\nVersion,\n  24.2; !- Version Identifier\n\n"
	parsed := Parse(text)
	require.Len(t, parsed, 1)
	assert.Equal(t, "Version", parsed[0].Kind)
}

func TestParsePreservesBlankIntermediateFields(t *testing.T) {
	text := "AirLoopHVAC,\n  Loop1,\n  ,\n  Branches;\n\n"
	parsed := Parse(text)
	require.Len(t, parsed, 1)
	assert.Equal(t, []string{"Loop1", "", "Branches"}, parsed[0].Values)
}
