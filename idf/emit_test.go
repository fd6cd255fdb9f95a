package idf

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit_FieldPositionalFormat(t *testing.T) {
	m := NewModel()
	m.Add(Version{VersionID: "24.2"})
	m.Add(Zone{ZoneName: "Z1", CeilingHeightM: 3.0, VolumeM3: 300, Multiplier: 1})

	out, err := Emit(m)
	require.NoError(t, err)

	assert.Contains(t, out, "Version,\n  24.2;")
	assert.Contains(t, out, "Zone,\n  Z1,")
	assert.Contains(t, out, "\n\n")
}

func TestEmit_OrderIsKindThenInsertion(t *testing.T) {
	m := NewModel()
	m.Add(Zone{ZoneName: "Z1"})
	m.Add(Version{VersionID: "24.2"})
	m.Add(Zone{ZoneName: "Z2"})

	objs := m.All()
	require.Len(t, objs, 3)
	assert.Equal(t, "Zone", objs[0].Kind())
	assert.Equal(t, "Z1", objs[0].Name())
	assert.Equal(t, "Zone", objs[1].Kind())
	assert.Equal(t, "Z2", objs[1].Name())
	assert.Equal(t, "Version", objs[2].Kind())
}

func TestEmit_Deterministic(t *testing.T) {
	build := func() string {
		m := NewModel()
		m.Add(Version{VersionID: "24.2"})
		m.Add(Zone{ZoneName: "Z1", VolumeM3: 100})
		out, err := Emit(m)
		require.NoError(t, err)
		return out
	}
	h1 := sha256.Sum256([]byte(build()))
	h2 := sha256.Sum256([]byte(build()))
	assert.Equal(t, hex.EncodeToString(h1[:]), hex.EncodeToString(h2[:]))
}

func TestEmit_AutosizeRenders(t *testing.T) {
	m := NewModel()
	m.Add(FanVariableVolume{FanName: "F1", InletNode: "n1", OutletNode: "n2"})
	out, err := Emit(m)
	require.NoError(t, err)
	assert.Contains(t, out, "autosize")
}
