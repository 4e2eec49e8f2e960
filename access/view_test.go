package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldname-generator/access"
	"fieldname-generator/schema"
)

type pet struct {
	Name  string
	Owner string
	Legs  int
}

func TestView_CapabilitiesNotAttached(t *testing.T) {
	acc, err := access.New[pet]()
	require.NoError(t, err)

	p := pet{Name: "Torrent", Owner: "Tarnished", Legs: 4}
	name, _ := acc.Field(&p, "Name")

	_, err = name.Format()
	assert.ErrorIs(t, err, access.ErrCapability)

	_, err = name.GoFormat()
	assert.ErrorIs(t, err, access.ErrCapability)

	_, err = name.Equal(name)
	assert.ErrorIs(t, err, access.ErrCapability)

	_, err = name.Clone()
	assert.ErrorIs(t, err, access.ErrCapability)
}

func TestView_CapabilitiesAttached(t *testing.T) {
	acc, err := access.New[pet](
		schema.WithCapabilities("stringer", "gostringer", "equal", "clone"),
		schema.WithCapabilitiesMut("stringer", "equal"),
	)
	require.NoError(t, err)

	p := pet{Name: "Torrent", Owner: "Torrent", Legs: 4}

	name, _ := acc.Field(&p, "Name")
	owner, _ := acc.Field(&p, "Owner")
	legs, _ := acc.Field(&p, "Legs")

	s, err := legs.Format()
	require.NoError(t, err)
	assert.Equal(t, "Int(4)", s)

	s, err = name.GoFormat()
	require.NoError(t, err)
	assert.Equal(t, `petField.String("Torrent")`, s)

	eq, err := name.Equal(owner)
	require.NoError(t, err)
	assert.True(t, eq, "same tag and value")

	eq, err = name.Equal(legs)
	require.NoError(t, err)
	assert.False(t, eq)

	c, err := name.Clone()
	require.NoError(t, err)
	assert.Equal(t, "Name", c.Field())
	p.Name = "Spectral Steed"
	assert.Equal(t, "Spectral Steed", c.Value())

	legsMut, _ := acc.FieldMut(&p, "Legs")
	s, err = legsMut.Format()
	require.NoError(t, err)
	assert.Equal(t, "Int(4)", s)

	_, err = legsMut.GoFormat()
	assert.ErrorIs(t, err, access.ErrCapability)

	otherMut, _ := acc.FieldMut(&p, "Legs")
	eq, err = legsMut.Equal(otherMut)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestView_Metadata(t *testing.T) {
	acc, err := access.New[pet]()
	require.NoError(t, err)

	p := pet{}
	legs, _ := acc.FieldMut(&p, "Legs")

	assert.Equal(t, "Legs", legs.Field())
	assert.Equal(t, "Int", legs.Tag())
	assert.Equal(t, "petFieldMut", legs.Union().Name)
	assert.Equal(t, "int", legs.Type().String())
	assert.Equal(t, []string{"Legs"}, legs.Case().Fields)

	ptr, ok := legs.Ptr().(*int)
	require.True(t, ok)
	*ptr = 3
	assert.Equal(t, 3, p.Legs)
}
