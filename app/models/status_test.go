package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, s)

	s, err = ParseStatus("Unavailable")
	require.NoError(t, err)
	assert.False(t, s.IsActive())

	_, err = ParseStatus("archived")
	assert.Error(t, err)
}

func TestMovementTypeValid(t *testing.T) {
	assert.True(t, MovementTransfer.Valid())
	assert.False(t, MovementType("adjust").Valid())
}
