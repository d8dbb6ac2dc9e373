package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateString(t *testing.T) {
	assert.Equal(t, "2025-01-01", Date{Year: 2025, Month: 1, Day: 1}.String())
	assert.Equal(t, "2025-12-31", Date{Year: 2025, Month: 12, Day: 31}.String())
}

func TestDateIsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, Date{Year: 2025, Month: 1, Day: 1}.IsZero())
}

func TestMovementKind(t *testing.T) {
	assert.True(t, MovementReceipt.Valid())
	assert.True(t, MovementShipment.Valid())
	assert.False(t, MovementKind("teleport").Valid())
	assert.False(t, MovementKind("").Valid())

	assert.Equal(t, "IN", MovementReceipt.Direction())
	assert.Equal(t, "OUT", MovementShipment.Direction())
}
