package service

import (
	"testing"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoatTypeListSortedByName(t *testing.T) {
	db := newTestDB(t)
	svc := NewBoatTypeService(db)

	for _, name := range []string{"Laser", "Albacore", "Wayfarer"} {
		require.NoError(t, svc.Create(&model.BoatType{Name: name, Sail: true}))
	}

	boatTypes, err := svc.List()
	require.NoError(t, err)
	require.Len(t, boatTypes, 3)
	assert.Equal(t, "Albacore", boatTypes[0].Name)
	assert.Equal(t, "Wayfarer", boatTypes[2].Name)
}

func TestBoatTypeUpdateConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewBoatTypeService(db)

	bt := &model.BoatType{Name: "Laser", Sail: true}
	require.NoError(t, svc.Create(bt))

	first, err := svc.Get(bt.BoatTypeID)
	require.NoError(t, err)
	second, err := svc.Get(bt.BoatTypeID)
	require.NoError(t, err)

	first.Description = "single-handed dinghy"
	require.NoError(t, svc.Update(first.BoatTypeID, first))

	second.Description = "one-design racer"
	assert.ErrorIs(t, svc.Update(second.BoatTypeID, second), ErrConflict)
}
