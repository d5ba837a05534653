package service

import (
	"testing"
	"time"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeStructureListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeeStructureService(db)

	for _, year := range []int{2022, 2024, 2023} {
		require.NoError(t, svc.Create(&model.FeeStructure{Year: year, AnnualFee: money(200)}))
	}

	fees, err := svc.List()
	require.NoError(t, err)
	require.Len(t, fees, 3)
	for i := 1; i < len(fees); i++ {
		assert.GreaterOrEqual(t, fees[i-1].Year, fees[i].Year)
	}
}

func TestFeeStructureLatestIsCreateTemplate(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeeStructureService(db)

	require.NoError(t, svc.Create(&model.FeeStructure{Year: 2023, AnnualFee: money(190)}))
	require.NoError(t, svc.Create(&model.FeeStructure{Year: 2024, AnnualFee: money(200)}))

	latest, err := svc.Latest()
	require.NoError(t, err)
	assert.Equal(t, 2024, latest.Year)
}

func TestFeeStructureLatestEmptyTable(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeeStructureService(db)

	_, err := svc.Latest()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeeStructureUpdateBlockedForPastYear(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeeStructureService(db)

	pastYear := time.Now().Year() - 1
	require.NoError(t, svc.Create(&model.FeeStructure{Year: pastYear, AnnualFee: money(180)}))

	stale, err := svc.Get(pastYear)
	require.NoError(t, err)
	stale.AnnualFee = money(500)
	assert.ErrorIs(t, svc.Update(pastYear, stale), ErrEditBlocked)

	// No write happened.
	current, err := svc.Get(pastYear)
	require.NoError(t, err)
	require.NotNil(t, current.AnnualFee)
	assert.InDelta(t, 180.0, *current.AnnualFee, 0.001)
	assert.Equal(t, 1, current.Version)
}

func TestFeeStructureUpdateCurrentYear(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeeStructureService(db)

	year := time.Now().Year()
	require.NoError(t, svc.Create(&model.FeeStructure{Year: year, AnnualFee: money(200)}))

	fee, err := svc.Get(year)
	require.NoError(t, err)
	fee.AnnualFee = money(220)
	require.NoError(t, svc.Update(year, fee))

	updated, err := svc.Get(year)
	require.NoError(t, err)
	require.NotNil(t, updated.AnnualFee)
	assert.InDelta(t, 220.0, *updated.AnnualFee, 0.001)
	assert.Equal(t, 2, updated.Version)
}

func TestFeeStructureUpdateKeyMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeeStructureService(db)

	year := time.Now().Year()
	require.NoError(t, svc.Create(&model.FeeStructure{Year: year, AnnualFee: money(200)}))

	fee, err := svc.Get(year)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Update(year+1, fee), ErrNotFound)
}

func TestFeeStructureDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeeStructureService(db)

	assert.ErrorIs(t, svc.Delete(2030), ErrNotFound)
}
