package models

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertIDGenerator_Format(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	gen := NewAlertIDGenerator(func() time.Time { return now })

	id, at := gen.Next(AlertGeofenceEntry, "T1")

	assert.Equal(t, "geofence_entry_1700000000123_T1", id)
	assert.Equal(t, now.UnixMilli(), at.UnixMilli())
}

func TestAlertIDGenerator_SameMillisecondIsUnique(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	gen := NewAlertIDGenerator(func() time.Time { return now })

	const n = 50
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, _ := gen.Next(AlertGeofenceEntry, "T1")
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, n)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestAlertIDGenerator_OtherEntitiesKeepWallClock(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	gen := NewAlertIDGenerator(func() time.Time { return now })

	for i := 0; i < 10; i++ {
		gen.Next(AlertGeofenceEntry, "T1")
	}
	id, at := gen.Next(AlertGeofenceEntry, "T2")

	assert.Equal(t, "geofence_entry_1700000000000_T2", id)
	assert.Equal(t, now.UnixMilli(), at.UnixMilli())

	_, atT1 := gen.Next(AlertGeofenceExit, "T1")
	assert.Equal(t, now.UnixMilli()+10, atT1.UnixMilli())
}

func TestSeverity_Rank(t *testing.T) {
	assert.Less(t, SeverityInfo.Rank(), SeverityWarning.Rank())
	assert.Less(t, SeverityWarning.Rank(), SeverityCritical.Rank())
	assert.Less(t, SeverityCritical.Rank(), SeverityEmergency.Rank())
	assert.False(t, Severity("loud").Valid())
}

func TestAlertType_Valid(t *testing.T) {
	assert.True(t, AlertBatteryLow.Valid())
	assert.True(t, AlertGeofenceExit.IsTransition())
	assert.False(t, AlertEmergency.IsTransition())
	assert.False(t, AlertType("sos").Valid())
	assert.Equal(t, SeverityEmergency, AlertEmergency.DefaultSeverity())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 20, 41)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, int64(41), p.TotalRecords)

	assert.Equal(t, 0, NewPagination(1, 20, 0).TotalPages)
	assert.Equal(t, 1, NewPagination(1, 20, 20).TotalPages)
}
