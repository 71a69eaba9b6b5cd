package care

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveActiveDoctorNoHistory(t *testing.T) {
	db := newTestDB(t)
	resolver := NewResolver(db)

	_, err := resolver.ResolveActiveDoctor("patient-1")
	assert.ErrorIs(t, err, ErrNoActiveDoctor)
}

func TestResolveActiveDoctorMostRecentVisitWins(t *testing.T) {
	db := newTestDB(t)
	resolver := NewResolver(db)

	mustCreateRecord(t, db, "patient-1", "doctor-a", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	mustCreateRecord(t, db, "patient-1", "doctor-b", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	doctorID, err := resolver.ResolveActiveDoctor("patient-1")
	require.NoError(t, err)
	assert.Equal(t, "doctor-b", doctorID)
}

func TestResolveActiveDoctorSameDayTieBreaksOnNewestRecord(t *testing.T) {
	db := newTestDB(t)
	resolver := NewResolver(db)

	visited := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	mustCreateRecord(t, db, "patient-1", "doctor-a", visited)
	mustCreateRecord(t, db, "patient-1", "doctor-b", visited)

	doctorID, err := resolver.ResolveActiveDoctor("patient-1")
	require.NoError(t, err)
	assert.Equal(t, "doctor-b", doctorID)
}

func TestResolveActiveDoctorIgnoresOtherPatients(t *testing.T) {
	db := newTestDB(t)
	resolver := NewResolver(db)

	mustCreateRecord(t, db, "patient-2", "doctor-z", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))

	_, err := resolver.ResolveActiveDoctor("patient-1")
	assert.ErrorIs(t, err, ErrNoActiveDoctor)
}
