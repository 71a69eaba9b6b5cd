package care

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-portal-server/internal/models"
)

func TestCreateOpensPendingCall(t *testing.T) {
	db := newTestDB(t)
	queue := NewCallQueue(db)

	call, err := queue.Create("doctor-1")
	require.NoError(t, err)
	assert.Equal(t, models.CallStatusPending, call.Status)
	assert.Nil(t, call.NurseID)
	assert.NotZero(t, call.ID)
}

func TestClaimBindsExactlyOneNurse(t *testing.T) {
	db := newTestDB(t)
	queue := NewCallQueue(db)

	call, err := queue.Create("doctor-1")
	require.NoError(t, err)

	require.NoError(t, queue.Claim(call.ID, "nurse-1"))

	// A second nurse loses, and a retry by the winner is also spent
	assert.ErrorIs(t, queue.Claim(call.ID, "nurse-2"), ErrAlreadyClaimed)
	assert.ErrorIs(t, queue.Claim(call.ID, "nurse-1"), ErrAlreadyClaimed)

	var stored models.NurseCallRequest
	require.NoError(t, db.First(&stored, "id = ?", call.ID).Error)
	assert.Equal(t, models.CallStatusAccepted, stored.Status)
	require.NotNil(t, stored.NurseID)
	assert.Equal(t, "nurse-1", *stored.NurseID)
}

func TestClaimUnknownCall(t *testing.T) {
	db := newTestDB(t)
	queue := NewCallQueue(db)

	assert.ErrorIs(t, queue.Claim(12345, "nurse-1"), ErrCallNotFound)
}

func TestClaimLoserDoesNotMutateState(t *testing.T) {
	db := newTestDB(t)
	queue := NewCallQueue(db)

	call, err := queue.Create("doctor-1")
	require.NoError(t, err)
	require.NoError(t, queue.Claim(call.ID, "nurse-1"))

	assert.ErrorIs(t, queue.Claim(call.ID, "nurse-2"), ErrAlreadyClaimed)

	var stored models.NurseCallRequest
	require.NoError(t, db.First(&stored, "id = ?", call.ID).Error)
	require.NotNil(t, stored.NurseID)
	assert.Equal(t, "nurse-1", *stored.NurseID, "a failed claim must never touch nurse_id")
	assert.Equal(t, models.CallStatusAccepted, stored.Status)
}

func TestConcurrentClaimsHaveOneWinner(t *testing.T) {
	db := newTestFileDB(t)
	queue := NewCallQueue(db)

	call, err := queue.Create("doctor-1")
	require.NoError(t, err)

	const nurses = 8
	results := make([]error, nurses)
	var wg sync.WaitGroup
	var start sync.WaitGroup
	start.Add(1)
	for i := 0; i < nurses; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			start.Wait()
			results[n] = queue.Claim(call.ID, nurseName(n))
		}(i)
	}
	start.Done()
	wg.Wait()

	winners := 0
	winner := -1
	for n, err := range results {
		if err == nil {
			winners++
			winner = n
		} else {
			assert.ErrorIs(t, err, ErrAlreadyClaimed)
		}
	}
	require.Equal(t, 1, winners, "exactly one claim must succeed")

	var stored models.NurseCallRequest
	require.NoError(t, db.First(&stored, "id = ?", call.ID).Error)
	assert.Equal(t, models.CallStatusAccepted, stored.Status)
	require.NotNil(t, stored.NurseID)
	assert.Equal(t, nurseName(winner), *stored.NurseID)
}

func nurseName(n int) string {
	return "nurse-" + string(rune('a'+n))
}

func TestListOpenShowsPendingAndOwnAccepted(t *testing.T) {
	db := newTestDB(t)
	queue := NewCallQueue(db)

	first, err := queue.Create("doctor-1")
	require.NoError(t, err)
	second, err := queue.Create("doctor-2")
	require.NoError(t, err)

	require.NoError(t, queue.Claim(first.ID, "nurse-1"))

	// The winner still sees the call, now accepted
	winnerList, err := queue.ListOpen("nurse-1")
	require.NoError(t, err)
	require.Len(t, winnerList, 2)

	// The other nurse only sees what is still pending
	loserList, err := queue.ListOpen("nurse-2")
	require.NoError(t, err)
	require.Len(t, loserList, 1)
	assert.Equal(t, second.ID, loserList[0].ID)
}

func TestListOpenNewestFirst(t *testing.T) {
	db := newTestDB(t)
	queue := NewCallQueue(db)

	var ids []int64
	for i := 0; i < 3; i++ {
		call, err := queue.Create("doctor-1")
		require.NoError(t, err)
		ids = append(ids, call.ID)
	}

	calls, err := queue.ListOpen("nurse-1")
	require.NoError(t, err)
	require.Len(t, calls, 3)
	assert.Equal(t, ids[2], calls[0].ID)
	assert.Equal(t, ids[1], calls[1].ID)
	assert.Equal(t, ids[0], calls[2].ID)
}
