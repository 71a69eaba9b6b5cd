package care

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-portal-server/internal/models"
)

func TestAppendAndListRoundTrip(t *testing.T) {
	db := newTestDB(t)
	store := NewThreadStore(db)

	contents := []string{"hello doctor", "hello patient", "any update?", "results are in"}
	for i, content := range contents {
		sender, receiver := "patient-1", "doctor-1"
		if i%2 == 1 {
			sender, receiver = receiver, sender
		}
		_, err := store.Append("patient-1", "doctor-1", sender, receiver, content)
		require.NoError(t, err)
	}

	messages, err := store.ListThread("patient-1", "doctor-1")
	require.NoError(t, err)
	require.Len(t, messages, len(contents))
	for i, msg := range messages {
		assert.Equal(t, contents[i], msg.Content)
	}
}

func TestListThreadStableOrderForEqualTimestamps(t *testing.T) {
	db := newTestDB(t)
	store := NewThreadStore(db)

	// Insert directly so every message shares one timestamp; the
	// insertion id must keep the order stable.
	sentAt := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	for _, content := range []string{"first", "second", "third"} {
		msg := models.Message{
			PatientID:  "patient-1",
			DoctorID:   "doctor-1",
			SenderID:   "patient-1",
			ReceiverID: "doctor-1",
			Content:    content,
			SentAt:     sentAt,
		}
		require.NoError(t, db.Create(&msg).Error)
	}

	messages, err := store.ListThread("patient-1", "doctor-1")
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
	assert.Equal(t, "third", messages[2].Content)
}

func TestListThreadExcludesOtherThreads(t *testing.T) {
	db := newTestDB(t)
	store := NewThreadStore(db)

	_, err := store.Append("patient-1", "doctor-1", "patient-1", "doctor-1", "ours")
	require.NoError(t, err)
	_, err = store.Append("patient-1", "doctor-2", "patient-1", "doctor-2", "different doctor")
	require.NoError(t, err)
	_, err = store.Append("patient-2", "doctor-1", "patient-2", "doctor-1", "different patient")
	require.NoError(t, err)

	messages, err := store.ListThread("patient-1", "doctor-1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "ours", messages[0].Content)
}

func TestAppendRejectsEmptyContent(t *testing.T) {
	db := newTestDB(t)
	store := NewThreadStore(db)

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := store.Append("patient-1", "doctor-1", "patient-1", "doctor-1", content)
		assert.ErrorIs(t, err, ErrEmptyContent)
	}

	var count int64
	require.NoError(t, db.Model(&models.Message{}).Count(&count).Error)
	assert.Zero(t, count, "rejected sends must not be stored")
}

func TestMarkReadOnlyByRecipient(t *testing.T) {
	db := newTestDB(t)
	store := NewThreadStore(db)

	msg, err := store.Append("patient-1", "doctor-1", "patient-1", "doctor-1", "please read")
	require.NoError(t, err)
	assert.False(t, msg.Read)

	// The sender cannot mark their own message read
	err = store.MarkRead(msg.ID, "patient-1")
	assert.ErrorIs(t, err, ErrNotRecipient)

	// The recipient can
	require.NoError(t, store.MarkRead(msg.ID, "doctor-1"))

	var stored models.Message
	require.NoError(t, db.First(&stored, "id = ?", msg.ID).Error)
	assert.True(t, stored.Read)
}

func TestMarkReadUnknownMessage(t *testing.T) {
	db := newTestDB(t)
	store := NewThreadStore(db)

	err := store.MarkRead(9999, "doctor-1")
	assert.ErrorIs(t, err, ErrMessageNotFound)
}
