package handlers

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-portal-server/internal/care"
	"hospital-portal-server/internal/models"
)

func newMessageRouter(t *testing.T, handler *MessageHandler, userID string, role models.Role) *gin.Engine {
	t.Helper()
	r := gin.New()
	r.Use(authAs(userID, role))
	r.POST("/api/v1/messages/patient", handler.SendPatientMessage)
	r.POST("/api/v1/messages/doctor", handler.SendDoctorMessage)
	r.GET("/api/v1/messages/thread", handler.GetThread)
	r.PATCH("/api/v1/messages/:messageId/read", handler.MarkMessageAsRead)
	return r
}

func TestSendPatientMessageWithoutDoctorIsRejected(t *testing.T) {
	db := newTestDB(t)
	careService := care.NewService(db)
	handler := NewMessageHandler(db, careService)

	router := newMessageRouter(t, handler, "patient-1", models.RolePatient)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/messages/patient",
		gin.H{"content": "hello"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Message{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSendPatientMessageEmptyContentIsRejected(t *testing.T) {
	db := newTestDB(t)
	careService := care.NewService(db)
	handler := NewMessageHandler(db, careService)

	router := newMessageRouter(t, handler, "patient-1", models.RolePatient)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/messages/patient",
		gin.H{"content": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Message{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSendPatientMessageGoesToActiveDoctor(t *testing.T) {
	db := newTestDB(t)
	careService := care.NewService(db)
	handler := NewMessageHandler(db, careService)

	record := models.MedicalRecord{
		PatientID:  "patient-1",
		DoctorID:   "doctor-1",
		Diagnosis:  "checkup",
		RecordDate: time.Now(),
	}
	require.NoError(t, db.Create(&record).Error)

	router := newMessageRouter(t, handler, "patient-1", models.RolePatient)

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/messages/patient",
		gin.H{"content": "hello doctor"})
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.NotZero(t, data["messageId"])

	var stored models.Message
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "doctor-1", stored.DoctorID)
	assert.Equal(t, "doctor-1", stored.ReceiverID)
}

func TestSendDoctorMessageToUnknownPatient(t *testing.T) {
	db := newTestDB(t)
	careService := care.NewService(db)
	handler := NewMessageHandler(db, careService)

	router := newMessageRouter(t, handler, "doctor-1", models.RoleDoctor)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/messages/doctor",
		gin.H{"patientId": "6a2f8b9c-1d2e-4f3a-8b4c-5d6e7f8a9b0c", "content": "hi"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendDoctorMessageHappyPath(t *testing.T) {
	db := newTestDB(t)
	careService := care.NewService(db)
	handler := NewMessageHandler(db, careService)

	patient := mustCreateUser(t, db, "6a2f8b9c-1d2e-4f3a-8b4c-5d6e7f8a9b0c", models.RolePatient)

	router := newMessageRouter(t, handler, "doctor-1", models.RoleDoctor)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/messages/doctor",
		gin.H{"patientId": patient.ID, "content": "come see me"})
	require.Equal(t, http.StatusCreated, w.Code)

	thread, err := careService.ListThread(patient.ID, "doctor-1")
	require.NoError(t, err)
	require.Len(t, thread, 1)
	assert.Equal(t, "come see me", thread[0].Content)
}

func TestGetThreadRequiresParticipant(t *testing.T) {
	db := newTestDB(t)
	careService := care.NewService(db)
	handler := NewMessageHandler(db, careService)

	_, err := careService.SendDoctorMessage("doctor-1", "patient-1", "private")
	require.NoError(t, err)

	path := "/api/v1/messages/thread?patientId=patient-1&doctorId=doctor-1"

	// A stranger is refused
	stranger := newMessageRouter(t, handler, "patient-2", models.RolePatient)
	w, _ := doJSON(t, stranger, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// A participant reads it
	participant := newMessageRouter(t, handler, "patient-1", models.RolePatient)
	w2, resp := doJSON(t, participant, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w2.Code)
	require.Len(t, resp["data"].([]interface{}), 1)

	// So does an admin
	admin := newMessageRouter(t, handler, "admin-1", models.RoleAdmin)
	w3, _ := doJSON(t, admin, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, w3.Code)
}

func TestMarkMessageAsReadOnlyRecipient(t *testing.T) {
	db := newTestDB(t)
	careService := care.NewService(db)
	handler := NewMessageHandler(db, careService)

	msg, err := careService.SendDoctorMessage("doctor-1", "patient-1", "read me")
	require.NoError(t, err)

	path := "/api/v1/messages/" + strconv.FormatInt(msg.ID, 10) + "/read"

	// The sender cannot
	sender := newMessageRouter(t, handler, "doctor-1", models.RoleDoctor)
	w, _ := doJSON(t, sender, http.MethodPatch, path, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The recipient can
	recipient := newMessageRouter(t, handler, "patient-1", models.RolePatient)
	w2, _ := doJSON(t, recipient, http.MethodPatch, path, nil)
	require.Equal(t, http.StatusOK, w2.Code)

	var stored models.Message
	require.NoError(t, db.First(&stored, "id = ?", msg.ID).Error)
	assert.True(t, stored.Read)
}
