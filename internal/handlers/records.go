package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-portal-server/internal/middleware"
	"hospital-portal-server/internal/models"
	"hospital-portal-server/internal/utils"
)

// MedicalRecordHandler handles treatment record requests.
type MedicalRecordHandler struct {
	DB *gorm.DB
}

// NewMedicalRecordHandler creates a new MedicalRecordHandler.
func NewMedicalRecordHandler(db *gorm.DB) *MedicalRecordHandler {
	return &MedicalRecordHandler{DB: db}
}

// CreateMedicalRecordRequest represents the request body for creating a record.
type CreateMedicalRecordRequest struct {
	PatientID    string `json:"patientId" binding:"required,uuid"`
	Diagnosis    string `json:"diagnosis" binding:"required"`
	Prescription string `json:"prescription"`
	RecordDate   string `json:"recordDate"`
	FollowUpDate string `json:"followUpDate"`
	Notes        string `json:"notes"`
}

// CreateMedicalRecord handles creating a new treatment record. Only
// accessible by doctors; the doctor on the record is always the caller.
func (h *MedicalRecordHandler) CreateMedicalRecord(c *gin.Context) {
	var req CreateMedicalRecordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Doctor ID not found in token")
		return
	}

	// Verify patient exists
	var patient models.User
	if err := h.DB.Where("id = ? AND role = ?", req.PatientID, models.RolePatient).First(&patient).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error verifying patient: "+err.Error())
		}
		return
	}

	recordDate := time.Now()
	if req.RecordDate != "" {
		var err error
		recordDate, err = time.Parse(time.RFC3339, req.RecordDate)
		if err != nil {
			utils.BadRequest(c, "Invalid recordDate format. Use RFC3339 (e.g. 2006-01-02T15:04:05Z)")
			return
		}
	}

	var followUp *time.Time
	if req.FollowUpDate != "" {
		parsed, err := time.Parse("2006-01-02", req.FollowUpDate)
		if err != nil {
			utils.BadRequest(c, "Invalid followUpDate format. Use YYYY-MM-DD")
			return
		}
		followUp = &parsed
	}

	record := models.MedicalRecord{
		PatientID:    req.PatientID,
		DoctorID:     doctorID,
		Diagnosis:    req.Diagnosis,
		Prescription: req.Prescription,
		RecordDate:   recordDate,
		FollowUpDate: followUp,
		Notes:        req.Notes,
	}

	if err := h.DB.Create(&record).Error; err != nil {
		utils.InternalServerError(c, "Failed to create medical record: "+err.Error())
		return
	}

	utils.Created(c, "Medical record created successfully", record)
}

// recordWithDoctor is a record row joined with the treating doctor's name.
type recordWithDoctor struct {
	models.MedicalRecord
	DoctorName     string `json:"doctorName"`
	Specialization string `json:"specialization"`
}

// GetMedicalRecordsForPatient fetches a patient's records, newest visit
// first, with the treating doctor's name attached. Patients see their own;
// doctors and admins may see any patient's.
func (h *MedicalRecordHandler) GetMedicalRecordsForPatient(c *gin.Context) {
	patientID := c.Param("patientId")

	requestingUserID, _ := middleware.GetUserIDFromContext(c)
	requestingRole, _ := middleware.GetUserRoleFromContext(c)

	isSelf := requestingUserID == patientID
	isStaff := requestingRole == models.RoleDoctor || requestingRole == models.RoleAdmin
	if !isSelf && !isStaff {
		utils.Forbidden(c, "You are not authorized to view these medical records")
		return
	}

	var records []recordWithDoctor
	err := h.DB.Model(&models.MedicalRecord{}).
		Select("medical_records.*, CONCAT(users.first_name, ' ', users.last_name) AS doctor_name, users.specialization").
		Joins("JOIN users ON users.id = medical_records.doctor_id").
		Where("medical_records.patient_id = ?", patientID).
		Order("medical_records.record_date DESC").
		Order("medical_records.id DESC").
		Scan(&records).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch medical records: "+err.Error())
		return
	}

	utils.Success(c, "Medical records fetched successfully", records)
}

// GetMedicalRecordByID fetches one record. Patients may read their own,
// the treating doctor theirs, admins any.
func (h *MedicalRecordHandler) GetMedicalRecordByID(c *gin.Context) {
	recordID := c.Param("id")

	var record models.MedicalRecord
	if err := h.DB.First(&record, "id = ?", recordID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Medical record not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	requestingUserID, _ := middleware.GetUserIDFromContext(c)
	requestingRole, _ := middleware.GetUserRoleFromContext(c)

	authorized := requestingRole == models.RoleAdmin ||
		record.PatientID == requestingUserID ||
		record.DoctorID == requestingUserID
	if !authorized {
		utils.Forbidden(c, "You are not authorized to view this medical record")
		return
	}

	utils.Success(c, "Medical record fetched successfully", record)
}

// doctorPatient is a patient row with the date of their latest visit to the
// querying doctor.
type doctorPatient struct {
	models.UserSanitized
	LastVisit time.Time `json:"lastVisit"`
}

// GetMyPatients lists the patients the calling doctor has treated, ordered
// by most recent visit.
func (h *MedicalRecordHandler) GetMyPatients(c *gin.Context) {
	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	type row struct {
		models.User
		LastVisit time.Time
	}
	var rows []row
	err := h.DB.Model(&models.User{}).
		Select("users.*, MAX(medical_records.record_date) AS last_visit").
		Joins("JOIN medical_records ON medical_records.patient_id = users.id").
		Where("medical_records.doctor_id = ?", doctorID).
		Group("users.id").
		Order("last_visit DESC").
		Scan(&rows).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch patients: "+err.Error())
		return
	}

	patients := make([]doctorPatient, len(rows))
	for i, r := range rows {
		patients[i] = doctorPatient{UserSanitized: r.User.Sanitize(), LastVisit: r.LastVisit}
	}

	utils.Success(c, "Patients fetched successfully", patients)
}

// monthlyStat is a month bucket with the number of distinct patients seen.
type monthlyStat struct {
	Month        string `json:"month"`
	PatientCount int64  `json:"patientCount"`
}

// GetMyStats returns the calling doctor's monthly distinct-patient counts
// for the last twelve months with any activity.
func (h *MedicalRecordHandler) GetMyStats(c *gin.Context) {
	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var stats []monthlyStat
	err := h.DB.Model(&models.MedicalRecord{}).
		Select("DATE_FORMAT(record_date, '%Y-%m') AS month, COUNT(DISTINCT patient_id) AS patient_count").
		Where("doctor_id = ?", doctorID).
		Group("month").
		Order("month DESC").
		Limit(12).
		Scan(&stats).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch stats: "+err.Error())
		return
	}

	utils.Success(c, "Stats fetched successfully", stats)
}
