package care

import (
	"strings"

	"gorm.io/gorm"

	"hospital-portal-server/internal/models"
)

// Service is the coordination facade the handlers call. It composes the
// resolver, the thread store and the call queue; it holds no state of its
// own.
//
// Unclaimed calls deliberately stay pending forever: there is no expiry or
// cancelled state in this lifecycle.
type Service struct {
	Resolver *Resolver
	Threads  *ThreadStore
	Calls    *CallQueue
}

// NewService creates the facade with all three components sharing one
// database handle.
func NewService(db *gorm.DB) *Service {
	return &Service{
		Resolver: NewResolver(db),
		Threads:  NewThreadStore(db),
		Calls:    NewCallQueue(db),
	}
}

// SendPatientMessage appends a message from the patient to their active
// doctor. The doctor is inferred from treatment history; a patient with no
// history cannot originate a thread, so ErrNoActiveDoctor means nothing was
// stored. Empty content is rejected before the resolver runs so a no-op
// send never touches the store at all.
func (s *Service) SendPatientMessage(patientUserID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	doctorID, err := s.Resolver.ResolveActiveDoctor(patientUserID)
	if err != nil {
		return nil, err
	}
	return s.Threads.Append(patientUserID, doctorID, patientUserID, doctorID, content)
}

// SendDoctorMessage appends a message from the doctor to an explicit
// patient. Doctors pick from their own patient list, so no resolution step
// exists on this path.
func (s *Service) SendDoctorMessage(doctorUserID, patientID, content string) (*models.Message, error) {
	return s.Threads.Append(patientID, doctorUserID, doctorUserID, patientID, content)
}

// ListThread returns the (patientID, doctorID) thread in send order.
func (s *Service) ListThread(patientID, doctorID string) ([]models.Message, error) {
	return s.Threads.ListThread(patientID, doctorID)
}

// MarkMessageRead sets the read flag; only the recipient may.
func (s *Service) MarkMessageRead(messageID int64, readerID string) error {
	return s.Threads.MarkRead(messageID, readerID)
}

// RequestNurse opens a pending nurse call for the doctor.
func (s *Service) RequestNurse(doctorID string) (*models.NurseCallRequest, error) {
	return s.Calls.Create(doctorID)
}

// AcceptCall claims the call for the nurse. Exactly one nurse ever wins a
// given call; losers get ErrAlreadyClaimed.
func (s *Service) AcceptCall(nurseID string, callID int64) error {
	return s.Calls.Claim(callID, nurseID)
}

// ListOpenCalls returns pending calls plus those this nurse has accepted.
func (s *Service) ListOpenCalls(nurseID string) ([]models.NurseCallRequest, error) {
	return s.Calls.ListOpen(nurseID)
}
