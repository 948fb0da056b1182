package converter

import (
	"hospital-frontdesk/internal/delivery/dto"
	"hospital-frontdesk/internal/domain/entity"
)

// BookingSessionToResponse converts a BookingSession entity to its DTO
func BookingSessionToResponse(session *entity.BookingSession) *dto.BookingSessionResponse {
	if session == nil {
		return nil
	}

	return &dto.BookingSessionResponse{
		ID:           session.ID,
		Patient:      PatientToResponse(session.Patient),
		DoctorID:     session.DoctorID,
		Date:         session.Date,
		SelectedTime: session.SelectedTime,
		Slots:        SlotsToResponses(session.Slots),
	}
}
