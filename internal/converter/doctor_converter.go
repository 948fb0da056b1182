package converter

import (
	"hospital-frontdesk/internal/delivery/dto"
	"hospital-frontdesk/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:           doctor.ID,
		Name:         doctor.Name,
		Surname:      doctor.Surname,
		DepartmentID: doctor.DepartmentID,
	}

	// Include department info if the remote denormalized it
	if doctor.Department != nil {
		response.Department = DepartmentToResponse(doctor.Department)
	}

	return response
}

// DoctorsToResponses converts a slice of Doctor entities to DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// SlotsToResponses converts a slice of Slot entities to DTOs
func SlotsToResponses(slots []entity.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.SlotResponse{
			ID:   slot.ID,
			Time: slot.Time,
		}
	}
	return responses
}

// DaySlotsToResponses converts a slice of DaySlots entities to DTOs
func DaySlotsToResponses(days []entity.DaySlots) []dto.DaySlotsResponse {
	responses := make([]dto.DaySlotsResponse, len(days))
	for i, day := range days {
		responses[i] = dto.DaySlotsResponse{
			Date:  day.Date,
			Slots: SlotsToResponses(day.Slots),
		}
	}
	return responses
}
