package converter

import (
	"hospital-frontdesk/internal/delivery/dto"
	"hospital-frontdesk/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:         patient.ID,
		NationalID: patient.NationalID,
		Name:       patient.Name,
		Surname:    patient.Surname,
		Phone:      patient.Phone,
		Address:    patient.Address,
	}
}

// RegisterRequestToPatient converts a RegisterPatientRequest DTO to a Patient entity
func RegisterRequestToPatient(req *dto.RegisterPatientRequest) *entity.Patient {
	return &entity.Patient{
		NationalID: req.NationalID,
		Name:       req.Name,
		Surname:    req.Surname,
		Phone:      req.Phone,
		Address:    req.Address,
	}
}
