package converter

import (
	"hospital-frontdesk/internal/delivery/dto"
	"hospital-frontdesk/internal/domain/entity"
)

// DepartmentToResponse converts a Department entity to DepartmentResponse DTO
func DepartmentToResponse(department *entity.Department) *dto.DepartmentResponse {
	if department == nil {
		return nil
	}

	return &dto.DepartmentResponse{
		ID:   department.ID,
		Name: department.Name,
	}
}

// DepartmentsToResponses converts a slice of Department entities to DTOs
func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = *DepartmentToResponse(&departments[i])
	}
	return responses
}
