package dto

type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required"`
}

type DepartmentResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
