package dto

// Request DTOs

type RegisterPatientRequest struct {
	NationalID string `json:"tc" validate:"required,len=11,numeric"`
	Name       string `json:"name" validate:"required"`
	Surname    string `json:"surname" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address" validate:"required"`
}

// Response DTOs

type PatientResponse struct {
	ID         int    `json:"id"`
	NationalID string `json:"tc"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}
