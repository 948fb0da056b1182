package dto

type CreateDoctorRequest struct {
	Name         string `json:"name" validate:"required"`
	Surname      string `json:"surname" validate:"required"`
	DepartmentID int    `json:"departmentId" validate:"required,min=1"`
}

type DoctorResponse struct {
	ID           int                 `json:"id"`
	Name         string              `json:"name"`
	Surname      string              `json:"surname"`
	DepartmentID int                 `json:"departmentId"`
	Department   *DepartmentResponse `json:"department,omitempty"`
}

type SlotResponse struct {
	ID   int    `json:"id"`
	Time string `json:"time"`
}

type DaySlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}
