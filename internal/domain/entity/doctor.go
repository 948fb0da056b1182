package entity

type Doctor struct {
	ID           int         `json:"id,omitempty"`
	Name         string      `json:"name"`
	Surname      string      `json:"surname"`
	DepartmentID int         `json:"departmentId"`
	Department   *Department `json:"department,omitempty"`
}
