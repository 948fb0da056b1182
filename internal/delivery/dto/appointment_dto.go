package dto

type AppointmentResponse struct {
	ID        int             `json:"id"`
	PatientID int             `json:"patientId"`
	DoctorID  int             `json:"doctorId"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	Doctor    *DoctorResponse `json:"doctor,omitempty"`
}
