package entity

// Appointment references a patient and a doctor by their remote identifiers.
// Date uses YYYY-MM-DD, Time uses HH:MM, both as strings on the wire.
type Appointment struct {
	ID        int      `json:"id,omitempty"`
	PatientID int      `json:"patientId"`
	DoctorID  int      `json:"doctorId"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Patient   *Patient `json:"patient,omitempty"`
	Doctor    *Doctor  `json:"doctor,omitempty"`
}
