package dto

// Request DTOs

type ResolveBookingPatientRequest struct {
	NationalID string `json:"tc" validate:"required,len=11,numeric"`
}

// UpdateBookingSelectionRequest replaces the session's doctor/date selection.
// Zero values clear the corresponding selection.
type UpdateBookingSelectionRequest struct {
	DoctorID int    `json:"doctorId" validate:"min=0"`
	Date     string `json:"date"`
}

type SelectBookingTimeRequest struct {
	Time string `json:"time" validate:"required"`
}

// Response DTOs

type BookingSessionResponse struct {
	ID           string           `json:"id"`
	Patient      *PatientResponse `json:"patient,omitempty"`
	DoctorID     int              `json:"doctorId,omitempty"`
	Date         string           `json:"date,omitempty"`
	SelectedTime string           `json:"selectedTime,omitempty"`
	Slots        []SlotResponse   `json:"slots"`
}

// BookingConfirmationResponse tells the caller where to navigate after a
// successful submission and how long to show the confirmation first.
type BookingConfirmationResponse struct {
	Appointment     *AppointmentResponse `json:"appointment"`
	RedirectTo      string               `json:"redirectTo"`
	RedirectAfterMs int                  `json:"redirectAfterMs"`
}
