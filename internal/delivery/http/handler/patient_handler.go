package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hospital-frontdesk/internal/delivery/dto"
	"hospital-frontdesk/internal/usecase"
	"hospital-frontdesk/pkg/response"
	"hospital-frontdesk/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// Register handles patient registration
// @Summary Register a new patient
// @Description Register a new patient with the hospital
// @Tags Patients
// @Accept json
// @Produce json
// @Param request body dto.RegisterPatientRequest true "Register Patient Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /patients [post]
func (h *PatientHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidNationalID:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			respondRemoteError(w, err, "Failed to register patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", patient)
}

// Lookup handles patient lookup by national ID
// @Summary Look up a patient
// @Description Resolve a national ID to a patient record
// @Tags Patients
// @Produce json
// @Param tc path string true "National ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/national-id/{tc} [get]
func (h *PatientHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	patient, err := h.patientUsecase.Lookup(r.Context(), vars["tc"])
	if err != nil {
		switch err {
		case usecase.ErrInvalidNationalID:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			respondRemoteError(w, err, "Failed to look up patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// Appointments handles the paginated appointment history of a patient
// @Summary Get patient appointments
// @Description Get a page of the patient's appointments
// @Tags Patients
// @Produce json
// @Param id path int true "Patient ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /patients/{id}/appointments [get]
func (h *PatientHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.Atoi(vars["id"])
	if err != nil || patientID < 1 {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	page, limit := pageParams(r)

	appointments, err := h.bookingUsecase.GetPatientAppointments(r.Context(), patientID, page, limit)
	if err != nil {
		respondRemoteError(w, err, "Failed to get appointments")
		return
	}

	meta := &response.Meta{
		Page:       appointments.PageNumber,
		Limit:      appointments.PageSize,
		Total:      int64(appointments.TotalCount),
		TotalPages: appointments.TotalPages,
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", appointments.Items, meta)
}

func pageParams(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
