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

type DoctorHandler struct {
	directoryUsecase    usecase.DirectoryUsecase
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewDoctorHandler(directoryUsecase usecase.DirectoryUsecase, availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase:    directoryUsecase,
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.directoryUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		respondRemoteError(w, err, "Failed to create doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

// GetAll returns the doctor directory. A directory that cannot be loaded is
// served as an empty list rather than an error.
func (h *DoctorHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	doctors := h.directoryUsecase.ListDoctors(r.Context())
	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	doctors, err := h.directoryUsecase.GetDoctorPage(r.Context(), page, limit)
	if err != nil {
		respondRemoteError(w, err, "Failed to get doctors")
		return
	}

	meta := &response.Meta{
		Page:       doctors.PageNumber,
		Limit:      doctors.PageSize,
		Total:      int64(doctors.TotalCount),
		TotalPages: doctors.TotalPages,
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", doctors.Items, meta)
}

// GetSlots returns the open slots of a doctor on a given date
// @Summary Get available slots
// @Description Get the open slots of a doctor on a date
// @Tags Doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctors/{id}/slots [get]
func (h *DoctorHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	slots, err := h.availabilityUsecase.GetSlots(r.Context(), doctorID, r.URL.Query().Get("date"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidDoctorID, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			respondRemoteError(w, err, "Failed to get slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

// GetNearestSlots runs the 7-day forward availability probe for a doctor
// @Summary Find nearest available slots
// @Description Probe the next 7 days and list the days with open slots
// @Tags Doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctors/{id}/nearest-slots [get]
func (h *DoctorHandler) GetNearestSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	days, err := h.availabilityUsecase.FindNearest(r.Context(), doctorID)
	if err != nil {
		if err == usecase.ErrInvalidDoctorID {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		respondRemoteError(w, err, "Failed to find available slots")
		return
	}

	response.Success(w, http.StatusOK, "Available days retrieved successfully", days)
}
