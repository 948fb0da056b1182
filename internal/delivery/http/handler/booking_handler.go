package handler

import (
	"encoding/json"
	"net/http"

	"hospital-frontdesk/internal/delivery/dto"
	"hospital-frontdesk/internal/usecase"
	"hospital-frontdesk/pkg/response"
	"hospital-frontdesk/pkg/validator"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) Start(w http.ResponseWriter, r *http.Request) {
	session, err := h.bookingUsecase.Start(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to start booking session")
		return
	}

	response.Success(w, http.StatusCreated, "Booking session started", session)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	session, err := h.bookingUsecase.Get(r.Context(), vars["id"])
	if err != nil {
		h.respondError(w, err, "Failed to get booking session")
		return
	}

	response.Success(w, http.StatusOK, "Booking session retrieved successfully", session)
}

func (h *BookingHandler) ResolvePatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.ResolveBookingPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.bookingUsecase.ResolvePatient(r.Context(), vars["id"], req.NationalID)
	if err != nil {
		h.respondError(w, err, "Failed to resolve patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient resolved successfully", session)
}

func (h *BookingHandler) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdateBookingSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.bookingUsecase.UpdateSelection(r.Context(), vars["id"], &req)
	if err != nil {
		h.respondError(w, err, "Failed to update selection")
		return
	}

	response.Success(w, http.StatusOK, "Selection updated successfully", session)
}

func (h *BookingHandler) SelectTime(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.SelectBookingTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.bookingUsecase.SelectTime(r.Context(), vars["id"], req.Time)
	if err != nil {
		h.respondError(w, err, "Failed to select time")
		return
	}

	response.Success(w, http.StatusOK, "Time selected successfully", session)
}

func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	confirmation, err := h.bookingUsecase.Submit(r.Context(), vars["id"])
	if err != nil {
		h.respondError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", confirmation)
}

func (h *BookingHandler) respondError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrSessionNotFound:
		response.NotFound(w, "Booking session not found")
	case usecase.ErrInvalidNationalID, usecase.ErrInvalidDateFormat,
		usecase.ErrPatientNotResolved, usecase.ErrIncompleteSelection,
		usecase.ErrTimeNotAvailable:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case usecase.ErrPatientNotFound:
		response.NotFound(w, "Patient not found")
	default:
		respondRemoteError(w, err, fallback)
	}
}
