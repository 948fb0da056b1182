package handler

import (
	"encoding/json"
	"net/http"

	"hospital-frontdesk/internal/delivery/dto"
	"hospital-frontdesk/internal/usecase"
	"hospital-frontdesk/pkg/response"
	"hospital-frontdesk/pkg/validator"
)

type DepartmentHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDepartmentHandler(directoryUsecase usecase.DirectoryUsecase, validator *validator.CustomValidator) *DepartmentHandler {
	return &DepartmentHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	department, err := h.directoryUsecase.CreateDepartment(r.Context(), &req)
	if err != nil {
		respondRemoteError(w, err, "Failed to create department")
		return
	}

	response.Success(w, http.StatusCreated, "Department created successfully", department)
}

func (h *DepartmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	departments := h.directoryUsecase.ListDepartments(r.Context())
	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}

func (h *DepartmentHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	departments, err := h.directoryUsecase.GetDepartmentPage(r.Context(), page, limit)
	if err != nil {
		respondRemoteError(w, err, "Failed to get departments")
		return
	}

	meta := &response.Meta{
		Page:       departments.PageNumber,
		Limit:      departments.PageSize,
		Total:      int64(departments.TotalCount),
		TotalPages: departments.TotalPages,
	}

	response.SuccessWithMeta(w, http.StatusOK, "Departments retrieved successfully", departments.Items, meta)
}
