package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"hospital-frontdesk/internal/domain/entity"
	domainRepo "hospital-frontdesk/internal/domain/repository"
	"hospital-frontdesk/internal/infrastructure/hospitalapi"
)

type appointmentRepository struct {
	api *hospitalapi.Client
}

func NewAppointmentRepository(api *hospitalapi.Client) domainRepo.AppointmentRepository {
	return &appointmentRepository{api: api}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) (*entity.Appointment, error) {
	var created entity.Appointment
	if err := r.api.Post(ctx, "/Appointment", appointment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *appointmentRepository) FindPageByPatient(ctx context.Context, patientID, pageNumber, pageSize int) (*entity.Page[entity.Appointment], error) {
	query := url.Values{}
	query.Set("PageNumber", strconv.Itoa(pageNumber))
	query.Set("PageSize", strconv.Itoa(pageSize))

	var page entity.Page[entity.Appointment]
	if err := r.api.Get(ctx, fmt.Sprintf("/Appointment/patient/%d", patientID), query, &page); err != nil {
		return nil, err
	}
	page.Normalize()
	return &page, nil
}
