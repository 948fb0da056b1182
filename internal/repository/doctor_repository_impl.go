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

type doctorRepository struct {
	api *hospitalapi.Client
}

func NewDoctorRepository(api *hospitalapi.Client) domainRepo.DoctorRepository {
	return &doctorRepository{api: api}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) (*entity.Doctor, error) {
	var created entity.Doctor
	if err := r.api.Post(ctx, "/Doctor", doctor, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	if err := r.api.Get(ctx, "/Doctor", nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindPage(ctx context.Context, pageNumber, pageSize int) (*entity.Page[entity.Doctor], error) {
	query := url.Values{}
	query.Set("PageNumber", strconv.Itoa(pageNumber))
	query.Set("PageSize", strconv.Itoa(pageSize))

	var page entity.Page[entity.Doctor]
	if err := r.api.Get(ctx, "/Doctor/pagination", query, &page); err != nil {
		return nil, err
	}
	page.Normalize()
	return &page, nil
}

func (r *doctorRepository) FindAvailableSlots(ctx context.Context, doctorID int, date string) ([]entity.Slot, error) {
	query := url.Values{}
	query.Set("date", date)

	var slots []entity.Slot
	if err := r.api.Get(ctx, fmt.Sprintf("/Doctor/%d/available-slots", doctorID), query, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}
