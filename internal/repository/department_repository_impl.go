package repository

import (
	"context"
	"net/url"
	"strconv"

	"hospital-frontdesk/internal/domain/entity"
	domainRepo "hospital-frontdesk/internal/domain/repository"
	"hospital-frontdesk/internal/infrastructure/hospitalapi"
)

type departmentRepository struct {
	api *hospitalapi.Client
}

func NewDepartmentRepository(api *hospitalapi.Client) domainRepo.DepartmentRepository {
	return &departmentRepository{api: api}
}

func (r *departmentRepository) Create(ctx context.Context, department *entity.Department) (*entity.Department, error) {
	var created entity.Department
	if err := r.api.Post(ctx, "/Department", department, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *departmentRepository) FindAll(ctx context.Context) ([]entity.Department, error) {
	var departments []entity.Department
	if err := r.api.Get(ctx, "/Department", nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepository) FindPage(ctx context.Context, pageNumber, pageSize int) (*entity.Page[entity.Department], error) {
	query := url.Values{}
	query.Set("PageNumber", strconv.Itoa(pageNumber))
	query.Set("PageSize", strconv.Itoa(pageSize))

	var page entity.Page[entity.Department]
	if err := r.api.Get(ctx, "/Department/pagination", query, &page); err != nil {
		return nil, err
	}
	page.Normalize()
	return &page, nil
}
