package repository

import (
	"context"

	"hospital-frontdesk/internal/domain/entity"
)

type DepartmentRepository interface {
	Create(ctx context.Context, department *entity.Department) (*entity.Department, error)
	FindAll(ctx context.Context) ([]entity.Department, error)
	FindPage(ctx context.Context, pageNumber, pageSize int) (*entity.Page[entity.Department], error)
}
