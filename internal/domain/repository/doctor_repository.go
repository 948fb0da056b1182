package repository

import (
	"context"

	"hospital-frontdesk/internal/domain/entity"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) (*entity.Doctor, error)
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindPage(ctx context.Context, pageNumber, pageSize int) (*entity.Page[entity.Doctor], error)
	FindAvailableSlots(ctx context.Context, doctorID int, date string) ([]entity.Slot, error)
}
