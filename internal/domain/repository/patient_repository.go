package repository

import (
	"context"

	"hospital-frontdesk/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) (*entity.Patient, error)
	FindByNationalID(ctx context.Context, nationalID string) (*entity.Patient, error)
}
