package repository

import (
	"context"

	"hospital-frontdesk/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) (*entity.Appointment, error)
	FindPageByPatient(ctx context.Context, patientID, pageNumber, pageSize int) (*entity.Page[entity.Appointment], error)
}
