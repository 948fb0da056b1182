package repository

import (
	"context"

	"hospital-frontdesk/internal/domain/entity"
)

// BookingSessionRepository stores in-progress booking sessions. Sessions are
// ephemeral view state with a TTL, not durable records.
type BookingSessionRepository interface {
	Save(ctx context.Context, session *entity.BookingSession) error
	FindByID(ctx context.Context, id string) (*entity.BookingSession, error)
	Delete(ctx context.Context, id string) error
}
