package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hospital-frontdesk/internal/domain/entity"
	domainRepo "hospital-frontdesk/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const bookingSessionKeyPrefix = "booking:session:"

type bookingSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBookingSessionRepository(client *redis.Client, ttl time.Duration) domainRepo.BookingSessionRepository {
	return &bookingSessionRepository{client: client, ttl: ttl}
}

func (r *bookingSessionRepository) Save(ctx context.Context, session *entity.BookingSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal booking session: %w", err)
	}
	return r.client.Set(ctx, bookingSessionKeyPrefix+session.ID, payload, r.ttl).Err()
}

func (r *bookingSessionRepository) FindByID(ctx context.Context, id string) (*entity.BookingSession, error) {
	payload, err := r.client.Get(ctx, bookingSessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var session entity.BookingSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("unmarshal booking session: %w", err)
	}
	return &session, nil
}

func (r *bookingSessionRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, bookingSessionKeyPrefix+id).Err()
}
