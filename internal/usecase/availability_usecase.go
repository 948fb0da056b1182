package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-frontdesk/internal/converter"
	"hospital-frontdesk/internal/delivery/dto"
	"hospital-frontdesk/internal/domain/entity"
	"hospital-frontdesk/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDoctorID   = errors.New("doctor id is required")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

// nearestProbeDays is the forward window of the nearest-slot search: today
// plus the six following days.
const nearestProbeDays = 7

type AvailabilityUsecase interface {
	GetSlots(ctx context.Context, doctorID int, date string) ([]dto.SlotResponse, error)
	FindNearest(ctx context.Context, doctorID int) ([]dto.DaySlotsResponse, error)
}

type availabilityUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	now        func() time.Time
}

func NewAvailabilityUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository) AvailabilityUsecase {
	return &availabilityUsecase{
		log:        log,
		doctorRepo: doctorRepo,
		now:        time.Now,
	}
}

func (u *availabilityUsecase) GetSlots(ctx context.Context, doctorID int, date string) ([]dto.SlotResponse, error) {
	if doctorID < 1 {
		return nil, ErrInvalidDoctorID
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDateFormat
	}

	slots, err := u.doctorRepo.FindAvailableSlots(ctx, doctorID, date)
	if err != nil {
		u.log.Warnf("Failed to load slots for doctor %d on %s: %+v", doctorID, date, err)
		return nil, err
	}
	return converter.SlotsToResponses(slots), nil
}

// FindNearest probes the next seven calendar days one at a time and collects
// the days that have at least one open slot, in chronological order. A day
// whose probe fails is skipped exactly like a day with no slots, so an empty
// result can mean either a fully booked week or an unreachable upstream;
// callers cannot tell the two apart.
func (u *availabilityUsecase) FindNearest(ctx context.Context, doctorID int) ([]dto.DaySlotsResponse, error) {
	if doctorID < 1 {
		return nil, ErrInvalidDoctorID
	}

	today := u.now()
	days := make([]entity.DaySlots, 0, nearestProbeDays)
	for i := 0; i < nearestProbeDays; i++ {
		date := today.AddDate(0, 0, i).Format("2006-01-02")

		slots, err := u.doctorRepo.FindAvailableSlots(ctx, doctorID, date)
		if err != nil {
			u.log.Debugf("Skipping day %s in nearest-slot search: %+v", date, err)
			continue
		}
		if len(slots) == 0 {
			continue
		}

		days = append(days, entity.DaySlots{Date: date, Slots: slots})
	}

	return converter.DaySlotsToResponses(days), nil
}
