package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-frontdesk/internal/converter"
	"hospital-frontdesk/internal/delivery/dto"
	"hospital-frontdesk/internal/domain/entity"
	"hospital-frontdesk/internal/domain/repository"
	"hospital-frontdesk/internal/infrastructure/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionNotFound     = errors.New("booking session not found")
	ErrPatientNotResolved  = errors.New("a patient must be resolved before submitting")
	ErrIncompleteSelection = errors.New("doctor, date and time must all be selected")
	ErrTimeNotAvailable    = errors.New("selected time is not among the available slots")
)

const (
	// redirectTarget and redirectDelay describe where the caller should
	// navigate after a confirmed booking and how long to show the
	// confirmation first.
	redirectTarget = "/patients/search"
	redirectDelay  = 2 * time.Second
)

type BookingUsecase interface {
	Start(ctx context.Context) (*dto.BookingSessionResponse, error)
	Get(ctx context.Context, sessionID string) (*dto.BookingSessionResponse, error)
	ResolvePatient(ctx context.Context, sessionID, nationalID string) (*dto.BookingSessionResponse, error)
	UpdateSelection(ctx context.Context, sessionID string, req *dto.UpdateBookingSelectionRequest) (*dto.BookingSessionResponse, error)
	SelectTime(ctx context.Context, sessionID, slotTime string) (*dto.BookingSessionResponse, error)
	Submit(ctx context.Context, sessionID string) (*dto.BookingConfirmationResponse, error)
	GetPatientAppointments(ctx context.Context, patientID, pageNumber, pageSize int) (*entity.Page[dto.AppointmentResponse], error)
}

type bookingUsecase struct {
	log             *logrus.Logger
	sessionRepo     repository.BookingSessionRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	metrics         *metrics.Metrics
}

func NewBookingUsecase(
	log *logrus.Logger,
	sessionRepo repository.BookingSessionRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	m *metrics.Metrics,
) BookingUsecase {
	return &bookingUsecase{
		log:             log,
		sessionRepo:     sessionRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		metrics:         m,
	}
}

func (u *bookingUsecase) Start(ctx context.Context) (*dto.BookingSessionResponse, error) {
	now := time.Now()
	session := &entity.BookingSession{
		ID:        uuid.NewString(),
		Slots:     []entity.Slot{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to save booking session: %+v", err)
		return nil, err
	}

	return converter.BookingSessionToResponse(session), nil
}

func (u *bookingUsecase) Get(ctx context.Context, sessionID string) (*dto.BookingSessionResponse, error) {
	session, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return converter.BookingSessionToResponse(session), nil
}

func (u *bookingUsecase) ResolvePatient(ctx context.Context, sessionID, nationalID string) (*dto.BookingSessionResponse, error) {
	if !validNationalID(nationalID) {
		return nil, ErrInvalidNationalID
	}

	session, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByNationalID(ctx, nationalID)
	if err != nil {
		u.log.Warnf("Failed to resolve patient for booking: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	session.Patient = patient
	if err := u.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return converter.BookingSessionToResponse(session), nil
}

// UpdateSelection replaces the session's doctor/date selection and reloads
// the slot list for it. Each change supersedes the previous fetch; a slot
// list from an older fetch is discarded on arrival. A reload failure leaves
// the list empty, which in turn clears any stale selected time.
func (u *bookingUsecase) UpdateSelection(ctx context.Context, sessionID string, req *dto.UpdateBookingSelectionRequest) (*dto.BookingSessionResponse, error) {
	if req.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			return nil, ErrInvalidDateFormat
		}
	}

	session, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.DoctorID = req.DoctorID
	session.Date = req.Date
	seq := session.NextSlotSeq()

	slots := []entity.Slot{}
	if session.DoctorID > 0 && session.Date != "" {
		fetched, err := u.doctorRepo.FindAvailableSlots(ctx, session.DoctorID, session.Date)
		if err != nil {
			u.log.Warnf("Failed to load slots for booking session %s: %+v", session.ID, err)
		} else {
			slots = fetched
		}
	}

	if !session.ApplySlotResult(seq, slots) {
		u.log.Debugf("Dropping superseded slot result for booking session %s", session.ID)
	}

	if err := u.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return converter.BookingSessionToResponse(session), nil
}

func (u *bookingUsecase) SelectTime(ctx context.Context, sessionID, slotTime string) (*dto.BookingSessionResponse, error) {
	session, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.HasSlotTime(slotTime) {
		return nil, ErrTimeNotAvailable
	}

	session.SelectedTime = slotTime
	if err := u.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return converter.BookingSessionToResponse(session), nil
}

// Submit creates the appointment from the session state. The resolved
// patient and a complete doctor/date/time selection are required before any
// request is issued; on failure the session is left untouched so the caller
// can retry without re-entering anything.
func (u *bookingUsecase) Submit(ctx context.Context, sessionID string) (*dto.BookingConfirmationResponse, error) {
	session, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Patient == nil {
		return nil, ErrPatientNotResolved
	}
	if session.DoctorID < 1 || session.Date == "" || session.SelectedTime == "" {
		return nil, ErrIncompleteSelection
	}

	created, err := u.appointmentRepo.Create(ctx, &entity.Appointment{
		PatientID: session.Patient.ID,
		DoctorID:  session.DoctorID,
		Date:      session.Date,
		Time:      session.SelectedTime,
	})
	if err != nil {
		u.metrics.ObserveBooking("failure")
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.metrics.ObserveBooking("success")
	if err := u.sessionRepo.Delete(ctx, session.ID); err != nil {
		u.log.Warnf("Failed to delete booking session %s: %+v", session.ID, err)
	}

	return &dto.BookingConfirmationResponse{
		Appointment:     converter.AppointmentToResponse(created),
		RedirectTo:      redirectTarget,
		RedirectAfterMs: int(redirectDelay.Milliseconds()),
	}, nil
}

func (u *bookingUsecase) GetPatientAppointments(ctx context.Context, patientID, pageNumber, pageSize int) (*entity.Page[dto.AppointmentResponse], error) {
	page, err := u.appointmentRepo.FindPageByPatient(ctx, patientID, pageNumber, pageSize)
	if err != nil {
		u.log.Warnf("Failed to load appointments for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &entity.Page[dto.AppointmentResponse]{
		Items:      converter.AppointmentsToResponses(page.Items),
		TotalCount: page.TotalCount,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

func (u *bookingUsecase) loadSession(ctx context.Context, sessionID string) (*entity.BookingSession, error) {
	session, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		u.log.Warnf("Failed to load booking session %s: %+v", sessionID, err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (u *bookingUsecase) saveSession(ctx context.Context, session *entity.BookingSession) error {
	session.UpdatedAt = time.Now()
	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to save booking session %s: %+v", session.ID, err)
		return err
	}
	return nil
}
