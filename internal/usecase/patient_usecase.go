package usecase

import (
	"context"
	"errors"

	"hospital-frontdesk/internal/converter"
	"hospital-frontdesk/internal/delivery/dto"
	"hospital-frontdesk/internal/domain/entity"
	"hospital-frontdesk/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidNationalID = errors.New("national id must be exactly 11 digits")
	ErrPatientNotFound   = errors.New("patient not found")
)

type PatientUsecase interface {
	Register(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	Lookup(ctx context.Context, nationalID string) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) Register(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	if !validNationalID(req.NationalID) {
		return nil, ErrInvalidNationalID
	}

	created, err := u.patientRepo.Create(ctx, converter.RegisterRequestToPatient(req))
	if err != nil {
		u.log.Warnf("Failed to register patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(created), nil
}

// Lookup resolves a national ID to a patient record. Malformed identifiers
// are rejected here, before any request is issued.
func (u *patientUsecase) Lookup(ctx context.Context, nationalID string) (*dto.PatientResponse, error) {
	if !validNationalID(nationalID) {
		return nil, ErrInvalidNationalID
	}

	patient, err := u.patientRepo.FindByNationalID(ctx, nationalID)
	if err != nil {
		u.log.Warnf("Failed to look up patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func validNationalID(nationalID string) bool {
	if len(nationalID) != entity.NationalIDLength {
		return false
	}
	for _, c := range nationalID {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
