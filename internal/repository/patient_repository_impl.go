package repository

import (
	"context"
	"errors"
	"net/http"

	"hospital-frontdesk/internal/domain/entity"
	domainRepo "hospital-frontdesk/internal/domain/repository"
	"hospital-frontdesk/internal/infrastructure/hospitalapi"
)

type patientRepository struct {
	api *hospitalapi.Client
}

func NewPatientRepository(api *hospitalapi.Client) domainRepo.PatientRepository {
	return &patientRepository{api: api}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) (*entity.Patient, error) {
	var created entity.Patient
	if err := r.api.Post(ctx, "/Patient", patient, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// FindByNationalID returns (nil, nil) when no patient carries the given
// national ID; only transport and upstream failures surface as errors.
func (r *patientRepository) FindByNationalID(ctx context.Context, nationalID string) (*entity.Patient, error) {
	var patient entity.Patient
	if err := r.api.Get(ctx, "/Patient/tc/"+nationalID, nil, &patient); err != nil {
		var remoteErr *hospitalapi.RemoteError
		if errors.As(err, &remoteErr) && remoteErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}
