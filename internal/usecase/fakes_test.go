package usecase

import (
	"context"
	"errors"
	"io"

	"hospital-frontdesk/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var errUpstream = errors.New("upstream unavailable")

type fakePatientRepo struct {
	patient   *entity.Patient
	err       error
	created   *entity.Patient
	createErr error
	calls     int
}

func (f *fakePatientRepo) Create(ctx context.Context, patient *entity.Patient) (*entity.Patient, error) {
	f.calls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	return patient, nil
}

func (f *fakePatientRepo) FindByNationalID(ctx context.Context, nationalID string) (*entity.Patient, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.patient, nil
}

type fakeDoctorRepo struct {
	doctors      []entity.Doctor
	doctorsErr   error
	page         *entity.Page[entity.Doctor]
	pageErr      error
	slotsByDate  map[string][]entity.Slot
	failAllSlots bool
	slotCalls    []string
}

func (f *fakeDoctorRepo) Create(ctx context.Context, doctor *entity.Doctor) (*entity.Doctor, error) {
	return doctor, nil
}

func (f *fakeDoctorRepo) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	if f.doctorsErr != nil {
		return nil, f.doctorsErr
	}
	return f.doctors, nil
}

func (f *fakeDoctorRepo) FindPage(ctx context.Context, pageNumber, pageSize int) (*entity.Page[entity.Doctor], error) {
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	return f.page, nil
}

func (f *fakeDoctorRepo) FindAvailableSlots(ctx context.Context, doctorID int, date string) ([]entity.Slot, error) {
	f.slotCalls = append(f.slotCalls, date)
	if f.failAllSlots {
		return nil, errUpstream
	}
	return f.slotsByDate[date], nil
}

type fakeDepartmentRepo struct {
	departments []entity.Department
	err         error
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, department *entity.Department) (*entity.Department, error) {
	return department, nil
}

func (f *fakeDepartmentRepo) FindAll(ctx context.Context) ([]entity.Department, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.departments, nil
}

func (f *fakeDepartmentRepo) FindPage(ctx context.Context, pageNumber, pageSize int) (*entity.Page[entity.Department], error) {
	return &entity.Page[entity.Department]{Items: f.departments}, nil
}

type fakeAppointmentRepo struct {
	created   *entity.Appointment
	createErr error
	page      *entity.Page[entity.Appointment]
	pageErr   error
	calls     int
	lastInput *entity.Appointment
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) (*entity.Appointment, error) {
	f.calls++
	f.lastInput = appointment
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	return appointment, nil
}

func (f *fakeAppointmentRepo) FindPageByPatient(ctx context.Context, patientID, pageNumber, pageSize int) (*entity.Page[entity.Appointment], error) {
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	return f.page, nil
}

// memSessionRepo keeps booking sessions in a map; the redis-backed
// implementation has its own tests.
type memSessionRepo struct {
	sessions map[string]entity.BookingSession
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]entity.BookingSession)}
}

func (m *memSessionRepo) Save(ctx context.Context, session *entity.BookingSession) error {
	m.sessions[session.ID] = *session
	return nil
}

func (m *memSessionRepo) FindByID(ctx context.Context, id string) (*entity.BookingSession, error) {
	session, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (m *memSessionRepo) Delete(ctx context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}
