package usecase

import (
	"context"
	"testing"

	"hospital-frontdesk/internal/delivery/dto"
	"hospital-frontdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingUsecase(sessions *memSessionRepo, patients *fakePatientRepo, doctors *fakeDoctorRepo, appointments *fakeAppointmentRepo) BookingUsecase {
	return NewBookingUsecase(newTestLogger(), sessions, patients, doctors, appointments, nil)
}

func TestBookingUsecaseSubmitGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("submit without resolved patient is rejected before any network call", func(t *testing.T) {
		sessions := newMemSessionRepo()
		appointments := &fakeAppointmentRepo{}
		u := newBookingUsecase(sessions, &fakePatientRepo{}, &fakeDoctorRepo{}, appointments)

		session, err := u.Start(ctx)
		require.NoError(t, err)

		_, err = u.Submit(ctx, session.ID)

		assert.ErrorIs(t, err, ErrPatientNotResolved)
		assert.Zero(t, appointments.calls)
	})

	t.Run("submit with incomplete selection is rejected before any network call", func(t *testing.T) {
		sessions := newMemSessionRepo()
		appointments := &fakeAppointmentRepo{}
		patients := &fakePatientRepo{patient: &entity.Patient{ID: 7, NationalID: "12345678901"}}
		u := newBookingUsecase(sessions, patients, &fakeDoctorRepo{}, appointments)

		session, err := u.Start(ctx)
		require.NoError(t, err)
		_, err = u.ResolvePatient(ctx, session.ID, "12345678901")
		require.NoError(t, err)

		_, err = u.Submit(ctx, session.ID)

		assert.ErrorIs(t, err, ErrIncompleteSelection)
		assert.Zero(t, appointments.calls)
	})

	t.Run("unknown session", func(t *testing.T) {
		u := newBookingUsecase(newMemSessionRepo(), &fakePatientRepo{}, &fakeDoctorRepo{}, &fakeAppointmentRepo{})

		_, err := u.Submit(ctx, "missing")

		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestBookingUsecaseSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("selection change reloads slots", func(t *testing.T) {
		sessions := newMemSessionRepo()
		doctors := &fakeDoctorRepo{slotsByDate: map[string][]entity.Slot{
			"2024-06-10": {{ID: 1, Time: "09:00"}, {ID: 2, Time: "09:30"}},
		}}
		u := newBookingUsecase(sessions, &fakePatientRepo{}, doctors, &fakeAppointmentRepo{})

		session, err := u.Start(ctx)
		require.NoError(t, err)

		updated, err := u.UpdateSelection(ctx, session.ID, &dto.UpdateBookingSelectionRequest{DoctorID: 2, Date: "2024-06-10"})

		require.NoError(t, err)
		require.Len(t, updated.Slots, 2)
		assert.Equal(t, "09:00", updated.Slots[0].Time)
	})

	t.Run("date change clears a selected time missing from the new list", func(t *testing.T) {
		sessions := newMemSessionRepo()
		doctors := &fakeDoctorRepo{slotsByDate: map[string][]entity.Slot{
			"2024-06-10": {{ID: 1, Time: "09:00"}},
			"2024-06-11": {{ID: 5, Time: "14:00"}},
		}}
		u := newBookingUsecase(sessions, &fakePatientRepo{}, doctors, &fakeAppointmentRepo{})

		session, err := u.Start(ctx)
		require.NoError(t, err)
		_, err = u.UpdateSelection(ctx, session.ID, &dto.UpdateBookingSelectionRequest{DoctorID: 2, Date: "2024-06-10"})
		require.NoError(t, err)
		_, err = u.SelectTime(ctx, session.ID, "09:00")
		require.NoError(t, err)

		updated, err := u.UpdateSelection(ctx, session.ID, &dto.UpdateBookingSelectionRequest{DoctorID: 2, Date: "2024-06-11"})

		require.NoError(t, err)
		assert.Empty(t, updated.SelectedTime)
		require.Len(t, updated.Slots, 1)
		assert.Equal(t, "14:00", updated.Slots[0].Time)
	})

	t.Run("date change keeps a selected time still in the new list", func(t *testing.T) {
		sessions := newMemSessionRepo()
		doctors := &fakeDoctorRepo{slotsByDate: map[string][]entity.Slot{
			"2024-06-10": {{ID: 1, Time: "09:00"}},
			"2024-06-11": {{ID: 6, Time: "09:00"}},
		}}
		u := newBookingUsecase(sessions, &fakePatientRepo{}, doctors, &fakeAppointmentRepo{})

		session, err := u.Start(ctx)
		require.NoError(t, err)
		_, err = u.UpdateSelection(ctx, session.ID, &dto.UpdateBookingSelectionRequest{DoctorID: 2, Date: "2024-06-10"})
		require.NoError(t, err)
		_, err = u.SelectTime(ctx, session.ID, "09:00")
		require.NoError(t, err)

		updated, err := u.UpdateSelection(ctx, session.ID, &dto.UpdateBookingSelectionRequest{DoctorID: 2, Date: "2024-06-11"})

		require.NoError(t, err)
		assert.Equal(t, "09:00", updated.SelectedTime)
	})

	t.Run("slot reload failure empties the list and clears the time", func(t *testing.T) {
		sessions := newMemSessionRepo()
		doctors := &fakeDoctorRepo{slotsByDate: map[string][]entity.Slot{
			"2024-06-10": {{ID: 1, Time: "09:00"}},
		}}
		u := newBookingUsecase(sessions, &fakePatientRepo{}, doctors, &fakeAppointmentRepo{})

		session, err := u.Start(ctx)
		require.NoError(t, err)
		_, err = u.UpdateSelection(ctx, session.ID, &dto.UpdateBookingSelectionRequest{DoctorID: 2, Date: "2024-06-10"})
		require.NoError(t, err)
		_, err = u.SelectTime(ctx, session.ID, "09:00")
		require.NoError(t, err)

		doctors.failAllSlots = true
		updated, err := u.UpdateSelection(ctx, session.ID, &dto.UpdateBookingSelectionRequest{DoctorID: 2, Date: "2024-06-11"})

		require.NoError(t, err)
		assert.Empty(t, updated.Slots)
		assert.Empty(t, updated.SelectedTime)
	})

	t.Run("selecting a time outside the slot list is rejected", func(t *testing.T) {
		sessions := newMemSessionRepo()
		doctors := &fakeDoctorRepo{slotsByDate: map[string][]entity.Slot{
			"2024-06-10": {{ID: 1, Time: "09:00"}},
		}}
		u := newBookingUsecase(sessions, &fakePatientRepo{}, doctors, &fakeAppointmentRepo{})

		session, err := u.Start(ctx)
		require.NoError(t, err)
		_, err = u.UpdateSelection(ctx, session.ID, &dto.UpdateBookingSelectionRequest{DoctorID: 2, Date: "2024-06-10"})
		require.NoError(t, err)

		_, err = u.SelectTime(ctx, session.ID, "23:00")

		assert.ErrorIs(t, err, ErrTimeNotAvailable)
	})
}

// Full walk through the booking workflow: resolve patient, pick doctor and
// date, pick a slot, submit, get the redirect hint.
func TestBookingUsecaseScenario(t *testing.T) {
	ctx := context.Background()

	sessions := newMemSessionRepo()
	patients := &fakePatientRepo{
		patient: &entity.Patient{ID: 7, NationalID: "12345678901", Name: "Ayşe", Surname: "Yılmaz"},
	}
	doctors := &fakeDoctorRepo{slotsByDate: map[string][]entity.Slot{
		"2024-06-10": {{ID: 1, Time: "09:00"}, {ID: 2, Time: "09:30"}},
	}}
	appointments := &fakeAppointmentRepo{
		created: &entity.Appointment{ID: 99, PatientID: 7, DoctorID: 2, Date: "2024-06-10", Time: "09:00"},
	}
	u := newBookingUsecase(sessions, patients, doctors, appointments)

	session, err := u.Start(ctx)
	require.NoError(t, err)

	resolved, err := u.ResolvePatient(ctx, session.ID, "12345678901")
	require.NoError(t, err)
	require.NotNil(t, resolved.Patient)
	assert.Equal(t, "Ayşe", resolved.Patient.Name)

	selected, err := u.UpdateSelection(ctx, session.ID, &dto.UpdateBookingSelectionRequest{DoctorID: 2, Date: "2024-06-10"})
	require.NoError(t, err)
	require.Len(t, selected.Slots, 2)
	assert.Equal(t, "09:00", selected.Slots[0].Time)
	assert.Equal(t, "09:30", selected.Slots[1].Time)

	_, err = u.SelectTime(ctx, session.ID, "09:00")
	require.NoError(t, err)

	confirmation, err := u.Submit(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, 99, confirmation.Appointment.ID)
	assert.Equal(t, "/patients/search", confirmation.RedirectTo)
	assert.Equal(t, 2000, confirmation.RedirectAfterMs)

	require.NotNil(t, appointments.lastInput)
	assert.Equal(t, 7, appointments.lastInput.PatientID)
	assert.Equal(t, 2, appointments.lastInput.DoctorID)
	assert.Equal(t, "2024-06-10", appointments.lastInput.Date)
	assert.Equal(t, "09:00", appointments.lastInput.Time)

	// session is gone after a confirmed booking
	_, err = u.Get(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
