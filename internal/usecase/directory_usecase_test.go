package usecase

import (
	"context"
	"testing"

	"hospital-frontdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryUsecaseListDoctors(t *testing.T) {
	ctx := context.Background()

	t.Run("returns directory", func(t *testing.T) {
		doctorRepo := &fakeDoctorRepo{doctors: []entity.Doctor{
			{ID: 2, Name: "Ali", Surname: "Kaya", DepartmentID: 3, Department: &entity.Department{ID: 3, Name: "Kardiyoloji"}},
		}}
		u := NewDirectoryUsecase(newTestLogger(), doctorRepo, &fakeDepartmentRepo{})

		doctors := u.ListDoctors(ctx)

		require.Len(t, doctors, 1)
		require.NotNil(t, doctors[0].Department)
		assert.Equal(t, "Kardiyoloji", doctors[0].Department.Name)
	})

	t.Run("load failure degrades to empty list", func(t *testing.T) {
		doctorRepo := &fakeDoctorRepo{doctorsErr: errUpstream}
		u := NewDirectoryUsecase(newTestLogger(), doctorRepo, &fakeDepartmentRepo{})

		doctors := u.ListDoctors(ctx)

		assert.NotNil(t, doctors)
		assert.Empty(t, doctors)
	})
}

func TestDirectoryUsecaseListDepartments(t *testing.T) {
	ctx := context.Background()

	t.Run("load failure degrades to empty list", func(t *testing.T) {
		u := NewDirectoryUsecase(newTestLogger(), &fakeDoctorRepo{}, &fakeDepartmentRepo{err: errUpstream})

		departments := u.ListDepartments(ctx)

		assert.NotNil(t, departments)
		assert.Empty(t, departments)
	})
}

func TestDirectoryUsecaseGetDoctorPage(t *testing.T) {
	ctx := context.Background()

	t.Run("relays remote pagination meta", func(t *testing.T) {
		doctorRepo := &fakeDoctorRepo{page: &entity.Page[entity.Doctor]{
			Items:      []entity.Doctor{{ID: 1, Name: "Ali"}},
			TotalCount: 23,
			PageNumber: 1,
			PageSize:   10,
			TotalPages: 3,
		}}
		u := NewDirectoryUsecase(newTestLogger(), doctorRepo, &fakeDepartmentRepo{})

		page, err := u.GetDoctorPage(ctx, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalPages)
		assert.Len(t, page.Items, 1)
	})

	t.Run("pagination failure is an error, not an empty page", func(t *testing.T) {
		u := NewDirectoryUsecase(newTestLogger(), &fakeDoctorRepo{pageErr: errUpstream}, &fakeDepartmentRepo{})

		_, err := u.GetDoctorPage(ctx, 1, 10)

		assert.ErrorIs(t, err, errUpstream)
	})
}
