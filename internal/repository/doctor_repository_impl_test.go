package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-frontdesk/internal/infrastructure/hospitalapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorRepositoryFindAvailableSlots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Doctor/2/available-slots", r.URL.Path)
		assert.Equal(t, "2024-06-10", r.URL.Query().Get("date"))
		w.Write([]byte(`{"success":true,"data":[{"id":1,"time":"09:00"},{"id":2,"time":"09:30"}]}`))
	}))
	defer server.Close()

	repo := NewDoctorRepository(hospitalapi.NewClient(server.URL))

	slots, err := repo.FindAvailableSlots(context.Background(), 2, "2024-06-10")

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "09:30", slots[1].Time)
}

func TestDoctorRepositoryFindPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Doctor/pagination", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("PageNumber"))
		assert.Equal(t, "10", r.URL.Query().Get("PageSize"))
		w.Write([]byte(`{"success":true,"data":{"items":[{"id":1,"name":"Ali","surname":"Kaya","departmentId":3}],"totalCount":23,"pageNumber":2,"pageSize":10}}`))
	}))
	defer server.Close()

	repo := NewDoctorRepository(hospitalapi.NewClient(server.URL))

	page, err := repo.FindPage(context.Background(), 2, 10)

	require.NoError(t, err)
	assert.Equal(t, 23, page.TotalCount)
	// totalPages omitted by the remote is recomputed
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Ali", page.Items[0].Name)
}

func TestDoctorRepositoryFindAll(t *testing.T) {
	t.Run("decodes doctor list with departments", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/Doctor", r.URL.Path)
			w.Write([]byte(`{"success":true,"data":[{"id":2,"name":"Ali","surname":"Kaya","departmentId":3,"department":{"id":3,"name":"Kardiyoloji"}}]}`))
		}))
		defer server.Close()

		repo := NewDoctorRepository(hospitalapi.NewClient(server.URL))

		doctors, err := repo.FindAll(context.Background())

		require.NoError(t, err)
		require.Len(t, doctors, 1)
		require.NotNil(t, doctors[0].Department)
		assert.Equal(t, "Kardiyoloji", doctors[0].Department.Name)
	})

	t.Run("propagates remote failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		repo := NewDoctorRepository(hospitalapi.NewClient(server.URL))

		_, err := repo.FindAll(context.Background())
		require.Error(t, err)
	})
}
