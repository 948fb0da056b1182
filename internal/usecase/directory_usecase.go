package usecase

import (
	"context"

	"hospital-frontdesk/internal/converter"
	"hospital-frontdesk/internal/delivery/dto"
	"hospital-frontdesk/internal/domain/entity"
	"hospital-frontdesk/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// DirectoryUsecase serves the doctor and department selectors. The plain
// list operations return no error on purpose: a directory that fails to load
// degrades to an empty selector instead of blocking the form.
type DirectoryUsecase interface {
	ListDoctors(ctx context.Context) []dto.DoctorResponse
	ListDepartments(ctx context.Context) []dto.DepartmentResponse
	GetDoctorPage(ctx context.Context, pageNumber, pageSize int) (*entity.Page[dto.DoctorResponse], error)
	GetDepartmentPage(ctx context.Context, pageNumber, pageSize int) (*entity.Page[dto.DepartmentResponse], error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
}

type directoryUsecase struct {
	log            *logrus.Logger
	doctorRepo     repository.DoctorRepository
	departmentRepo repository.DepartmentRepository
}

func NewDirectoryUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	departmentRepo repository.DepartmentRepository,
) DirectoryUsecase {
	return &directoryUsecase{
		log:            log,
		doctorRepo:     doctorRepo,
		departmentRepo: departmentRepo,
	}
}

func (u *directoryUsecase) ListDoctors(ctx context.Context) []dto.DoctorResponse {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load doctors, degrading to empty list: %+v", err)
		return []dto.DoctorResponse{}
	}
	return converter.DoctorsToResponses(doctors)
}

func (u *directoryUsecase) ListDepartments(ctx context.Context) []dto.DepartmentResponse {
	departments, err := u.departmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load departments, degrading to empty list: %+v", err)
		return []dto.DepartmentResponse{}
	}
	return converter.DepartmentsToResponses(departments)
}

func (u *directoryUsecase) GetDoctorPage(ctx context.Context, pageNumber, pageSize int) (*entity.Page[dto.DoctorResponse], error) {
	page, err := u.doctorRepo.FindPage(ctx, pageNumber, pageSize)
	if err != nil {
		u.log.Warnf("Failed to load doctor page: %+v", err)
		return nil, err
	}

	return &entity.Page[dto.DoctorResponse]{
		Items:      converter.DoctorsToResponses(page.Items),
		TotalCount: page.TotalCount,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

func (u *directoryUsecase) GetDepartmentPage(ctx context.Context, pageNumber, pageSize int) (*entity.Page[dto.DepartmentResponse], error) {
	page, err := u.departmentRepo.FindPage(ctx, pageNumber, pageSize)
	if err != nil {
		u.log.Warnf("Failed to load department page: %+v", err)
		return nil, err
	}

	return &entity.Page[dto.DepartmentResponse]{
		Items:      converter.DepartmentsToResponses(page.Items),
		TotalCount: page.TotalCount,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

func (u *directoryUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	created, err := u.doctorRepo.Create(ctx, &entity.Doctor{
		Name:         req.Name,
		Surname:      req.Surname,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}
	return converter.DoctorToResponse(created), nil
}

func (u *directoryUsecase) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	created, err := u.departmentRepo.Create(ctx, &entity.Department{Name: req.Name})
	if err != nil {
		u.log.Warnf("Failed to create department: %+v", err)
		return nil, err
	}
	return converter.DepartmentToResponse(created), nil
}
