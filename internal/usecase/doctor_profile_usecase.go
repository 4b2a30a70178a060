package usecase

import (
	"context"
	"errors"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/delivery/http/middleware"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
	"mediconnect/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorProfileUsecase interface {
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	// SearchDoctors is the patient-facing directory: verified, active doctors
	// filtered by city, specialization and name.
	SearchDoctors(ctx context.Context, req *dto.SearchDoctorsRequest) (*dto.DoctorListResponse, error)
	UpdateMyProfile(ctx context.Context, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error)
	// AddQualification submits a degree for admin verification.
	AddQualification(ctx context.Context, req *dto.CreateQualificationRequest) (*dto.QualificationResponse, error)
}

type doctorProfileUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	doctorProfileRepo repository.DoctorProfileRepository
	qualificationRepo repository.QualificationRepository
	cityRepo          repository.CityRepository
	auditService      service.AuditService
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorProfileRepo repository.DoctorProfileRepository,
	qualificationRepo repository.QualificationRepository,
	cityRepo repository.CityRepository,
	auditService service.AuditService,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:                db,
		log:               log,
		doctorProfileRepo: doctorProfileRepo,
		qualificationRepo: qualificationRepo,
		cityRepo:          cityRepo,
		auditService:      auditService,
	}
}

func (u *doctorProfileUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorProfileUsecase) SearchDoctors(ctx context.Context, req *dto.SearchDoctorsRequest) (*dto.DoctorListResponse, error) {
	filter := &entity.DoctorFilter{
		City:           req.City,
		Specialization: req.Specialization,
		Name:           req.Name,
		VerifiedOnly:   true,
	}

	profiles, err := u.doctorProfileRepo.Search(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to search doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *doctorProfileUsecase) UpdateMyProfile(ctx context.Context, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Specialization != "" {
		profile.Specialization = req.Specialization
	}
	if req.Biography != "" {
		profile.Biography = req.Biography
	}
	if req.CityID != nil {
		city, err := u.cityRepo.FindByID(tx, *req.CityID)
		if err != nil {
			return nil, err
		}
		if city == nil {
			return nil, ErrCityNotFound
		}
		profile.CityID = req.CityID
	}
	if req.ConsultationFee != "" {
		fee, err := decimal.NewFromString(req.ConsultationFee)
		if err != nil || fee.IsNegative() {
			return nil, ErrInvalidFee
		}
		profile.ConsultationFee = fee
	}

	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile %s: %+v", doctorID, err)
		return nil, err
	}

	u.auditService.Record(tx, &doctorID, entity.AuditActionProfileUpdate, entity.JSON{
		"doctor_id": doctorID.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorProfileUsecase) AddQualification(ctx context.Context, req *dto.CreateQualificationRequest) (*dto.QualificationResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	qualification := &entity.Qualification{
		DoctorID:    doctorID,
		Degree:      req.Degree,
		Institution: req.Institution,
		Year:        req.Year,
		IsVerified:  false,
	}

	if err := u.qualificationRepo.Create(u.db.WithContext(ctx), qualification); err != nil {
		u.log.Warnf("Failed to create qualification for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.QualificationResponse{
		ID:          qualification.ID,
		Degree:      qualification.Degree,
		Institution: qualification.Institution,
		Year:        qualification.Year,
		IsVerified:  qualification.IsVerified,
	}, nil
}
