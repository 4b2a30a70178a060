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
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCityNameTaken         = errors.New("city already exists")
	ErrCityInUse             = errors.New("city is referenced by doctor profiles")
	ErrQualificationNotFound = errors.New("qualification not found")
)

// AdminUsecase covers moderation: doctor and qualification verification,
// city management, article publication, patient listing and the audit trail.
type AdminUsecase interface {
	VerifyDoctor(ctx context.Context, doctorID uuid.UUID, verified bool) error
	SetDoctorActive(ctx context.Context, doctorID uuid.UUID, active bool) error
	VerifyQualification(ctx context.Context, qualificationID int64, verified bool) error
	CreateCity(ctx context.Context, req *dto.CityRequest) (*dto.CityResponse, error)
	GetCities(ctx context.Context) (*dto.CityListResponse, error)
	UpdateCity(ctx context.Context, id int, req *dto.CityRequest) (*dto.CityResponse, error)
	DeleteCity(ctx context.Context, id int) error
	SetArticlePublished(ctx context.Context, articleID uuid.UUID, published bool) error
	GetPatients(ctx context.Context) (*dto.PatientListResponse, error)
	GetAuditTrail(ctx context.Context, limit int) (*dto.AuditLogListResponse, error)
}

type adminUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	patientProfileRepo repository.PatientProfileRepository
	qualificationRepo  repository.QualificationRepository
	cityRepo           repository.CityRepository
	articleRepo        repository.ArticleRepository
	auditRepo          repository.AuditLogRepository
	auditService       service.AuditService
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	qualificationRepo repository.QualificationRepository,
	cityRepo repository.CityRepository,
	articleRepo repository.ArticleRepository,
	auditRepo repository.AuditLogRepository,
	auditService service.AuditService,
) AdminUsecase {
	return &adminUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		doctorProfileRepo:  doctorProfileRepo,
		patientProfileRepo: patientProfileRepo,
		qualificationRepo:  qualificationRepo,
		cityRepo:           cityRepo,
		articleRepo:        articleRepo,
		auditRepo:          auditRepo,
		auditService:       auditService,
	}
}

func (u *adminUsecase) VerifyDoctor(ctx context.Context, doctorID uuid.UUID, verified bool) error {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.doctorProfileRepo.SetVerified(tx, doctorID, verified)
	if err != nil {
		u.log.Warnf("Failed to verify doctor %s: %+v", doctorID, err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}

	u.auditService.Record(tx, &adminID, entity.AuditActionDoctorVerify, entity.JSON{
		"doctor_id": doctorID.String(),
		"verified":  verified,
	})

	return tx.Commit().Error
}

func (u *adminUsecase) SetDoctorActive(ctx context.Context, doctorID uuid.UUID, active bool) error {
	affected, err := u.userRepo.SetActive(u.db.WithContext(ctx), doctorID, active)
	if err != nil {
		u.log.Warnf("Failed to set doctor %s active=%t: %+v", doctorID, active, err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}
	return nil
}

func (u *adminUsecase) VerifyQualification(ctx context.Context, qualificationID int64, verified bool) error {
	affected, err := u.qualificationRepo.SetVerified(u.db.WithContext(ctx), qualificationID, verified)
	if err != nil {
		u.log.Warnf("Failed to verify qualification %d: %+v", qualificationID, err)
		return err
	}
	if affected == 0 {
		return ErrQualificationNotFound
	}
	return nil
}

func (u *adminUsecase) CreateCity(ctx context.Context, req *dto.CityRequest) (*dto.CityResponse, error) {
	city := &entity.City{Name: req.Name}

	if err := u.cityRepo.Create(u.db.WithContext(ctx), city); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrCityNameTaken
		}
		u.log.Warnf("Failed to create city: %+v", err)
		return nil, err
	}

	return &dto.CityResponse{ID: city.ID, Name: city.Name}, nil
}

func (u *adminUsecase) GetCities(ctx context.Context) (*dto.CityListResponse, error) {
	cities, err := u.cityRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list cities: %+v", err)
		return nil, err
	}

	responses := make([]dto.CityResponse, len(cities))
	for i, city := range cities {
		responses[i] = dto.CityResponse{ID: city.ID, Name: city.Name}
	}

	return &dto.CityListResponse{Cities: responses, Total: len(responses)}, nil
}

func (u *adminUsecase) UpdateCity(ctx context.Context, id int, req *dto.CityRequest) (*dto.CityResponse, error) {
	city, err := u.cityRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find city %d: %+v", id, err)
		return nil, err
	}
	if city == nil {
		return nil, ErrCityNotFound
	}

	city.Name = req.Name
	if err := u.cityRepo.Update(u.db.WithContext(ctx), city); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrCityNameTaken
		}
		u.log.Warnf("Failed to update city %d: %+v", id, err)
		return nil, err
	}

	return &dto.CityResponse{ID: city.ID, Name: city.Name}, nil
}

func (u *adminUsecase) DeleteCity(ctx context.Context, id int) error {
	affected, err := u.cityRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err, "city") {
			return ErrCityInUse
		}
		u.log.Warnf("Failed to delete city %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrCityNotFound
	}
	return nil
}

func (u *adminUsecase) SetArticlePublished(ctx context.Context, articleID uuid.UUID, published bool) error {
	affected, err := u.articleRepo.SetPublished(u.db.WithContext(ctx), articleID, published)
	if err != nil {
		u.log.Warnf("Failed to set article %s published=%t: %+v", articleID, published, err)
		return err
	}
	if affected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

func (u *adminUsecase) GetPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	profiles, err := u.patientProfileRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientProfilesToResponses(profiles),
		Total:    len(profiles),
	}, nil
}

func (u *adminUsecase) GetAuditTrail(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	logs, err := u.auditRepo.FindRecent(u.db.WithContext(ctx), limit)
	if err != nil {
		u.log.Warnf("Failed to read audit trail: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}
