package usecase

import (
	"context"

	"blood-donor-registry/internal/converter"
	"blood-donor-registry/internal/delivery/dto"
	"blood-donor-registry/internal/delivery/http/middleware"
	"blood-donor-registry/internal/domain/entity"
	"blood-donor-registry/internal/domain/repository"
	"blood-donor-registry/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=donor_registration_usecase.go -destination=mocks/donor_registration_usecase_mock.go -package=mocks

type DonorRegistrationUsecase interface {
	Register(ctx context.Context, req *dto.RegisterDonorRequest) (*dto.DonorResponse, error)
}

type donorRegistrationUsecase struct {
	log            *logrus.Logger
	donorRepo      repository.DonorRepository
	directoryCache repository.DirectoryCache
	metrics        *metrics.Metrics
}

func NewDonorRegistrationUsecase(
	log *logrus.Logger,
	donorRepo repository.DonorRepository,
	directoryCache repository.DirectoryCache,
	metrics *metrics.Metrics,
) DonorRegistrationUsecase {
	return &donorRegistrationUsecase{
		log:            log,
		donorRepo:      donorRepo,
		directoryCache: directoryCache,
		metrics:        metrics,
	}
}

// Register inserts a new donor profile. Blood group and availability are
// stored in canonical case; a unique violation is reported per field.
func (u *donorRegistrationUsecase) Register(ctx context.Context, req *dto.RegisterDonorRequest) (*dto.DonorResponse, error) {
	bloodGroup, availability, err := normalizeEnums(req.BloodGroup, req.Availability)
	if err != nil {
		return nil, err
	}

	if !middleware.CanActOn(ctx, req.Email) {
		return nil, ErrForbidden
	}

	donor := &entity.Donor{
		Name:         req.Name,
		Mobile:       req.Mobile,
		Age:          req.Age,
		BloodGroup:   bloodGroup,
		Availability: availability,
		Email:        req.Email,
	}

	if err := u.donorRepo.Create(ctx, donor); err != nil {
		if conflict := translateUniqueViolation(err); conflict != nil {
			u.metrics.IncrementConflict(metrics.OperationRegister, ConflictField(conflict))
			return nil, conflict
		}
		u.log.Warnf("Failed to create donor: %+v", err)
		return nil, err
	}

	u.metrics.IncrementDonorsRegistered()
	invalidateDirectory(ctx, u.log, u.directoryCache)

	return converter.DonorToResponse(donor), nil
}
