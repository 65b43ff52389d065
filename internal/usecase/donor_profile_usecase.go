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

//go:generate mockgen -source=donor_profile_usecase.go -destination=mocks/donor_profile_usecase_mock.go -package=mocks

type DonorProfileUsecase interface {
	GetByEmail(ctx context.Context, email string) (*dto.DonorResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.DonorResponse, error)
	UpdateByEmail(ctx context.Context, req *dto.UpdateDonorRequest) (*dto.DonorResponse, error)
	UpdateAvailability(ctx context.Context, id int64, req *dto.UpdateAvailabilityRequest) (*dto.DonorResponse, error)
	DeleteByEmail(ctx context.Context, email string) error
	DeleteByID(ctx context.Context, id int64) (*dto.DonorResponse, error)
}

type donorProfileUsecase struct {
	log            *logrus.Logger
	donorRepo      repository.DonorRepository
	directoryCache repository.DirectoryCache
	metrics        *metrics.Metrics
}

func NewDonorProfileUsecase(
	log *logrus.Logger,
	donorRepo repository.DonorRepository,
	directoryCache repository.DirectoryCache,
	metrics *metrics.Metrics,
) DonorProfileUsecase {
	return &donorProfileUsecase{
		log:            log,
		donorRepo:      donorRepo,
		directoryCache: directoryCache,
		metrics:        metrics,
	}
}

func (u *donorProfileUsecase) GetByEmail(ctx context.Context, email string) (*dto.DonorResponse, error) {
	donor, err := u.donorRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find donor by email: %+v", err)
		return nil, err
	}
	if donor == nil {
		return nil, ErrDonorNotFound
	}

	return converter.DonorToResponse(donor), nil
}

func (u *donorProfileUsecase) GetByID(ctx context.Context, id int64) (*dto.DonorResponse, error) {
	if id <= 0 {
		return nil, ErrInvalidDonorID
	}

	donor, err := u.donorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find donor by id: %+v", err)
		return nil, err
	}
	if donor == nil {
		return nil, ErrDonorNotFound
	}

	return converter.DonorToResponse(donor), nil
}

// UpdateByEmail replaces every mutable field of the profile owned by
// req.Email. The id and email of the row never change.
func (u *donorProfileUsecase) UpdateByEmail(ctx context.Context, req *dto.UpdateDonorRequest) (*dto.DonorResponse, error) {
	bloodGroup, availability, err := normalizeEnums(req.BloodGroup, req.Availability)
	if err != nil {
		return nil, err
	}

	if !middleware.CanActOn(ctx, req.Email) {
		return nil, ErrForbidden
	}

	updated, err := u.donorRepo.UpdateByEmail(ctx, req.Email, &entity.Donor{
		Name:         req.Name,
		Mobile:       req.Mobile,
		Age:          req.Age,
		BloodGroup:   bloodGroup,
		Availability: availability,
	})
	if err != nil {
		if conflict := translateUniqueViolation(err); conflict != nil {
			u.metrics.IncrementConflict(metrics.OperationUpdate, ConflictField(conflict))
			return nil, conflict
		}
		u.log.Warnf("Failed to update donor: %+v", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrDonorNotFound
	}

	invalidateDirectory(ctx, u.log, u.directoryCache)

	return converter.DonorToResponse(updated), nil
}

func (u *donorProfileUsecase) UpdateAvailability(ctx context.Context, id int64, req *dto.UpdateAvailabilityRequest) (*dto.DonorResponse, error) {
	availability, ok := entity.ParseAvailability(req.Availability)
	if !ok {
		return nil, ErrInvalidAvailability
	}

	if err := u.authorizeByID(ctx, id); err != nil {
		return nil, err
	}

	updated, err := u.donorRepo.UpdateAvailability(ctx, id, availability)
	if err != nil {
		u.log.Warnf("Failed to update donor availability: %+v", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrDonorNotFound
	}

	invalidateDirectory(ctx, u.log, u.directoryCache)

	return converter.DonorToResponse(updated), nil
}

// DeleteByEmail permanently removes the profile owned by email.
func (u *donorProfileUsecase) DeleteByEmail(ctx context.Context, email string) error {
	if !middleware.CanActOn(ctx, email) {
		return ErrForbidden
	}

	deleted, err := u.donorRepo.DeleteByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed delete donor: %+v", err)
		return err
	}
	if deleted == nil {
		return ErrDonorNotFound
	}

	u.metrics.IncrementDonorsDeleted()
	invalidateDirectory(ctx, u.log, u.directoryCache)

	return nil
}

func (u *donorProfileUsecase) DeleteByID(ctx context.Context, id int64) (*dto.DonorResponse, error) {
	if err := u.authorizeByID(ctx, id); err != nil {
		return nil, err
	}

	deleted, err := u.donorRepo.DeleteByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed delete donor: %+v", err)
		return nil, err
	}
	if deleted == nil {
		return nil, ErrDonorNotFound
	}

	u.metrics.IncrementDonorsDeleted()
	invalidateDirectory(ctx, u.log, u.directoryCache)

	return converter.DonorToResponse(deleted), nil
}

// authorizeByID resolves the owner of an id-keyed write. It only touches
// the store when a verified identity is present; email is immutable, so the
// owner cannot change between this read and the write.
func (u *donorProfileUsecase) authorizeByID(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidDonorID
	}
	if _, ok := middleware.GetIdentityEmailFromContext(ctx); !ok {
		return nil
	}

	donor, err := u.donorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find donor by id: %+v", err)
		return err
	}
	if donor == nil {
		return ErrDonorNotFound
	}
	if !middleware.CanActOn(ctx, donor.Email) {
		return ErrForbidden
	}
	return nil
}
