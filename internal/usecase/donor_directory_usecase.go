package usecase

import (
	"context"
	"sort"
	"strings"

	"blood-donor-registry/internal/converter"
	"blood-donor-registry/internal/delivery/dto"
	"blood-donor-registry/internal/domain/entity"
	"blood-donor-registry/internal/domain/repository"
	"blood-donor-registry/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=donor_directory_usecase.go -destination=mocks/donor_directory_usecase_mock.go -package=mocks

// SortByAvailability selects the display order: high before low, then name.
const SortByAvailability = "availability"

type DonorDirectoryUsecase interface {
	List(ctx context.Context, query *dto.DonorListQuery) ([]dto.DonorResponse, error)
	Stats(ctx context.Context) (*dto.DonorStatsResponse, error)
}

type donorDirectoryUsecase struct {
	log            *logrus.Logger
	donorRepo      repository.DonorRepository
	directoryCache repository.DirectoryCache
	metrics        *metrics.Metrics
}

func NewDonorDirectoryUsecase(
	log *logrus.Logger,
	donorRepo repository.DonorRepository,
	directoryCache repository.DirectoryCache,
	metrics *metrics.Metrics,
) DonorDirectoryUsecase {
	return &donorDirectoryUsecase{
		log:            log,
		donorRepo:      donorRepo,
		directoryCache: directoryCache,
		metrics:        metrics,
	}
}

func (u *donorDirectoryUsecase) List(ctx context.Context, query *dto.DonorListQuery) ([]dto.DonorResponse, error) {
	filter, ok := entity.ParseDonorFilter(query.BloodGroup)
	if !ok {
		return nil, ErrInvalidBloodGroup
	}

	donors, err := u.findAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	if query.Sort == SortByAvailability {
		sortForDisplay(donors)
	}

	return converter.DonorsToResponses(donors), nil
}

func (u *donorDirectoryUsecase) Stats(ctx context.Context) (*dto.DonorStatsResponse, error) {
	counts, err := u.donorRepo.CountByBloodGroup(ctx)
	if err != nil {
		u.log.Warnf("Failed to count donors: %+v", err)
		return nil, err
	}
	return converter.DonorCountsToStats(counts), nil
}

// findAll serves the id-ordered listing from the cache when possible.
// Cache failures fall back to the store. A store read is cached under the
// generation observed before it, never a later one.
func (u *donorDirectoryUsecase) findAll(ctx context.Context, filter entity.DonorFilter) ([]entity.Donor, error) {
	donors, generation, found, err := u.directoryCache.Get(ctx, filter)
	cacheable := err == nil
	switch {
	case err != nil:
		u.metrics.ObserveCacheLookup("error")
		u.log.Warnf("Failed to read directory cache: %+v", err)
	case found:
		u.metrics.ObserveCacheLookup("hit")
		return donors, nil
	default:
		u.metrics.ObserveCacheLookup("miss")
	}

	donors, err = u.donorRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find donors: %+v", err)
		return nil, err
	}

	if cacheable {
		if err := u.directoryCache.Set(ctx, filter, generation, donors); err != nil {
			u.log.Warnf("Failed to write directory cache: %+v", err)
		}
	}

	return donors, nil
}

func sortForDisplay(donors []entity.Donor) {
	sort.SliceStable(donors, func(i, j int) bool {
		ri, rj := donors[i].Availability.Rank(), donors[j].Availability.Rank()
		if ri != rj {
			return ri < rj
		}
		ni, nj := strings.ToLower(donors[i].Name), strings.ToLower(donors[j].Name)
		if ni != nj {
			return ni < nj
		}
		return donors[i].ID < donors[j].ID
	})
}
