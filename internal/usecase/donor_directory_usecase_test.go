package usecase

import (
	"context"
	"errors"
	"testing"

	"blood-donor-registry/internal/delivery/dto"
	"blood-donor-registry/internal/domain/entity"
	"blood-donor-registry/internal/domain/repository/mocks"
	"blood-donor-registry/internal/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DonorDirectorySuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	donorRepo *mocks.MockDonorRepository
	cache     *mocks.MockDirectoryCache
	metrics   *metrics.Metrics
	usecase   DonorDirectoryUsecase
}

func TestDonorDirectorySuite(t *testing.T) {
	suite.Run(t, new(DonorDirectorySuite))
}

func (s *DonorDirectorySuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.donorRepo = mocks.NewMockDonorRepository(s.ctrl)
	s.cache = mocks.NewMockDirectoryCache(s.ctrl)
	s.metrics = metrics.New()
	s.usecase = NewDonorDirectoryUsecase(discardLogger(), s.donorRepo, s.cache, s.metrics)
}

func (s *DonorDirectorySuite) TearDownTest() {
	s.ctrl.Finish()
}

func groupFilter(bg entity.BloodGroup) entity.DonorFilter {
	return entity.DonorFilter{BloodGroup: &bg}
}

func directoryFixture() []entity.Donor {
	return []entity.Donor{
		{ID: 1, Name: "Ravi", BloodGroup: entity.BloodGroupABNegative, Availability: entity.AvailabilityLow, Email: "ravi@x.org"},
		{ID: 2, Name: "asha", BloodGroup: entity.BloodGroupOPositive, Availability: entity.AvailabilityHigh, Email: "asha@x.org"},
		{ID: 3, Name: "Meena", BloodGroup: entity.BloodGroupABNegative, Availability: entity.AvailabilityHigh, Email: "meena@x.org"},
		{ID: 4, Name: "Asha", BloodGroup: entity.BloodGroupBPositive, Availability: entity.AvailabilityLow, Email: "asha.b@x.org"},
	}
}

func responseIDs(responses []dto.DonorResponse) []int64 {
	ids := make([]int64, 0, len(responses))
	for _, r := range responses {
		ids = append(ids, r.ID)
	}
	return ids
}

func (s *DonorDirectorySuite) TestListCacheMissLoadsAndStores() {
	ctx := context.Background()
	filter := entity.DonorFilter{}
	donors := directoryFixture()

	s.cache.EXPECT().Get(ctx, filter).Return(nil, int64(3), false, nil)
	s.donorRepo.EXPECT().FindAll(ctx, filter).Return(donors, nil)
	s.cache.EXPECT().Set(ctx, filter, int64(3), donors).Return(nil)

	resp, err := s.usecase.List(ctx, &dto.DonorListQuery{})
	s.Require().NoError(err)
	s.Equal([]int64{1, 2, 3, 4}, responseIDs(resp))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.DirectoryCacheLookups.WithLabelValues("miss")))
}

func (s *DonorDirectorySuite) TestListCacheHitSkipsStore() {
	ctx := context.Background()
	filter := groupFilter(entity.BloodGroupABNegative)

	s.cache.EXPECT().Get(ctx, filter).Return([]entity.Donor{directoryFixture()[0]}, int64(0), true, nil)

	resp, err := s.usecase.List(ctx, &dto.DonorListQuery{BloodGroup: "AB-"})
	s.Require().NoError(err)
	s.Equal([]int64{1}, responseIDs(resp))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.DirectoryCacheLookups.WithLabelValues("hit")))
}

func (s *DonorDirectorySuite) TestListCacheErrorFallsBackToStore() {
	ctx := context.Background()
	filter := groupFilter(entity.BloodGroupABNegative)
	donors := []entity.Donor{directoryFixture()[0], directoryFixture()[2]}

	// generation unknown, so nothing is stored
	s.cache.EXPECT().Get(ctx, filter).Return(nil, int64(0), false, errors.New("redis down"))
	s.donorRepo.EXPECT().FindAll(ctx, filter).Return(donors, nil)
	s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	resp, err := s.usecase.List(ctx, &dto.DonorListQuery{BloodGroup: "ab-"})
	s.Require().NoError(err)
	s.Equal([]int64{1, 3}, responseIDs(resp))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.DirectoryCacheLookups.WithLabelValues("error")))
}

func (s *DonorDirectorySuite) TestListWriteDuringLoadKeepsReadGeneration() {
	ctx := context.Background()
	filter := entity.DonorFilter{}
	stale := directoryFixture()[:1]

	// A registration lands between the cache miss and the store read
	// returning; the stale listing must go to the generation seen on Get.
	gomock.InOrder(
		s.cache.EXPECT().Get(ctx, filter).Return(nil, int64(7), false, nil),
		s.donorRepo.EXPECT().FindAll(ctx, filter).DoAndReturn(
			func(ctx context.Context, _ entity.DonorFilter) ([]entity.Donor, error) {
				s.Require().NoError(s.cache.Invalidate(ctx))
				return stale, nil
			}),
		s.cache.EXPECT().Invalidate(ctx).Return(nil),
		s.cache.EXPECT().Set(ctx, filter, int64(7), stale).Return(nil),
	)

	resp, err := s.usecase.List(ctx, &dto.DonorListQuery{})
	s.Require().NoError(err)
	s.Equal([]int64{1}, responseIDs(resp))
}

func (s *DonorDirectorySuite) TestListAllIsUnfiltered() {
	ctx := context.Background()
	filter := entity.DonorFilter{}

	s.cache.EXPECT().Get(ctx, filter).Return(nil, int64(0), false, nil)
	s.donorRepo.EXPECT().FindAll(ctx, filter).Return([]entity.Donor{}, nil)
	s.cache.EXPECT().Set(ctx, filter, int64(0), []entity.Donor{}).Return(nil)

	resp, err := s.usecase.List(ctx, &dto.DonorListQuery{BloodGroup: "All"})
	s.Require().NoError(err)
	s.NotNil(resp)
	s.Empty(resp)
}

func (s *DonorDirectorySuite) TestListRejectsUnknownGroup() {
	_, err := s.usecase.List(context.Background(), &dto.DonorListQuery{BloodGroup: "C+"})
	s.ErrorIs(err, ErrInvalidBloodGroup)
}

func (s *DonorDirectorySuite) TestListSortByAvailability() {
	ctx := context.Background()
	filter := entity.DonorFilter{}

	s.cache.EXPECT().Get(ctx, filter).Return(directoryFixture(), int64(1), true, nil)

	resp, err := s.usecase.List(ctx, &dto.DonorListQuery{Sort: SortByAvailability})
	s.Require().NoError(err)
	// high first, then case-insensitive name, then id
	s.Equal([]int64{2, 3, 4, 1}, responseIDs(resp))
}

func (s *DonorDirectorySuite) TestListStoreFailure() {
	ctx := context.Background()
	storeErr := errors.New("connection refused")

	s.cache.EXPECT().Get(ctx, gomock.Any()).Return(nil, int64(0), false, nil)
	s.donorRepo.EXPECT().FindAll(ctx, gomock.Any()).Return(nil, storeErr)
	s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.usecase.List(ctx, &dto.DonorListQuery{})
	s.ErrorIs(err, storeErr)
}

func (s *DonorDirectorySuite) TestStats() {
	ctx := context.Background()
	s.donorRepo.EXPECT().CountByBloodGroup(ctx).Return(map[entity.BloodGroup]int64{
		entity.BloodGroupABNegative: 2,
		entity.BloodGroupOPositive:  1,
	}, nil)

	stats, err := s.usecase.Stats(ctx)
	s.Require().NoError(err)
	s.Equal(int64(3), stats.Total)
	s.Equal(int64(2), stats.ByBloodGroup["AB-"])
	s.Equal(int64(0), stats.ByBloodGroup["A+"])
	s.Len(stats.ByBloodGroup, len(entity.AllBloodGroups))
}
