package usecase

import (
	"context"

	"blood-donor-registry/internal/domain/entity"
	"blood-donor-registry/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// normalizeEnums validates and canonicalizes the enumerated profile fields.
// Availability is checked first.
func normalizeEnums(bloodGroup, availability string) (entity.BloodGroup, entity.Availability, error) {
	a, ok := entity.ParseAvailability(availability)
	if !ok {
		return "", "", ErrInvalidAvailability
	}
	bg, ok := entity.ParseBloodGroup(bloodGroup)
	if !ok {
		return "", "", ErrInvalidBloodGroup
	}
	return bg, a, nil
}

// invalidateDirectory runs after a committed write. A failure only delays
// visibility until the cached listings expire, so it is logged, not returned.
func invalidateDirectory(ctx context.Context, log *logrus.Logger, cache repository.DirectoryCache) {
	if err := cache.Invalidate(ctx); err != nil {
		log.Warnf("Failed to invalidate directory cache: %+v", err)
	}
}
