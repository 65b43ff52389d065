package repository

import (
	"context"

	"blood-donor-registry/internal/domain/entity"
)

//go:generate mockgen -source=directory_cache.go -destination=mocks/directory_cache_mock.go -package=mocks

// DirectoryCache holds directory listings keyed by filter and generation.
// Get reports a miss with found == false along with the generation it
// looked in; a listing loaded after that miss must be stored with Set under
// the same generation. Invalidate starts a new generation, so a listing read
// before a write can never be served after it.
type DirectoryCache interface {
	Get(ctx context.Context, filter entity.DonorFilter) (donors []entity.Donor, generation int64, found bool, err error)
	Set(ctx context.Context, filter entity.DonorFilter, generation int64, donors []entity.Donor) error
	Invalidate(ctx context.Context) error
}
