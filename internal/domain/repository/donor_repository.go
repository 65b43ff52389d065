package repository

import (
	"context"

	"blood-donor-registry/internal/domain/entity"
)

//go:generate mockgen -source=donor_repository.go -destination=mocks/donor_repository_mock.go -package=mocks

// DonorRepository is the donor record store. Lookups return (nil, nil)
// when no row matches; every method is a single store statement.
type DonorRepository interface {
	Create(ctx context.Context, donor *entity.Donor) error
	FindAll(ctx context.Context, filter entity.DonorFilter) ([]entity.Donor, error)
	FindByID(ctx context.Context, id int64) (*entity.Donor, error)
	FindByEmail(ctx context.Context, email string) (*entity.Donor, error)
	UpdateByEmail(ctx context.Context, email string, donor *entity.Donor) (*entity.Donor, error)
	UpdateAvailability(ctx context.Context, id int64, availability entity.Availability) (*entity.Donor, error)
	DeleteByEmail(ctx context.Context, email string) (*entity.Donor, error)
	DeleteByID(ctx context.Context, id int64) (*entity.Donor, error)
	CountByBloodGroup(ctx context.Context) (map[entity.BloodGroup]int64, error)
}
