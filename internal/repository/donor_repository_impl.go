package repository

import (
	"context"
	"errors"

	"blood-donor-registry/internal/domain/entity"
	domainRepo "blood-donor-registry/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type donorRepository struct {
	db *gorm.DB
}

func NewDonorRepository(db *gorm.DB) domainRepo.DonorRepository {
	return &donorRepository{db: db}
}

func (r *donorRepository) Create(ctx context.Context, donor *entity.Donor) error {
	return r.db.WithContext(ctx).Create(donor).Error
}

func (r *donorRepository) FindAll(ctx context.Context, filter entity.DonorFilter) ([]entity.Donor, error) {
	var donors []entity.Donor

	query := r.db.WithContext(ctx).Order("id ASC")
	if filter.BloodGroup != nil {
		query = query.Where("blood_group = ?", string(*filter.BloodGroup))
	}

	if err := query.Find(&donors).Error; err != nil {
		return nil, err
	}
	return donors, nil
}

func (r *donorRepository) FindByID(ctx context.Context, id int64) (*entity.Donor, error) {
	var donor entity.Donor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&donor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &donor, nil
}

func (r *donorRepository) FindByEmail(ctx context.Context, email string) (*entity.Donor, error) {
	var donor entity.Donor
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&donor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &donor, nil
}

// UpdateByEmail overwrites every mutable column of the row owned by email
// in one UPDATE ... RETURNING. id and email never change.
func (r *donorRepository) UpdateByEmail(ctx context.Context, email string, donor *entity.Donor) (*entity.Donor, error) {
	var updated entity.Donor
	result := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"name":         donor.Name,
			"mobile":       donor.Mobile,
			"age":          donor.Age,
			"blood_group":  string(donor.BloodGroup),
			"availability": string(donor.Availability),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &updated, nil
}

func (r *donorRepository) UpdateAvailability(ctx context.Context, id int64, availability entity.Availability) (*entity.Donor, error) {
	var updated entity.Donor
	result := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("availability", string(availability))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &updated, nil
}

func (r *donorRepository) DeleteByEmail(ctx context.Context, email string) (*entity.Donor, error) {
	return r.deleteWhere(ctx, "email = ?", email)
}

func (r *donorRepository) DeleteByID(ctx context.Context, id int64) (*entity.Donor, error) {
	return r.deleteWhere(ctx, "id = ?", id)
}

func (r *donorRepository) deleteWhere(ctx context.Context, query string, arg interface{}) (*entity.Donor, error) {
	var deleted entity.Donor
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where(query, arg).
		Delete(&deleted)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &deleted, nil
}

func (r *donorRepository) CountByBloodGroup(ctx context.Context) (map[entity.BloodGroup]int64, error) {
	var rows []struct {
		BloodGroup string
		Total      int64
	}

	err := r.db.WithContext(ctx).
		Model(&entity.Donor{}).
		Select("blood_group, COUNT(*) AS total").
		Group("blood_group").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.BloodGroup]int64, len(rows))
	for _, row := range rows {
		counts[entity.BloodGroup(row.BloodGroup)] = row.Total
	}
	return counts, nil
}
