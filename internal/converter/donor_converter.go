package converter

import (
	"blood-donor-registry/internal/delivery/dto"
	"blood-donor-registry/internal/domain/entity"
)

// DonorToResponse converts a Donor entity to DonorResponse DTO
func DonorToResponse(donor *entity.Donor) *dto.DonorResponse {
	if donor == nil {
		return nil
	}

	return &dto.DonorResponse{
		ID:           donor.ID,
		Name:         donor.Name,
		Mobile:       donor.Mobile,
		Age:          donor.Age,
		BloodGroup:   string(donor.BloodGroup),
		Availability: string(donor.Availability),
		Email:        donor.Email,
		CreatedAt:    donor.CreatedAt,
		UpdatedAt:    donor.UpdatedAt,
	}
}

// DonorsToResponses converts a slice of Donor entities; never returns nil so
// an empty directory encodes as [].
func DonorsToResponses(donors []entity.Donor) []dto.DonorResponse {
	responses := make([]dto.DonorResponse, 0, len(donors))
	for i := range donors {
		responses = append(responses, *DonorToResponse(&donors[i]))
	}
	return responses
}

// DonorCountsToStats fills every blood group, including empty ones.
func DonorCountsToStats(counts map[entity.BloodGroup]int64) *dto.DonorStatsResponse {
	stats := &dto.DonorStatsResponse{
		ByBloodGroup: make(map[string]int64, len(entity.AllBloodGroups)),
	}
	for _, bg := range entity.AllBloodGroups {
		stats.ByBloodGroup[string(bg)] = counts[bg]
		stats.Total += counts[bg]
	}
	return stats
}
