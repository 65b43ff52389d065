package dto

import "time"

// Request DTOs

type RegisterDonorRequest struct {
	Name         string `json:"name" validate:"required,notblank,max=255"`
	Mobile       string `json:"mobile" validate:"required,len=10,number"`
	Age          int    `json:"age" validate:"required,gt=0,lte=150"`
	BloodGroup   string `json:"blood_group" validate:"required,oneofci=A+ A- B+ B- AB+ AB- O+ O-"`
	Availability string `json:"availability" validate:"required,oneofci=high low"`
	Email        string `json:"email" validate:"required,email,max=255"`
}

// UpdateDonorRequest is a full replacement of the mutable profile fields.
// Email selects the row and is never changed.
type UpdateDonorRequest struct {
	Name         string `json:"name" validate:"required,notblank,max=255"`
	Mobile       string `json:"mobile" validate:"required,len=10,number"`
	Age          int    `json:"age" validate:"required,gt=0,lte=150"`
	BloodGroup   string `json:"blood_group" validate:"required,oneofci=A+ A- B+ B- AB+ AB- O+ O-"`
	Availability string `json:"availability" validate:"required,oneofci=high low"`
	Email        string `json:"email" validate:"required"`
}

type UpdateAvailabilityRequest struct {
	Availability string `json:"availability" validate:"required,oneofci=high low"`
}

// DonorListQuery carries the directory query string.
// BloodGroup "All" or empty means unfiltered; Sort "availability" applies
// the display order (high before low, then name).
type DonorListQuery struct {
	BloodGroup string `json:"blood_group"`
	Sort       string `json:"sort" validate:"omitempty,oneof=id availability"`
}

// Response DTOs

type DonorResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Mobile       string    `json:"mobile"`
	Age          int       `json:"age"`
	BloodGroup   string    `json:"blood_group"`
	Availability string    `json:"availability"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type DonorMessageResponse struct {
	Message string         `json:"message"`
	Donor   *DonorResponse `json:"donor,omitempty"`
}

type DonorStatsResponse struct {
	Total        int64            `json:"total"`
	ByBloodGroup map[string]int64 `json:"by_blood_group"`
}
