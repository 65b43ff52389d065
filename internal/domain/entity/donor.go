package entity

import (
	"strings"
	"time"
)

// Donor represents one registrant's stored blood-donation record.
// Email is the external ownership key; ID is assigned by the store.
type Donor struct {
	ID           int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string       `gorm:"type:varchar(255);not null" json:"name"`
	Mobile       string       `gorm:"type:varchar(10);not null;uniqueIndex:donors_mobile_key" json:"mobile"`
	Age          int          `gorm:"not null" json:"age"`
	BloodGroup   BloodGroup   `gorm:"type:varchar(3);not null;index" json:"blood_group"`
	Availability Availability `gorm:"type:varchar(4);not null" json:"availability"`
	Email        string       `gorm:"type:varchar(255);not null;uniqueIndex:donors_email_key" json:"email"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Donor) TableName() string {
	return "donors"
}

// BloodGroup is always stored upper-case.
type BloodGroup string

const (
	BloodGroupAPositive  BloodGroup = "A+"
	BloodGroupANegative  BloodGroup = "A-"
	BloodGroupBPositive  BloodGroup = "B+"
	BloodGroupBNegative  BloodGroup = "B-"
	BloodGroupABPositive BloodGroup = "AB+"
	BloodGroupABNegative BloodGroup = "AB-"
	BloodGroupOPositive  BloodGroup = "O+"
	BloodGroupONegative  BloodGroup = "O-"
)

// AllBloodGroups lists the closed enumeration in display order.
var AllBloodGroups = []BloodGroup{
	BloodGroupAPositive,
	BloodGroupANegative,
	BloodGroupBPositive,
	BloodGroupBNegative,
	BloodGroupABPositive,
	BloodGroupABNegative,
	BloodGroupOPositive,
	BloodGroupONegative,
}

// ParseBloodGroup matches s case-insensitively against the enumeration
// and returns the canonical upper-case value.
func ParseBloodGroup(s string) (BloodGroup, bool) {
	candidate := BloodGroup(strings.ToUpper(strings.TrimSpace(s)))
	for _, bg := range AllBloodGroups {
		if bg == candidate {
			return bg, true
		}
	}
	return "", false
}

// Availability is a donor's self-declared willingness tier, stored lower-case.
type Availability string

const (
	AvailabilityHigh Availability = "high"
	AvailabilityLow  Availability = "low"
)

// ParseAvailability matches s case-insensitively and returns the canonical value.
func ParseAvailability(s string) (Availability, bool) {
	switch Availability(strings.ToLower(strings.TrimSpace(s))) {
	case AvailabilityHigh:
		return AvailabilityHigh, true
	case AvailabilityLow:
		return AvailabilityLow, true
	}
	return "", false
}

// Rank orders availability for display: high first.
func (a Availability) Rank() int {
	if a == AvailabilityHigh {
		return 0
	}
	return 1
}
