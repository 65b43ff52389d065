package entity

import "strings"

// BloodGroupFilterAll is the pseudo-filter that selects every donor.
const BloodGroupFilterAll = "All"

// DonorFilter is a domain-level filter for directory queries.
// A nil BloodGroup means no filtering.
type DonorFilter struct {
	BloodGroup *BloodGroup
}

// ParseDonorFilter turns a raw blood_group query value into a filter.
// Empty and "All" (any casing) select everything; anything else must be a
// valid blood group.
func ParseDonorFilter(raw string) (DonorFilter, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, BloodGroupFilterAll) {
		return DonorFilter{}, true
	}
	bg, ok := ParseBloodGroup(raw)
	if !ok {
		return DonorFilter{}, false
	}
	return DonorFilter{BloodGroup: &bg}, true
}

// Key identifies the filter in cache keys.
func (f DonorFilter) Key() string {
	if f.BloodGroup == nil {
		return "all"
	}
	return string(*f.BloodGroup)
}
