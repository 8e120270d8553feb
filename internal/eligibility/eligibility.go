// Package eligibility tags a record for a user profile.
package eligibility

import "edu-finder-backend/internal/domain"

// Classify returns Eligible when the profile's attribute named by target
// equals the target value exactly, and MayQualify otherwise. Without a
// profile every record may qualify. A record with no target is open to any
// profile.
//
// This is a single equality check per record, not a score.
func Classify(target *domain.Target, profile *domain.UserProfile) domain.Eligibility {
	if profile == nil {
		return domain.MayQualify
	}
	if target == nil {
		return domain.Eligible
	}
	value, ok := profile.Attribute(target.Attribute)
	if ok && value == target.Value {
		return domain.Eligible
	}
	return domain.MayQualify
}
