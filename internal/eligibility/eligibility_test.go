package eligibility_test

import (
	"testing"

	"edu-finder-backend/internal/domain"
	"edu-finder-backend/internal/eligibility"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	sc := &domain.Target{Attribute: domain.AttrCategory, Value: "SC"}
	class12 := &domain.Target{Attribute: domain.AttrClassLevel, Value: "Class 12"}

	cases := []struct {
		name    string
		target  *domain.Target
		profile *domain.UserProfile
		want    domain.Eligibility
	}{
		{"category match", sc, &domain.UserProfile{Category: "SC"}, domain.Eligible},
		{"category mismatch", sc, &domain.UserProfile{Category: "OBC"}, domain.MayQualify},
		{"class level match", class12, &domain.UserProfile{ClassLevel: "Class 12"}, domain.Eligible},
		{"class level mismatch", class12, &domain.UserProfile{ClassLevel: "Class 11"}, domain.MayQualify},
		{"absent profile", sc, nil, domain.MayQualify},
		{"absent profile, open record", nil, nil, domain.MayQualify},
		{"open record", nil, &domain.UserProfile{Category: "General"}, domain.Eligible},
		{"empty profile", sc, &domain.UserProfile{}, domain.MayQualify},
		{"unknown attribute", &domain.Target{Attribute: "caste", Value: "SC"}, &domain.UserProfile{Category: "SC"}, domain.MayQualify},
		{"case sensitive", sc, &domain.UserProfile{Category: "sc"}, domain.MayQualify},
		{"boolean attribute", &domain.Target{Attribute: domain.AttrNeedBasedSupport, Value: "true"}, &domain.UserProfile{NeedBasedSupport: true}, domain.Eligible},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, eligibility.Classify(tc.target, tc.profile))
		})
	}
}
