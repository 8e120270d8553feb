package domain

import (
	"context"
	"strconv"
)

// Profile attribute names a Target can refer to.
const (
	AttrClassLevel       = "classLevel"
	AttrGender           = "gender"
	AttrFamilyIncome     = "familyIncome"
	AttrCategory         = "category"
	AttrState            = "state"
	AttrInstitution      = "institution"
	AttrRuralArea        = "ruralArea"
	AttrNeedBasedSupport = "needBasedSupport"
)

// UserProfile is written once by the onboarding form and read thereafter.
// JSON names match the stored eligibilityData object.
type UserProfile struct {
	FullName         string `json:"fullName" yaml:"fullName" validate:"max=100,valid_name,no_emoji"`
	ClassLevel       string `json:"classLevel" yaml:"classLevel" validate:"required,choice=classLevel"`
	Gender           string `json:"gender" yaml:"gender" validate:"required,choice=gender"`
	FamilyIncome     string `json:"familyIncome" yaml:"familyIncome" validate:"required,choice=familyIncome"`
	Category         string `json:"category" yaml:"category" validate:"required,choice=category"`
	State            string `json:"state" yaml:"state" validate:"required,choice=state"`
	Institution      string `json:"institution" yaml:"institution" validate:"required,choice=institution"`
	RuralArea        bool   `json:"ruralArea" yaml:"ruralArea"`
	NeedBasedSupport bool   `json:"needBasedSupport" yaml:"needBasedSupport"`
}

// Attribute returns the profile value named by attr. Boolean flags are
// rendered as "true"/"false".
func (p *UserProfile) Attribute(attr string) (string, bool) {
	if p == nil {
		return "", false
	}
	switch attr {
	case AttrClassLevel:
		return p.ClassLevel, true
	case AttrGender:
		return p.Gender, true
	case AttrFamilyIncome:
		return p.FamilyIncome, true
	case AttrCategory:
		return p.Category, true
	case AttrState:
		return p.State, true
	case AttrInstitution:
		return p.Institution, true
	case AttrRuralArea:
		return strconv.FormatBool(p.RuralArea), true
	case AttrNeedBasedSupport:
		return strconv.FormatBool(p.NeedBasedSupport), true
	}
	return "", false
}

var (
	IndianStates = []string{
		"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh", "Delhi", "Goa", "Gujarat",
		"Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra",
		"Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim",
		"Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
	}
	ClassLevels = []string{
		"Class 1", "Class 2", "Class 3", "Class 4", "Class 5", "Class 6", "Class 7", "Class 8",
		"Class 9", "Class 10", "Class 11", "Class 12", "Undergraduate", "Postgraduate",
	}
	IncomeRanges     = []string{"₹ < 1 Lakh", "₹ 1-2.5 Lakh", "₹ 2.5-5 Lakh", "₹ 5+ Lakh"}
	CasteCategories  = []string{"General", "SC", "ST", "OBC", "EWS", "Minority"}
	InstitutionTypes = []string{"Government", "Private", "Not enrolled"}
	Genders          = []string{"Male", "Female", "Other"}
)

// ProfileChoices returns the closed option lists of the onboarding form,
// keyed by the name used in `choice=` validation tags.
func ProfileChoices() map[string][]string {
	return map[string][]string{
		AttrClassLevel:   ClassLevels,
		AttrGender:       Genders,
		AttrFamilyIncome: IncomeRanges,
		AttrCategory:     CasteCategories,
		AttrState:        IndianStates,
		AttrInstitution:  InstitutionTypes,
	}
}

type ProfileUsecase interface {
	// GetProfile returns nil without error when the client has no usable profile.
	GetProfile(ctx context.Context, clientID string) (*UserProfile, error)
	SaveProfile(ctx context.Context, clientID string, profile *UserProfile) error
	DeleteProfile(ctx context.Context, clientID string) error
}
