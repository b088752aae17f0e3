// Package loadprofiles maps a Point of Delivery (POD) identifier to a
// representative 24-hour load profile.
//
// Only the last character of the POD drives the selection:
//
//	'1'..'4'        -> family, single-parent, business, single-person
//	other digit d   -> the same four templates at index d mod 4
//	non-digit/empty -> family
package loadprofiles

import (
	"unicode/utf8"

	"github.com/aristath/greenmix/internal/domain"
)

// templateOrder is the index order used by the modulo fallback
var templateOrder = []domain.ProfileType{
	domain.ProfileFamily,
	domain.ProfileSingleParent,
	domain.ProfileBusiness,
	domain.ProfileSinglePerson,
}

var templates = map[domain.ProfileType][]domain.LoadProfilePoint{
	domain.ProfileFamily:       familyProfile,
	domain.ProfileSingleParent: singleParentProfile,
	domain.ProfileBusiness:     businessProfile,
	domain.ProfileSinglePerson: singlePersonProfile,
}

// ProfileTypeForPod selects the profile template for a POD number
func ProfileTypeForPod(podNumber string) domain.ProfileType {
	if podNumber == "" {
		return domain.ProfileFamily
	}

	last, _ := utf8.DecodeLastRuneInString(podNumber)
	if last >= '1' && last <= '4' {
		return templateOrder[last-'1']
	}

	digit := 0
	if last >= '0' && last <= '9' {
		digit = int(last - '0')
	}
	return templateOrder[digit%len(templateOrder)]
}

// GetLoadProfileByPod returns the 24 hourly points for the POD's template.
// The slice is a copy and may be modified by the caller.
func GetLoadProfileByPod(podNumber string) []domain.LoadProfilePoint {
	return Template(ProfileTypeForPod(podNumber))
}

// GetProfileTypeName returns the display label for the POD's template
func GetProfileTypeName(podNumber string) string {
	return ProfileTypeForPod(podNumber).Label()
}

// Template returns a copy of the named template, or nil if it does not exist
func Template(profileType domain.ProfileType) []domain.LoadProfilePoint {
	points, ok := templates[profileType]
	if !ok {
		return nil
	}
	out := make([]domain.LoadProfilePoint, len(points))
	copy(out, points)
	return out
}

// ProfileTypes lists every template in selection order
func ProfileTypes() []domain.ProfileType {
	out := make([]domain.ProfileType, len(templateOrder))
	copy(out, templateOrder)
	return out
}
