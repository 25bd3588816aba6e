package services

import (
	"errors"

	"github.com/studiofit/studiofit-be/models"
)

var ErrInvalidPlanKind = errors.New("invalid membership plan kind")

type planSpec struct {
	DurationMonths int
	Credits        int // 0 for date-based plans
}

// planCatalog is the closed set of membership plans. Adding a kind means
// adding a row here and a constant in models; nothing else changes.
var planCatalog = map[models.PlanKind]planSpec{
	models.PlanMonthly:       {DurationMonths: 1},
	models.PlanThreeMonth:    {DurationMonths: 3},
	models.PlanSixMonth:      {DurationMonths: 6},
	models.PlanTenCredits:    {DurationMonths: 3, Credits: 10},
	models.PlanTwentyCredits: {DurationMonths: 6, Credits: 20},
}

// DurationMonths returns how many calendar months a plan of the given kind
// stays valid from its start date.
func DurationMonths(kind models.PlanKind) (int, error) {
	spec, ok := planCatalog[kind]
	if !ok {
		return 0, ErrInvalidPlanKind
	}
	return spec.DurationMonths, nil
}

// CreditsGranted returns the credit balance a plan starts with. Zero means
// the plan is date-based and not metered by credits.
func CreditsGranted(kind models.PlanKind) (int, error) {
	spec, ok := planCatalog[kind]
	if !ok {
		return 0, ErrInvalidPlanKind
	}
	return spec.Credits, nil
}

// PlanKinds lists the catalog in a stable order for API responses.
func PlanKinds() []models.PlanKind {
	return []models.PlanKind{
		models.PlanMonthly,
		models.PlanThreeMonth,
		models.PlanSixMonth,
		models.PlanTenCredits,
		models.PlanTwentyCredits,
	}
}
