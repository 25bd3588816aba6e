package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiofit/studiofit-be/models"
)

func TestPlanCatalog_DurationMonths(t *testing.T) {
	cases := map[models.PlanKind]int{
		models.PlanMonthly:       1,
		models.PlanThreeMonth:    3,
		models.PlanSixMonth:      6,
		models.PlanTenCredits:    3,
		models.PlanTwentyCredits: 6,
	}

	for kind, want := range cases {
		months, err := DurationMonths(kind)
		require.NoError(t, err)
		assert.Equal(t, want, months, "plan %s", kind)
	}
}

func TestPlanCatalog_CreditsGranted(t *testing.T) {
	cases := map[models.PlanKind]int{
		models.PlanMonthly:       0,
		models.PlanThreeMonth:    0,
		models.PlanSixMonth:      0,
		models.PlanTenCredits:    10,
		models.PlanTwentyCredits: 20,
	}

	for kind, want := range cases {
		credits, err := CreditsGranted(kind)
		require.NoError(t, err)
		assert.Equal(t, want, credits, "plan %s", kind)
	}
}

func TestPlanCatalog_UnknownKind(t *testing.T) {
	_, err := DurationMonths(models.PlanKind("lifetime"))
	assert.ErrorIs(t, err, ErrInvalidPlanKind)

	_, err = CreditsGranted(models.PlanKind("lifetime"))
	assert.ErrorIs(t, err, ErrInvalidPlanKind)
}

func TestPlanCatalog_Closed(t *testing.T) {
	assert.Len(t, PlanKinds(), len(planCatalog))
	for _, kind := range PlanKinds() {
		_, ok := planCatalog[kind]
		assert.True(t, ok, "plan %s missing from catalog", kind)
	}
}
