package api

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ayursutra/panchakarma-portal/internal/models"
	"github.com/ayursutra/panchakarma-portal/internal/store"
)

type ProgressAPI struct {
	store  *store.Store
	delays Delays
	log    zerolog.Logger
}

func NewProgressAPI(st *store.Store, delays Delays, log zerolog.Logger) *ProgressAPI {
	return &ProgressAPI{store: st, delays: delays, log: log}
}

// Plan returns the therapy plan. As with feedback listing, the patient
// id is logged but not used as a filter; the store holds a single
// seeded plan.
func (a *ProgressAPI) Plan(patientID string) (Response[models.TherapyPlan], error) {
	wait(a.delays.TherapyPlan)

	a.log.Debug().Str("patientId", patientID).Msg("fetching therapy plan for patient")

	p, err := a.store.FirstPlan()
	if err != nil {
		return fail[models.TherapyPlan](""), fmt.Errorf("progress: plan: %w", err)
	}
	return ok(*p), nil
}

// Series returns the wellbeing time series, oldest first. The patient
// id is logged but not applied.
func (a *ProgressAPI) Series(patientID string) (Response[[]models.ProgressPoint], error) {
	wait(a.delays.ProgressData)

	a.log.Debug().Str("patientId", patientID).Msg("fetching progress data for patient")

	points, err := a.store.ProgressSeries()
	if err != nil {
		return fail[[]models.ProgressPoint](""), fmt.Errorf("progress: series: %w", err)
	}
	return ok(points), nil
}
