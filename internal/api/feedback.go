package api

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog"

	"github.com/ayursutra/panchakarma-portal/internal/models"
	"github.com/ayursutra/panchakarma-portal/internal/store"
)

type FeedbackRequest struct {
	Rating      int    `json:"rating"` // 1-5
	Experience  string `json:"experience"`
	Symptoms    string `json:"symptoms,omitempty"`
	PainLevel   *int   `json:"painLevel,omitempty"`
	EnergyLevel *int   `json:"energyLevel,omitempty"`
	Comments    string `json:"comments,omitempty"`
}

type FeedbackAPI struct {
	store  *store.Store
	delays Delays
	log    zerolog.Logger
}

func NewFeedbackAPI(st *store.Store, delays Delays, log zerolog.Logger) *FeedbackAPI {
	return &FeedbackAPI{store: st, delays: delays, log: log}
}

// Submit appends a feedback record for a session. The store does not
// stop a second submission for the same session.
func (a *FeedbackAPI) Submit(sessionID, patientID string, req FeedbackRequest) (Response[models.Feedback], error) {
	wait(a.delays.SubmitFeedback)

	var fb models.Feedback
	if err := copier.Copy(&fb, &req); err != nil {
		return fail[models.Feedback](""), fmt.Errorf("feedback: submit: map request: %w", err)
	}
	fb.ID = timestampID()
	fb.SessionID = sessionID
	fb.PatientID = patientID
	fb.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := a.store.AppendFeedback(&fb); err != nil {
		return fail[models.Feedback](""), fmt.Errorf("feedback: submit: %w", err)
	}
	return ok(fb), nil
}

// List returns every feedback record. The practitioner id is accepted
// and logged but not applied as a filter: scoping feedback to the
// practitioner's own sessions has never been implemented in the backend
// this layer simulates, and the behavior is preserved as-is.
func (a *FeedbackAPI) List(practitionerID string) (Response[[]models.Feedback], error) {
	wait(a.delays.ListFeedback)

	a.log.Debug().Str("practitionerId", practitionerID).Msg("fetching feedback for practitioner")

	fbs, err := a.store.AllFeedback()
	if err != nil {
		return fail[[]models.Feedback](""), fmt.Errorf("feedback: list: %w", err)
	}
	return ok(fbs), nil
}
