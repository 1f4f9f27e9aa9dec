package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog"

	"github.com/ayursutra/panchakarma-portal/internal/models"
	"github.com/ayursutra/panchakarma-portal/internal/store"
)

// sessionLength is fixed at booking time; the end time is never
// recomputed afterwards even if the slot convention changes.
const sessionLength = time.Hour

type BookingRequest struct {
	TherapyType    models.TherapyType `json:"therapyType"`
	Date           string             `json:"date"`
	Time           string             `json:"time"`
	Notes          string             `json:"notes,omitempty"`
	PatientID      string             `json:"patientId"`
	PractitionerID string             `json:"practitionerId"`
}

type SessionsAPI struct {
	store  *store.Store
	delays Delays
	log    zerolog.Logger
}

func NewSessionsAPI(st *store.Store, delays Delays, log zerolog.Logger) *SessionsAPI {
	return &SessionsAPI{store: st, delays: delays, log: log}
}

// List returns the sessions visible to the user: a patient sees the
// ones they attend, a practitioner the ones they run. An empty result
// is a success, never an error.
func (a *SessionsAPI) List(userID string, role models.Role) (Response[[]models.TherapySession], error) {
	wait(a.delays.ListSessions)

	var (
		sessions []models.TherapySession
		err      error
	)
	switch role {
	case models.RolePatient:
		sessions, err = a.store.SessionsByPatient(userID)
	case models.RolePractitioner:
		sessions, err = a.store.SessionsByPractitioner(userID)
	default:
		return fail[[]models.TherapySession](""), fmt.Errorf("sessions: unknown role %q", role)
	}
	if err != nil {
		return fail[[]models.TherapySession](""), fmt.Errorf("sessions: list: %w", err)
	}
	return ok(sessions), nil
}

// Book appends a new session. The id is the current timestamp, the end
// time is the start plus one hour, and the status always starts out
// scheduled. A reminder notification for the patient is appended in the
// same call.
func (a *SessionsAPI) Book(req BookingRequest) (Response[models.TherapySession], error) {
	wait(a.delays.BookSession)

	endTime, err := endTimeFor(req.Time)
	if err != nil {
		return fail[models.TherapySession](""), fmt.Errorf("sessions: book: %w", err)
	}

	var sess models.TherapySession
	if err := copier.Copy(&sess, &req); err != nil {
		return fail[models.TherapySession](""), fmt.Errorf("sessions: book: map request: %w", err)
	}
	sess.ID = timestampID()
	sess.StartTime = req.Time
	sess.EndTime = endTime
	sess.Status = models.StatusScheduled
	sess.PatientName = a.displayName(req.PatientID)
	sess.PractitionerName = a.displayName(req.PractitionerID)

	if err := a.store.AppendSession(&sess); err != nil {
		return fail[models.TherapySession](""), fmt.Errorf("sessions: book: %w", err)
	}

	reminder := models.Notification{
		ID:          timestampID(),
		UserID:      req.PatientID,
		Title:       fmt.Sprintf("Session Booked: %s", req.TherapyType),
		Description: fmt.Sprintf("Your %s session on %s at %s is scheduled", req.TherapyType, req.Date, req.Time),
		Content:     fmt.Sprintf("Your %s session has been booked for %s at %s. Please arrive 10 minutes early.", req.TherapyType, req.Date, req.Time),
		Type:        models.NotificationReminder,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		SessionID:   sess.ID,
	}
	if err := a.store.AppendNotification(&reminder); err != nil {
		return fail[models.TherapySession](""), fmt.Errorf("sessions: book: reminder: %w", err)
	}

	a.log.Info().
		Str("sessionId", sess.ID).
		Str("therapyType", string(sess.TherapyType)).
		Str("date", sess.Date).
		Msg("session booked")

	return ok(sess), nil
}

// SetStatus overwrites a session's status, whatever it was before.
func (a *SessionsAPI) SetStatus(sessionID string, status models.SessionStatus) (Response[models.TherapySession], error) {
	wait(a.delays.SetSessionStatus)

	sess, err := a.store.SetSessionStatus(sessionID, status)
	if errors.Is(err, store.ErrNotFound) {
		return fail[models.TherapySession]("Session not found"), nil
	}
	if err != nil {
		return fail[models.TherapySession](""), fmt.Errorf("sessions: set status: %w", err)
	}
	return ok(*sess), nil
}

// displayName resolves the denormalized name fields at booking time. A
// missing user just leaves the field blank.
func (a *SessionsAPI) displayName(userID string) string {
	u, err := a.store.UserByID(userID)
	if err != nil {
		return ""
	}
	return u.FullName()
}

// endTimeFor adds the fixed session length to a 24h HH:MM start time,
// wrapping past midnight the way a clock does.
func endTimeFor(start string) (string, error) {
	t, err := time.Parse("15:04", start)
	if err != nil {
		return "", fmt.Errorf("invalid start time %q: %w", start, err)
	}
	return t.Add(sessionLength).Format("15:04"), nil
}

// timestampID matches the portal's id convention: the current timestamp
// as a decimal string. Nanosecond precision keeps back-to-back inserts
// from colliding.
func timestampID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
