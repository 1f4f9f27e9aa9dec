// Package store is the only layer that touches the portal's records.
// View logic never mutates these collections directly; it goes through
// the api package, which goes through here.
package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ayursutra/panchakarma-portal/internal/models"
)

// ErrNotFound is returned when a lookup by id or username misses.
var ErrNotFound = errors.New("record not found")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }

func (s *Store) UserByUsername(username string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, wrap("user by username", err)
	}
	return &u, nil
}

func (s *Store) UserByID(id string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, wrap("user by id", err)
	}
	return &u, nil
}

func (s *Store) SessionsByPatient(patientID string) ([]models.TherapySession, error) {
	var out []models.TherapySession
	if err := s.db.Where("patient_id = ?", patientID).Find(&out).Error; err != nil {
		return nil, wrap("sessions by patient", err)
	}
	return out, nil
}

func (s *Store) SessionsByPractitioner(practitionerID string) ([]models.TherapySession, error) {
	var out []models.TherapySession
	if err := s.db.Where("practitioner_id = ?", practitionerID).Find(&out).Error; err != nil {
		return nil, wrap("sessions by practitioner", err)
	}
	return out, nil
}

func (s *Store) AppendSession(sess *models.TherapySession) error {
	if err := s.db.Create(sess).Error; err != nil {
		return wrap("append session", err)
	}
	return nil
}

// SetSessionStatus overwrites the status unconditionally. There is no
// transition table: completed back to scheduled is allowed, and two
// racing updates resolve last-write-wins.
func (s *Store) SetSessionStatus(id string, status models.SessionStatus) (*models.TherapySession, error) {
	var sess models.TherapySession
	if err := s.db.Where("id = ?", id).First(&sess).Error; err != nil {
		return nil, wrap("session by id", err)
	}
	sess.Status = status
	if err := s.db.Model(&sess).Update("status", status).Error; err != nil {
		return nil, wrap("update session status", err)
	}
	return &sess, nil
}

func (s *Store) NotificationsByUser(userID string) ([]models.Notification, error) {
	var out []models.Notification
	if err := s.db.Where("user_id = ?", userID).Find(&out).Error; err != nil {
		return nil, wrap("notifications by user", err)
	}
	return out, nil
}

func (s *Store) AppendNotification(n *models.Notification) error {
	if err := s.db.Create(n).Error; err != nil {
		return wrap("append notification", err)
	}
	return nil
}

// MarkNotificationRead forces isRead to true. The flag is monotonic:
// nothing ever sets it back, so repeating the call is a no-op.
func (s *Store) MarkNotificationRead(id string) (*models.Notification, error) {
	var n models.Notification
	if err := s.db.Where("id = ?", id).First(&n).Error; err != nil {
		return nil, wrap("notification by id", err)
	}
	n.IsRead = true
	if err := s.db.Model(&n).Update("is_read", true).Error; err != nil {
		return nil, wrap("update notification", err)
	}
	return &n, nil
}

func (s *Store) AppendFeedback(fb *models.Feedback) error {
	if err := s.db.Create(fb).Error; err != nil {
		return wrap("append feedback", err)
	}
	return nil
}

func (s *Store) AllFeedback() ([]models.Feedback, error) {
	var out []models.Feedback
	if err := s.db.Find(&out).Error; err != nil {
		return nil, wrap("all feedback", err)
	}
	return out, nil
}

// FirstPlan returns the seeded therapy plan. The store only ever holds
// one; callers pass a patient id for logging but it is not a filter.
func (s *Store) FirstPlan() (*models.TherapyPlan, error) {
	var p models.TherapyPlan
	if err := s.db.First(&p).Error; err != nil {
		return nil, wrap("therapy plan", err)
	}
	return &p, nil
}

// ProgressSeries returns the wellbeing points in insert order.
func (s *Store) ProgressSeries() ([]models.ProgressPoint, error) {
	var out []models.ProgressPoint
	if err := s.db.Order("id").Find(&out).Error; err != nil {
		return nil, wrap("progress series", err)
	}
	return out, nil
}

func wrap(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("store: %s: %w", op, err)
}
