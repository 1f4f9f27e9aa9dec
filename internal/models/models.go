package models

import "gorm.io/datatypes"

// All identifiers are opaque strings and all timestamps are ISO-8601
// strings, matching what the portal frontend stores and renders.

type User struct {
	ID           string `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Email        string `json:"email"`
	Role         Role   `json:"role" gorm:"not null"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone,omitempty"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// FullName is the display name used when denormalizing onto sessions.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type TherapySession struct {
	ID             string                      `json:"id" gorm:"primaryKey"`
	PatientID      string                      `json:"patientId" gorm:"index"`
	PractitionerID string                      `json:"practitionerId" gorm:"index"`
	TherapyType    TherapyType                 `json:"therapyType"`
	Date           string                      `json:"date"` // zero-padded YYYY-MM-DD
	StartTime      string                      `json:"startTime"`
	EndTime        string                      `json:"endTime"`
	Status         SessionStatus               `json:"status"`
	Notes          string                      `json:"notes,omitempty"`
	Precautions    datatypes.JSONSlice[string] `json:"precautions,omitempty"`
	// Denormalized for display; not kept in sync with the user records.
	PatientName      string `json:"patientName,omitempty"`
	PractitionerName string `json:"practitionerName,omitempty"`
}

type Notification struct {
	ID          string           `json:"id" gorm:"primaryKey"`
	UserID      string           `json:"userId" gorm:"index"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Content     string           `json:"content"`
	Type        NotificationType `json:"type"`
	IsRead      bool             `json:"isRead"` // flips to true once, never back
	CreatedAt   string           `json:"createdAt"`
	SessionID   string           `json:"sessionId,omitempty"`
}

type Feedback struct {
	ID          string `json:"id" gorm:"primaryKey"`
	SessionID   string `json:"sessionId" gorm:"index"`
	PatientID   string `json:"patientId" gorm:"index"`
	Rating      int    `json:"rating"` // 1-5
	Experience  string `json:"experience"`
	Symptoms    string `json:"symptoms,omitempty"`
	PainLevel   *int   `json:"painLevel,omitempty"`   // 0-10, lower is better
	EnergyLevel *int   `json:"energyLevel,omitempty"` // 0-10
	Comments    string `json:"comments,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

type TherapyPlan struct {
	ID                string                           `json:"id" gorm:"primaryKey"`
	PatientID         string                           `json:"patientId" gorm:"index"`
	Name              string                           `json:"name"`
	Description       string                           `json:"description"`
	TotalSessions     int                              `json:"totalSessions"`
	CompletedSessions int                              `json:"completedSessions"`
	StartDate         string                           `json:"startDate"`
	EndDate           string                           `json:"endDate"`
	TherapyTypes      datatypes.JSONSlice[TherapyType] `json:"therapyTypes"`
	Status            PlanStatus                       `json:"status"`
}

// ProgressPoint is one entry of a patient's wellbeing time series. The
// series carries no domain identifier; the row id only preserves insert
// order, which is assumed chronological.
type ProgressPoint struct {
	ID               uint   `json:"-" gorm:"primaryKey"`
	Date             string `json:"date"`
	PainScore        int    `json:"painScore"` // 0-10, lower is better
	EnergyLevel      int    `json:"energyLevel"`
	OverallWellbeing int    `json:"overallWellbeing"`
}
