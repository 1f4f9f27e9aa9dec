package models

// Role classifies an account. It is closed: every branch on a Role must
// handle both values and reject anything else.
type Role string

const (
	RolePatient      Role = "patient"
	RolePractitioner Role = "practitioner"
)

func (r Role) Valid() bool {
	switch r {
	case RolePatient, RolePractitioner:
		return true
	}
	return false
}

// SessionStatus of a therapy session. Transitions are deliberately
// unrestricted: any status may overwrite any other.
type SessionStatus string

const (
	StatusScheduled   SessionStatus = "scheduled"
	StatusConfirmed   SessionStatus = "confirmed"
	StatusCompleted   SessionStatus = "completed"
	StatusCancelled   SessionStatus = "cancelled"
	StatusRescheduled SessionStatus = "rescheduled"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	}
	return false
}

// TherapyType is one of the nine fixed treatment categories.
type TherapyType string

const (
	Abhyanga      TherapyType = "Abhyanga"
	Shirodhara    TherapyType = "Shirodhara"
	Panchakarma   TherapyType = "Panchakarma"
	Swedana       TherapyType = "Swedana"
	Nasya         TherapyType = "Nasya"
	Basti         TherapyType = "Basti"
	Virechana     TherapyType = "Virechana"
	Vamana        TherapyType = "Vamana"
	Raktamokshana TherapyType = "Raktamokshana"
)

type NotificationType string

const (
	NotificationReminder   NotificationType = "reminder"
	NotificationAlert      NotificationType = "alert"
	NotificationInfo       NotificationType = "info"
	NotificationPrecaution NotificationType = "precaution"
)

type PlanStatus string

const (
	PlanActive    PlanStatus = "active"
	PlanCompleted PlanStatus = "completed"
	PlanPaused    PlanStatus = "paused"
)
