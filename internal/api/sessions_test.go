package api

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ayursutra/panchakarma-portal/internal/models"
)

func TestListScopesByRole(t *testing.T) {
	a := NewSessionsAPI(setupStore(t), Delays{}, zerolog.Nop())

	resp, err := a.List("1", models.RolePatient)
	if err != nil {
		t.Fatalf("list patient: %v", err)
	}
	if !resp.Success || len(resp.Data) != 3 {
		t.Fatalf("patient 1 sessions = %d, want 3", len(resp.Data))
	}
	for _, s := range resp.Data {
		if s.PatientID != "1" {
			t.Fatalf("session %s leaked into patient 1 view", s.ID)
		}
	}

	resp, err = a.List("2", models.RolePractitioner)
	if err != nil {
		t.Fatalf("list practitioner: %v", err)
	}
	if len(resp.Data) != 3 {
		t.Fatalf("practitioner 2 sessions = %d, want 3", len(resp.Data))
	}

	// An unrelated user sees nothing, successfully.
	resp, err = a.List("999", models.RolePatient)
	if err != nil {
		t.Fatalf("list stranger: %v", err)
	}
	if !resp.Success || len(resp.Data) != 0 {
		t.Fatalf("stranger sessions = %d, want 0", len(resp.Data))
	}
}

func TestListRejectsUnknownRole(t *testing.T) {
	a := NewSessionsAPI(setupStore(t), Delays{}, zerolog.Nop())
	if _, err := a.List("1", models.Role("admin")); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestBookSession(t *testing.T) {
	a := NewSessionsAPI(setupStore(t), Delays{}, zerolog.Nop())

	resp, err := a.Book(BookingRequest{
		TherapyType:    models.Swedana,
		Date:           "2025-09-20",
		Time:           "10:00",
		Notes:          "steam therapy",
		PatientID:      "1",
		PractitionerID: "2",
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if !resp.Success {
		t.Fatalf("book failed: %q", resp.Error)
	}
	sess := resp.Data
	if sess.Status != models.StatusScheduled {
		t.Fatalf("status = %q, want scheduled", sess.Status)
	}
	if sess.EndTime != "11:00" {
		t.Fatalf("endTime = %q, want 11:00", sess.EndTime)
	}
	if sess.ID == "" {
		t.Fatal("expected a generated id")
	}
	if sess.PatientName != "Arjun Sharma" || sess.PractitionerName != "Dr. Priya Mehta" {
		t.Fatalf("denormalized names = %q / %q", sess.PatientName, sess.PractitionerName)
	}

	list, err := a.List("1", models.RolePatient)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Data) != 4 {
		t.Fatalf("sessions after booking = %d, want 4", len(list.Data))
	}
}

func TestBookWrapsPastMidnight(t *testing.T) {
	a := NewSessionsAPI(setupStore(t), Delays{}, zerolog.Nop())

	resp, err := a.Book(BookingRequest{
		TherapyType:    models.Abhyanga,
		Date:           "2025-09-21",
		Time:           "23:30",
		PatientID:      "1",
		PractitionerID: "2",
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if resp.Data.EndTime != "00:30" {
		t.Fatalf("endTime = %q, want 00:30", resp.Data.EndTime)
	}
}

func TestBookAppendsReminderNotification(t *testing.T) {
	st := setupStore(t)
	sessions := NewSessionsAPI(st, Delays{}, zerolog.Nop())
	notifications := NewNotificationsAPI(st, Delays{}, zerolog.Nop())

	before, err := notifications.List("1")
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}

	booked, err := sessions.Book(BookingRequest{
		TherapyType:    models.Nasya,
		Date:           "2025-09-22",
		Time:           "09:30",
		PatientID:      "1",
		PractitionerID: "2",
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	after, err := notifications.List("1")
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(after.Data) != len(before.Data)+1 {
		t.Fatalf("notifications = %d, want %d", len(after.Data), len(before.Data)+1)
	}

	var reminder *models.Notification
	for i := range after.Data {
		if after.Data[i].SessionID == booked.Data.ID {
			reminder = &after.Data[i]
		}
	}
	if reminder == nil {
		t.Fatal("expected a reminder tied to the booked session")
	}
	if reminder.Type != models.NotificationReminder || reminder.IsRead {
		t.Fatalf("reminder = %+v, want unread reminder", reminder)
	}
}

func TestSetStatus(t *testing.T) {
	a := NewSessionsAPI(setupStore(t), Delays{}, zerolog.Nop())

	resp, err := a.SetStatus("1", models.StatusConfirmed)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if !resp.Success || resp.Data.Status != models.StatusConfirmed {
		t.Fatalf("envelope = %+v, want confirmed session", resp)
	}

	list, err := a.List("1", models.RolePatient)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, s := range list.Data {
		if s.ID == "1" && s.Status != models.StatusConfirmed {
			t.Fatalf("status after update = %q, want confirmed", s.Status)
		}
	}
}

func TestSetStatusIsPermissive(t *testing.T) {
	a := NewSessionsAPI(setupStore(t), Delays{}, zerolog.Nop())

	// Session 3 is completed; winding it back to scheduled is allowed.
	resp, err := a.SetStatus("3", models.StatusScheduled)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if !resp.Success || resp.Data.Status != models.StatusScheduled {
		t.Fatalf("envelope = %+v, want scheduled", resp)
	}
}

func TestSetStatusUnknownSession(t *testing.T) {
	a := NewSessionsAPI(setupStore(t), Delays{}, zerolog.Nop())

	resp, err := a.SetStatus("does-not-exist", models.StatusCancelled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Success || resp.Error != "Session not found" {
		t.Fatalf("envelope = %+v, want Session not found", resp)
	}

	// The store must be untouched.
	list, err := a.List("1", models.RolePatient)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Data) != 3 {
		t.Fatalf("sessions = %d, want 3", len(list.Data))
	}
	for _, s := range list.Data {
		if s.Status == models.StatusCancelled {
			t.Fatalf("session %s was cancelled by a missed update", s.ID)
		}
	}
}
