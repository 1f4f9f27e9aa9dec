package db

import (
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ayursutra/panchakarma-portal/internal/models"
)

// Seed inserts the demo records the portal ships with: one patient, one
// practitioner, their sessions, notifications, a feedback entry, the
// therapy plan, and the wellbeing series. It is idempotent: a store that
// already holds users is left untouched.
func Seed(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	users := []models.User{
		{
			ID:          "1",
			Username:    "patient1",
			Email:       "patient1@example.com",
			Role:        models.RolePatient,
			FirstName:   "Arjun",
			LastName:    "Sharma",
			Phone:       "+91-9876543210",
			DateOfBirth: "1985-03-15",
		},
		{
			ID:        "2",
			Username:  "practitioner1",
			Email:     "practitioner1@example.com",
			Role:      models.RolePractitioner,
			FirstName: "Dr. Priya",
			LastName:  "Mehta",
			Phone:     "+91-9876543211",
		},
	}

	sessions := []models.TherapySession{
		{
			ID:               "1",
			PatientID:        "1",
			PractitionerID:   "2",
			TherapyType:      models.Abhyanga,
			Date:             "2025-09-12",
			StartTime:        "10:00",
			EndTime:          "11:00",
			Status:           models.StatusScheduled,
			Notes:            "First session for stress relief",
			Precautions:      datatypes.JSONSlice[string]{"Avoid heavy meals 2 hours before", "Wear comfortable clothing"},
			PatientName:      "Arjun Sharma",
			PractitionerName: "Dr. Priya Mehta",
		},
		{
			ID:               "2",
			PatientID:        "1",
			PractitionerID:   "2",
			TherapyType:      models.Shirodhara,
			Date:             "2025-09-15",
			StartTime:        "14:00",
			EndTime:          "15:30",
			Status:           models.StatusConfirmed,
			Notes:            "Follow-up session for mental relaxation",
			Precautions:      datatypes.JSONSlice[string]{"Empty stomach", "Remove contact lenses"},
			PatientName:      "Arjun Sharma",
			PractitionerName: "Dr. Priya Mehta",
		},
		{
			ID:               "3",
			PatientID:        "1",
			PractitionerID:   "2",
			TherapyType:      models.Panchakarma,
			Date:             "2025-09-08",
			StartTime:        "09:00",
			EndTime:          "11:00",
			Status:           models.StatusCompleted,
			Notes:            "Detoxification therapy completed successfully",
			PatientName:      "Arjun Sharma",
			PractitionerName: "Dr. Priya Mehta",
		},
	}

	notifications := []models.Notification{
		{
			ID:          "1",
			UserID:      "1",
			Title:       "Pre-procedure Precautions for Abhyanga",
			Description: "Important guidelines for your upcoming Abhyanga session",
			Content:     "Please follow these precautions: 1. Avoid heavy meals 2 hours before the session. 2. Wear comfortable, loose clothing. 3. Arrive 10 minutes early for consultation.",
			Type:        models.NotificationPrecaution,
			IsRead:      false,
			CreatedAt:   "2025-09-10T08:00:00Z",
			SessionID:   "1",
		},
		{
			ID:          "2",
			UserID:      "1",
			Title:       "Session Reminder",
			Description: "Your Shirodhara session is tomorrow",
			Content:     "This is a reminder for your Shirodhara session scheduled for tomorrow at 2:00 PM.",
			Type:        models.NotificationReminder,
			IsRead:      true,
			CreatedAt:   "2025-09-09T10:00:00Z",
			SessionID:   "2",
		},
		{
			ID:          "3",
			UserID:      "1",
			Title:       "Feedback Request",
			Description: "Please provide feedback for your completed session",
			Content:     "We would appreciate your feedback on the Panchakarma session you completed on September 8th.",
			Type:        models.NotificationInfo,
			IsRead:      false,
			CreatedAt:   "2025-09-09T16:00:00Z",
			SessionID:   "3",
		},
	}

	pain, energy := 2, 8
	feedback := []models.Feedback{
		{
			ID:          "1",
			SessionID:   "3",
			PatientID:   "1",
			Rating:      5,
			Experience:  "Excellent",
			Symptoms:    "Reduced stress and better sleep",
			PainLevel:   &pain,
			EnergyLevel: &energy,
			Comments:    "The therapist was very professional and the session was very relaxing.",
			CreatedAt:   "2025-09-08T17:00:00Z",
		},
	}

	plan := models.TherapyPlan{
		ID:                "1",
		PatientID:         "1",
		Name:              "Stress Relief and Detoxification Program",
		Description:       "A comprehensive 8-session program combining various Panchakarma therapies for stress relief and body detoxification.",
		TotalSessions:     8,
		CompletedSessions: 1,
		StartDate:         "2025-09-01",
		EndDate:           "2025-10-01",
		TherapyTypes:      datatypes.JSONSlice[models.TherapyType]{models.Abhyanga, models.Shirodhara, models.Panchakarma, models.Swedana},
		Status:            models.PlanActive,
	}

	progress := []models.ProgressPoint{
		{Date: "2025-09-01", PainScore: 7, EnergyLevel: 4, OverallWellbeing: 5},
		{Date: "2025-09-03", PainScore: 6, EnergyLevel: 5, OverallWellbeing: 6},
		{Date: "2025-09-05", PainScore: 5, EnergyLevel: 6, OverallWellbeing: 6},
		{Date: "2025-09-08", PainScore: 3, EnergyLevel: 7, OverallWellbeing: 8},
		{Date: "2025-09-10", PainScore: 2, EnergyLevel: 8, OverallWellbeing: 8},
	}

	return conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		if err := tx.Create(&sessions).Error; err != nil {
			return fmt.Errorf("seed sessions: %w", err)
		}
		if err := tx.Create(&notifications).Error; err != nil {
			return fmt.Errorf("seed notifications: %w", err)
		}
		if err := tx.Create(&feedback).Error; err != nil {
			return fmt.Errorf("seed feedback: %w", err)
		}
		if err := tx.Create(&plan).Error; err != nil {
			return fmt.Errorf("seed therapy plan: %w", err)
		}
		if err := tx.Create(&progress).Error; err != nil {
			return fmt.Errorf("seed progress: %w", err)
		}
		return nil
	})
}
