package db

import (
	"fmt"
	"testing"

	"gorm.io/gorm"

	"github.com/ayursutra/panchakarma-portal/internal/models"
)

func setupSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := Seed(conn); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return conn
}

func TestSeedCounts(t *testing.T) {
	conn := setupSeededDB(t)

	counts := []struct {
		model any
		want  int64
	}{
		{&models.User{}, 2},
		{&models.TherapySession{}, 3},
		{&models.Notification{}, 3},
		{&models.Feedback{}, 1},
		{&models.TherapyPlan{}, 1},
		{&models.ProgressPoint{}, 5},
	}
	for _, c := range counts {
		var got int64
		if err := conn.Model(c.model).Count(&got).Error; err != nil {
			t.Fatalf("count %T: %v", c.model, err)
		}
		if got != c.want {
			t.Fatalf("%T count = %d, want %d", c.model, got, c.want)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	conn := setupSeededDB(t)

	if err := Seed(conn); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	var users int64
	if err := conn.Model(&models.User{}).Count(&users).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if users != 2 {
		t.Fatalf("users after reseed = %d, want 2", users)
	}
}

func TestSeedPreservesListFields(t *testing.T) {
	conn := setupSeededDB(t)

	var sess models.TherapySession
	if err := conn.Where("id = ?", "1").First(&sess).Error; err != nil {
		t.Fatalf("load session: %v", err)
	}
	if len(sess.Precautions) != 2 || sess.Precautions[0] != "Avoid heavy meals 2 hours before" {
		t.Fatalf("precautions = %v", sess.Precautions)
	}

	var plan models.TherapyPlan
	if err := conn.First(&plan).Error; err != nil {
		t.Fatalf("load plan: %v", err)
	}
	if len(plan.TherapyTypes) != 4 || plan.TherapyTypes[0] != models.Abhyanga {
		t.Fatalf("plan therapy types = %v", plan.TherapyTypes)
	}
}
