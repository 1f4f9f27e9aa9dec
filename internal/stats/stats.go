// Package stats holds the pure derivations the portal views recompute
// on every render. Everything here is synchronous, side-effect-free,
// and safe to call with whatever the api layer last returned.
package stats

import (
	"math"
	"time"

	"github.com/ayursutra/panchakarma-portal/internal/models"
)

// AverageRating is the mean rating over all feedback, rounded to one
// decimal. An empty collection averages to 0.
func AverageRating(feedback []models.Feedback) float64 {
	if len(feedback) == 0 {
		return 0
	}
	total := 0
	for _, fb := range feedback {
		total += fb.Rating
	}
	return round1(float64(total) / float64(len(feedback)))
}

// AveragePainLevel averages the optional pain level over the records
// that carry one; records without it count in neither numerator nor
// denominator. 0 when no record qualifies.
func AveragePainLevel(feedback []models.Feedback) float64 {
	total, count := 0, 0
	for _, fb := range feedback {
		if fb.PainLevel != nil {
			total += *fb.PainLevel
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return round1(float64(total) / float64(count))
}

// AverageEnergyLevel is AveragePainLevel for the energy field.
func AverageEnergyLevel(feedback []models.Feedback) float64 {
	total, count := 0, 0
	for _, fb := range feedback {
		if fb.EnergyLevel != nil {
			total += *fb.EnergyLevel
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return round1(float64(total) / float64(count))
}

// Improvement compares the first and latest points of the wellbeing
// series. Pain improves downward, energy and wellbeing upward.
type Improvement struct {
	Pain      int `json:"painImprovement"`
	Energy    int `json:"energyImprovement"`
	Wellbeing int `json:"wellbeingImprovement"`
}

// ImprovementStats is nil when the series has fewer than two points.
func ImprovementStats(series []models.ProgressPoint) *Improvement {
	if len(series) < 2 {
		return nil
	}
	first, latest := series[0], series[len(series)-1]
	return &Improvement{
		Pain:      first.PainScore - latest.PainScore,
		Energy:    latest.EnergyLevel - first.EnergyLevel,
		Wellbeing: latest.OverallWellbeing - first.OverallWellbeing,
	}
}

// Latest returns the newest point of the series, or nil when empty.
func Latest(series []models.ProgressPoint) *models.ProgressPoint {
	if len(series) == 0 {
		return nil
	}
	p := series[len(series)-1]
	return &p
}

// PlanProgressPercent is the completed share of a plan, rounded to a
// whole percent.
func PlanProgressPercent(plan *models.TherapyPlan) int {
	if plan == nil || plan.TotalSessions == 0 {
		return 0
	}
	return int(math.Round(float64(plan.CompletedSessions) / float64(plan.TotalSessions) * 100))
}

// Partition splits a session list the way the dashboards render it.
// Date comparison is plain string comparison, which is correct because
// dates are zero-padded YYYY-MM-DD.
type Partition struct {
	Today     []models.TherapySession
	Upcoming  []models.TherapySession
	Pending   []models.TherapySession
	Completed []models.TherapySession
}

func PartitionSessions(sessions []models.TherapySession, today string) Partition {
	var p Partition
	for _, s := range sessions {
		if s.Date == today {
			p.Today = append(p.Today, s)
		}
		if s.Date > today {
			p.Upcoming = append(p.Upcoming, s)
		}
		if s.Status == models.StatusScheduled {
			p.Pending = append(p.Pending, s)
		}
		if s.Status == models.StatusCompleted {
			p.Completed = append(p.Completed, s)
		}
	}
	return p
}

// OnDate filters sessions to a single calendar date.
func OnDate(sessions []models.TherapySession, date string) []models.TherapySession {
	var out []models.TherapySession
	for _, s := range sessions {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out
}

// UnreadCount counts the notifications still waiting to be read.
func UnreadCount(notifications []models.Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// Today is the current calendar date in the format the session records
// use.
func Today() string {
	return time.Now().Format("2006-01-02")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
