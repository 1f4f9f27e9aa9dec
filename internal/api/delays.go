package api

import "time"

// Delays holds the simulated network latency per operation. The zero
// value waits for nothing, which is what tests want.
type Delays struct {
	Login             time.Duration
	Logout            time.Duration
	ListSessions      time.Duration
	BookSession       time.Duration
	SetSessionStatus  time.Duration
	ListNotifications time.Duration
	MarkRead          time.Duration
	SubmitFeedback    time.Duration
	ListFeedback      time.Duration
	TherapyPlan       time.Duration
	ProgressData      time.Duration
}

// DefaultDelays mirrors the latencies the portal has always simulated.
func DefaultDelays() Delays {
	return Delays{
		Login:             1000 * time.Millisecond,
		Logout:            500 * time.Millisecond,
		ListSessions:      800 * time.Millisecond,
		BookSession:       1000 * time.Millisecond,
		SetSessionStatus:  600 * time.Millisecond,
		ListNotifications: 600 * time.Millisecond,
		MarkRead:          300 * time.Millisecond,
		SubmitFeedback:    800 * time.Millisecond,
		ListFeedback:      600 * time.Millisecond,
		TherapyPlan:       500 * time.Millisecond,
		ProgressData:      700 * time.Millisecond,
	}
}

// wait blocks for the duration. There is deliberately no cancellation
// and no timeout: a simulated call always eventually resolves.
func wait(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
