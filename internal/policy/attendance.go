package policy

import (
	"time"

	"checklist-service/internal/model"
)

// Attendance window boundaries. These encode the plant's overnight-shift
// policy literally: clock-in opens 03:00 and closes 16:00, clock-out opens
// 17:15 (a 15 minute blackout after 17:00) and stays open through the night
// until 02:00.
const (
	clockInOpenHour   = 3
	clockInCloseHour  = 16
	clockOutOpenHour  = 17
	clockOutBlackout  = 15
	clockOutNightHour = 2
)

// Clock-in counts as on time up to and including 07:30:00.
var lateCutoff = 7*time.Hour + 30*time.Minute

// ClockDecision is the outcome of a window check; Reason is set only on
// rejection.
type ClockDecision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// ClockInWindow reports whether a clock-in is permitted at the given
// wall-clock time. Checked again at submit time so a stale client cannot
// slip past the 16:00 close.
func ClockInWindow(now time.Time) ClockDecision {
	hour := now.Hour()
	if hour < clockInOpenHour {
		return ClockDecision{Reason: "clock-in not yet available"}
	}
	if hour >= clockInCloseHour {
		return ClockDecision{Reason: "clock-in window closed"}
	}
	return ClockDecision{Allowed: true}
}

// ClockInStatus classifies a permitted clock-in as on time or late. This is
// independent of the enable window: a 09:00 clock-in is allowed but late.
func ClockInStatus(now time.Time) model.AttendanceStatus {
	elapsed := time.Duration(now.Hour())*time.Hour +
		time.Duration(now.Minute())*time.Minute +
		time.Duration(now.Second())*time.Second
	if elapsed <= lateCutoff {
		return model.AttendanceOnTime
	}
	return model.AttendanceLate
}

// ClockOutWindow reports whether a clock-out is permitted: from 17:15 in the
// evening, or before 02:00 for overnight shifts.
func ClockOutWindow(now time.Time) ClockDecision {
	hour := now.Hour()
	if hour < clockOutNightHour {
		return ClockDecision{Allowed: true}
	}
	if hour < clockOutOpenHour {
		return ClockDecision{Reason: "clock-out not available at this time"}
	}
	if hour == clockOutOpenHour && now.Minute() < clockOutBlackout {
		return ClockDecision{Reason: "clock-out not available at this time"}
	}
	return ClockDecision{Allowed: true}
}
