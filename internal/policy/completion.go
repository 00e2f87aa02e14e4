package policy

import (
	"fmt"
	"math"
	"time"

	"checklist-service/internal/model"
)

const completionBufferMinutes = 5

// CompletionTarget combines a work order's target date and time into a local
// datetime.
func CompletionTarget(targetDate, targetTime string) (time.Time, error) {
	return time.ParseInLocation(model.DateLayout+" 15:04", targetDate+" "+targetTime, time.Local)
}

// ClassifyCompletion labels how a completed work order relates to its target:
// within a 5 minute buffer on either side it is on time, otherwise early or
// late by whole hours and minutes.
func ClassifyCompletion(target, completedAt time.Time) string {
	diffMinutes := int(math.Round(completedAt.Sub(target).Minutes()))
	if diffMinutes >= -completionBufferMinutes && diffMinutes <= completionBufferMinutes {
		return "On Time"
	}
	prefix := "Late by"
	magnitude := diffMinutes
	if diffMinutes < 0 {
		prefix = "Early by"
		magnitude = -diffMinutes
	}
	hours := magnitude / 60
	minutes := magnitude % 60
	if minutes == 0 && hours > 0 {
		return fmt.Sprintf("%s %d jam", prefix, hours)
	}
	return fmt.Sprintf("%s %d jam %d menit", prefix, hours, minutes)
}

// TaskTimeliness labels a work order, or returns "" when it has no completion
// timestamp or an unparsable target.
func TaskTimeliness(task model.MechanicTask) string {
	if task.CompletedAt == nil {
		return ""
	}
	target, err := CompletionTarget(task.TargetDate, task.TargetTime)
	if err != nil {
		return ""
	}
	return ClassifyCompletion(target, *task.CompletedAt)
}
