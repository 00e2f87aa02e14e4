package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checklist-service/internal/model"
)

func TestClassifyCompletionBufferZone(t *testing.T) {
	target := time.Date(2026, 3, 12, 10, 0, 0, 0, time.Local)

	for _, offset := range []time.Duration{
		-5 * time.Minute,
		-time.Minute,
		0,
		time.Minute,
		5 * time.Minute,
	} {
		assert.Equal(t, "On Time", ClassifyCompletion(target, target.Add(offset)), "offset %v", offset)
	}
}

func TestClassifyCompletionLate(t *testing.T) {
	target := time.Date(2026, 3, 12, 10, 0, 0, 0, time.Local)

	assert.Equal(t, "Late by 0 jam 47 menit", ClassifyCompletion(target, target.Add(47*time.Minute)))
	assert.Equal(t, "Late by 0 jam 6 menit", ClassifyCompletion(target, target.Add(6*time.Minute)))
	assert.Equal(t, "Late by 2 jam", ClassifyCompletion(target, target.Add(2*time.Hour)))
	assert.Equal(t, "Late by 1 jam 30 menit", ClassifyCompletion(target, target.Add(90*time.Minute)))
}

func TestClassifyCompletionEarly(t *testing.T) {
	target := time.Date(2026, 3, 12, 10, 0, 0, 0, time.Local)

	assert.Equal(t, "Early by 1 jam 50 menit", ClassifyCompletion(target, target.Add(-110*time.Minute)))
	assert.Equal(t, "Early by 0 jam 6 menit", ClassifyCompletion(target, target.Add(-6*time.Minute)))
	assert.Equal(t, "Early by 3 jam", ClassifyCompletion(target, target.Add(-3*time.Hour)))
}

func TestClassifyCompletionRoundsToMinutes(t *testing.T) {
	target := time.Date(2026, 3, 12, 10, 0, 0, 0, time.Local)

	// 5m29s rounds down to 5 minutes: still inside the buffer.
	assert.Equal(t, "On Time", ClassifyCompletion(target, target.Add(5*time.Minute+29*time.Second)))
	// 5m30s rounds up to 6 minutes: late.
	assert.Equal(t, "Late by 0 jam 6 menit", ClassifyCompletion(target, target.Add(5*time.Minute+30*time.Second)))
}

func TestCompletionTarget(t *testing.T) {
	target, err := CompletionTarget("2026-03-12", "15:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 12, 15, 30, 0, 0, time.Local), target)

	_, err = CompletionTarget("12-03-2026", "15:30")
	assert.Error(t, err)
}

func TestTaskTimeliness(t *testing.T) {
	completed := time.Date(2026, 3, 12, 16, 17, 0, 0, time.Local)
	task := model.MechanicTask{
		TargetDate:  "2026-03-12",
		TargetTime:  "15:30",
		CompletedAt: &completed,
	}
	assert.Equal(t, "Late by 0 jam 47 menit", TaskTimeliness(task))

	task.CompletedAt = nil
	assert.Equal(t, "", TaskTimeliness(task))
}
