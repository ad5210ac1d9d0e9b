package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantpitch/pitchdeck/pkg/config"
	"github.com/quantpitch/pitchdeck/pkg/logger"
)

type fakeJob struct {
	name     string
	schedule string
	runs     int
	err      error
}

func (j *fakeJob) Name() string     { return j.name }
func (j *fakeJob) Schedule() string { return j.schedule }
func (j *fakeJob) Run(ctx context.Context) error {
	j.runs++
	return j.err
}

func testLogger() *logger.Logger {
	return logger.New(&config.Config{
		Env:      "development",
		LogLevel: "error",
	})
}

func TestScheduler_AddJob(t *testing.T) {
	s := New(testLogger())

	job := &fakeJob{name: "refresh", schedule: "0 0 6 * * *"}
	require.NoError(t, s.AddJob(job))

	assert.Equal(t, []string{"refresh"}, s.Jobs())
}

func TestScheduler_AddJob_Duplicate(t *testing.T) {
	s := New(testLogger())

	job := &fakeJob{name: "refresh", schedule: "0 0 6 * * *"}
	require.NoError(t, s.AddJob(job))

	err := s.AddJob(&fakeJob{name: "refresh", schedule: "0 0 7 * * *"})
	assert.Error(t, err)
}

func TestScheduler_AddJob_BadSchedule(t *testing.T) {
	s := New(testLogger())

	err := s.AddJob(&fakeJob{name: "broken", schedule: "every day at six"})
	assert.Error(t, err)
	assert.Empty(t, s.Jobs())
}

func TestScheduler_RunJobLogsFailure(t *testing.T) {
	s := New(testLogger())

	// A failing job must not panic the scheduler
	job := &fakeJob{name: "failing", schedule: "0 0 6 * * *", err: context.DeadlineExceeded}
	s.runJob(job)

	assert.Equal(t, 1, job.runs)
}
