package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"requisitions/internal/core/application/usecases/commands"
	"requisitions/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRelayer struct{ mock.Mock }

func (m *MockRelayer) Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockRelayMetrics struct{ mock.Mock }

func (m *MockRelayMetrics) Relayed(n int) { m.Called(n) }
func (m *MockRelayMetrics) RelayFailed()  { m.Called() }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRelayJob(t *testing.T, relayer *MockRelayer, metrics *MockRelayMetrics, schedule string) *jobs.OutboxRelayJob {
	t.Helper()
	cmd, err := commands.NewRelayOutboxCommand(100)
	require.NoError(t, err)
	return jobs.NewOutboxRelayJob(relayer, metrics, schedule, cmd, discardLogger())
}

func TestOutboxRelayJob_RunOnce(t *testing.T) {
	t.Run("relayed", func(t *testing.T) {
		relayer, metrics := new(MockRelayer), new(MockRelayMetrics)
		relayer.On("Handle", mock.Anything, mock.AnythingOfType("commands.RelayOutboxCommand")).Return(4, nil).Once()
		metrics.On("Relayed", 4).Once()

		n := newRelayJob(t, relayer, metrics, "").RunOnce(t.Context())

		assert.Equal(t, 4, n)
		relayer.AssertExpectations(t)
		metrics.AssertExpectations(t)
	})

	t.Run("failed", func(t *testing.T) {
		relayer, metrics := new(MockRelayer), new(MockRelayMetrics)
		relayer.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("broker down")).Once()
		metrics.On("RelayFailed").Once()

		n := newRelayJob(t, relayer, metrics, "").RunOnce(t.Context())

		assert.Zero(t, n)
		metrics.AssertExpectations(t)
		metrics.AssertNotCalled(t, "Relayed", mock.Anything)
	})
}

func TestOutboxRelayJob_StartStop(t *testing.T) {
	job := newRelayJob(t, new(MockRelayer), new(MockRelayMetrics), "0 0 0 1 1 *")

	require.NoError(t, job.Start())
	job.Stop()

	bad := newRelayJob(t, new(MockRelayer), new(MockRelayMetrics), "not a schedule")
	require.Error(t, bad.Start())
}

type fakeJob struct {
	name     string
	startErr error
	log      *[]string
}

func (j fakeJob) Name() string { return j.name }

func (j fakeJob) Start() error {
	*j.log = append(*j.log, "start "+j.name)
	return j.startErr
}

func (j fakeJob) Stop() { *j.log = append(*j.log, "stop "+j.name) }

func TestJobManager(t *testing.T) {
	t.Run("starts in order and stops in reverse", func(t *testing.T) {
		var log []string
		jm := jobs.NewJobManager(fakeJob{name: "a", log: &log}, fakeJob{name: "b", log: &log})

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, log)
	})

	t.Run("failed start stops the started jobs", func(t *testing.T) {
		var log []string
		jm := jobs.NewJobManager(
			fakeJob{name: "a", log: &log},
			fakeJob{name: "b", log: &log, startErr: errors.New("bad spec")},
		)

		err := jm.StartAll()

		require.ErrorContains(t, err, "failed to start b job")
		assert.Equal(t, []string{"start a", "start b", "stop a"}, log)
	})
}
