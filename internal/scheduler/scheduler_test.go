package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BikeRental/pkg/logger"
)

type evictorStub struct {
	calls int
	err   error
}

func (e *evictorStub) EvictIdle(ctx context.Context) (int, int64, error) {
	e.calls++
	if _, ok := ctx.Deadline(); !ok {
		return 0, 0, errors.New("sweep must run with a deadline")
	}
	return 2, 5, e.err
}

func TestNewScheduler_RegistersSweep(t *testing.T) {
	s, err := NewScheduler(&evictorStub{}, "@every 10m", time.UTC, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Jobs())

	s.Start()
	s.Stop()
}

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	_, err := NewScheduler(&evictorStub{}, "every ten minutes", time.UTC, logger.NewNop())
	assert.Error(t, err)
}

func TestSweepSessions(t *testing.T) {
	stub := &evictorStub{}
	s, err := NewScheduler(stub, "*/5 * * * *", nil, logger.NewNop())
	require.NoError(t, err)

	s.SweepSessions()
	assert.Equal(t, 1, stub.calls)

	stub.err = errors.New("db down")
	s.SweepSessions()
	assert.Equal(t, 2, stub.calls)
}
