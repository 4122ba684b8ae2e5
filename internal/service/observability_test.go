package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_Success(t *testing.T) {
	logger, hook := test.NewNullLogger()
	obs := NewLogUseCaseObserver(logger)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "generate-plan",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"passes": 2},
	})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "service_use_case", entry.Message)
	assert.Equal(t, "generate-plan", entry.Data["use_case"])
	assert.Equal(t, int64(12), entry.Data["duration_ms"])
	assert.Equal(t, 2, entry.Data["passes"])
}

func TestLogUseCaseObserver_Failure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	obs := NewLogUseCaseObserver(logger)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "load-demo", Err: errors.New("boom")})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, false, entry.Data["success"])
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "boom")
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
