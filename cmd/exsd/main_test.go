package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/exsd/internal/app"
	"go.trai.ch/exsd/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    &app.App{},
			Logger: mockLogger,
		}, func() { cleaned = true }, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.True(t, cleaned, "components are released after the command")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: &app.App{}, Logger: mockLogger}, func() {}, nil
	}

	// parse requires a file argument.
	exitCode := run(context.Background(), []string{"parse"}, new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
}
