package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/adapters/config"
	"go.trai.ch/pin/internal/adapters/lockfile"
	"go.trai.ch/pin/internal/adapters/snapshot"
	"go.trai.ch/pin/internal/adapters/telemetry"
	"go.trai.ch/pin/internal/app"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// newProvider returns a provider whose App runs on real adapters in root.
func newProvider(t *testing.T, root string, log *mocks.MockLogger) ComponentProvider {
	t.Helper()
	application := app.New(
		config.NewLoader(log),
		snapshot.NewLoader(),
		lockfile.NewFactory(),
		telemetry.NewNoOpTracer(),
		log,
	).WithWorkDir(root).WithOutput(new(bytes.Buffer))

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log}, func() {}, nil
	}
}

func writeProject(t *testing.T, resolved string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ConfigFileName),
		[]byte("configurations:\n  compile: {}\n"), domain.PrivateFilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.DefaultSnapshotFileName),
		[]byte(resolved), domain.PrivateFilePerm))
	return root
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App: app.New(
				mocks.NewMockSettingsLoader(ctrl),
				mocks.NewMockResolutionLoader(ctrl),
				mocks.NewMockLockStoreFactory(ctrl),
				telemetry.NewNoOpTracer(),
				mockLogger,
			),
			Logger: mockLogger,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
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

// TestRun_WriteThenCheck drives the locking workflow end to end.
func TestRun_WriteThenCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	root := writeProject(t, "configurations:\n  compile:\n    - g:a:1.0\n")
	provider := newProvider(t, root, mockLogger)
	ctx := context.Background()

	assert.Equal(t, 0, run(ctx, []string{"write", "-o", "plain"}, new(bytes.Buffer), provider))
	assert.FileExists(t, filepath.Join(root, domain.DefaultLocksDirName, "compile.lockfile"))

	// A drifting resolution fails the check without logging an error.
	require.NoError(t, os.WriteFile(filepath.Join(root, "drift.yaml"),
		[]byte("configurations:\n  compile:\n    - g:a:2.0\n"), domain.PrivateFilePerm))
	assert.Equal(t, 1, run(ctx, []string{"check", "-o", "plain", "-s", filepath.Join(root, "drift.yaml")}, new(bytes.Buffer), provider))
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Cond(func(x any) bool {
		err, ok := x.(error)
		return ok && errors.Is(err, domain.ErrConfigurationNotInSnapshot)
	})).Times(1)

	root := writeProject(t, "configurations:\n  compile:\n    - g:a:1.0\n")
	exitCode := run(context.Background(), []string{"write", "runtime"}, new(bytes.Buffer), newProvider(t, root, mockLogger))

	assert.Equal(t, 1, exitCode)
}

// TestRun_Options verifies that options are applied to the App before execution.
func TestRun_Options(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	root := writeProject(t, "configurations:\n  compile:\n    - g:a:1.0\n")
	out := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"show", "compile", "-o", "plain"}, new(bytes.Buffer),
		newProvider(t, root, mockLogger), func(a *app.App) { a.WithOutput(out) })

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "compile (strict)\n  · no lock\n", out.String())
}
