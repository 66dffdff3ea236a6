package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/adapters/config"
	"go.trai.ch/pin/internal/adapters/detector"
	"go.trai.ch/pin/internal/adapters/lockfile"
	"go.trai.ch/pin/internal/adapters/snapshot"
	"go.trai.ch/pin/internal/adapters/telemetry"
	"go.trai.ch/pin/internal/app"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const pinYAML = `version: "1"
mode: strict
configurations:
  compile: {}
  test:
    mode: lenient
  docs:
    enabled: false
`

const resolvedYAML = `configurations:
  compile:
    - g:b:2.0
    - g:a:1.0
  test:
    - g:a:1.0
  docs:
    - g:z:1.0
`

const driftYAML = `configurations:
  compile:
    - g:a:1.1
    - g:b:2.0
  test:
    - g:a:1.0
    - module: g:c:1.0
      dependents: [g:a]
`

type project struct {
	root string
	app  *app.App
	out  *bytes.Buffer
}

func newProject(t *testing.T) *project {
	t.Helper()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), pinYAML)
	writeFile(t, filepath.Join(root, domain.DefaultSnapshotFileName), resolvedYAML)
	writeFile(t, filepath.Join(root, "drift.yaml"), driftYAML)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	out := new(bytes.Buffer)
	a := app.New(
		config.NewLoader(log),
		snapshot.NewLoader(),
		lockfile.NewFactory(),
		telemetry.NewNoOpTracer(),
		log,
	).WithOutput(out).WithWorkDir(root)
	a.SetOutputMode(detector.ModePlain)

	return &project{root: root, app: a, out: out}
}

func (p *project) lockPath(name string) string {
	return filepath.Join(p.root, domain.DefaultLocksDirName, name+domain.LockfileExt)
}

func (p *project) readLock(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(p.lockPath(name))
	require.NoError(t, err)
	return string(data)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
}

func TestApp_Write(t *testing.T) {
	p := newProject(t)

	require.NoError(t, p.app.Write(context.Background(), app.WriteOptions{}))

	assert.Equal(t, "g:a=1.0\ng:b=2.0\n", p.readLock(t, "compile"))
	assert.Equal(t, "g:a=1.0\n", p.readLock(t, "test"))
	assert.NoFileExists(t, p.lockPath("docs"))
}

func TestApp_Write_SelectedConfigurations(t *testing.T) {
	p := newProject(t)

	require.NoError(t, p.app.Write(context.Background(), app.WriteOptions{Configurations: []string{"test"}}))

	assert.FileExists(t, p.lockPath("test"))
	assert.NoFileExists(t, p.lockPath("compile"))
}

func TestApp_Write_ReportsEveryFailure(t *testing.T) {
	p := newProject(t)
	ctx := context.Background()
	require.NoError(t, p.app.Write(ctx, app.WriteOptions{}))

	err := p.app.Write(ctx, app.WriteOptions{Snapshot: filepath.Join(p.root, "drift.yaml")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLockingFailed)
	assert.ErrorIs(t, err, domain.ErrLockedVersionMismatch)
	assert.Contains(t, err.Error(), "1 of 2 configurations failed")

	// The strict configuration is refused, the lenient one accepts the extra module.
	assert.Equal(t, "g:a=1.0\ng:b=2.0\n", p.readLock(t, "compile"))
	assert.Equal(t, "g:a=1.0\ng:c=1.0\n", p.readLock(t, "test"))
}

func TestApp_Write_UpdatePolicies(t *testing.T) {
	ctx := context.Background()
	drift := func(p *project) string { return filepath.Join(p.root, "drift.yaml") }

	t.Run("update all", func(t *testing.T) {
		p := newProject(t)
		require.NoError(t, p.app.Write(ctx, app.WriteOptions{}))

		require.NoError(t, p.app.Write(ctx, app.WriteOptions{Snapshot: drift(p), UpdateAll: true}))
		assert.Equal(t, "g:a=1.1\ng:b=2.0\n", p.readLock(t, "compile"))
	})

	t.Run("update one module", func(t *testing.T) {
		p := newProject(t)
		require.NoError(t, p.app.Write(ctx, app.WriteOptions{}))

		require.NoError(t, p.app.Write(ctx, app.WriteOptions{Snapshot: drift(p), Update: []string{"g:a"}}))
		assert.Equal(t, "g:a=1.1\ng:b=2.0\n", p.readLock(t, "compile"))
	})

	t.Run("invalid selector", func(t *testing.T) {
		p := newProject(t)
		err := p.app.Write(ctx, app.WriteOptions{Update: []string{"g"}})
		require.ErrorIs(t, err, domain.ErrInvalidUpdateSelector)
	})
}

func TestApp_Write_UnknownConfiguration(t *testing.T) {
	p := newProject(t)

	err := p.app.Write(context.Background(), app.WriteOptions{Configurations: []string{"runtime"}})
	require.ErrorIs(t, err, domain.ErrConfigurationNotInSnapshot)
	assert.NoDirExists(t, filepath.Join(p.root, domain.DefaultLocksDirName))
}

func TestApp_Check(t *testing.T) {
	p := newProject(t)
	ctx := context.Background()
	require.NoError(t, p.app.Write(ctx, app.WriteOptions{}))

	err := p.app.Check(ctx, app.CheckOptions{Snapshot: filepath.Join(p.root, "drift.yaml")})
	require.ErrorIs(t, err, domain.ErrCheckFailed)
	assert.ErrorIs(t, err, domain.ErrLockedVersionMismatch)
	assert.NotErrorIs(t, err, domain.ErrLockingFailed)

	assert.Equal(t, `compile (strict)
  ✗ g:a: locked 1.0, resolved 1.1 (upgrade)
  ✓ 1 matched
test (lenient)
  ! g:c: resolved 1.0 but not locked
  ✓ 1 matched
2 configurations checked, 1 failed
`, p.out.String())

	// Nothing is written.
	assert.Equal(t, "g:a=1.0\n", p.readLock(t, "test"))
}

func TestApp_Check_Clean(t *testing.T) {
	p := newProject(t)
	ctx := context.Background()
	require.NoError(t, p.app.Write(ctx, app.WriteOptions{}))

	require.NoError(t, p.app.Check(ctx, app.CheckOptions{}))
	assert.Contains(t, p.out.String(), "docs\n  · locking disabled\n")
	assert.Contains(t, p.out.String(), "3 configurations checked\n")
}

func TestApp_Check_MalformedLock(t *testing.T) {
	p := newProject(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(p.lockPath("compile")), domain.DirPerm))
	writeFile(t, p.lockPath("compile"), "g:a\n")

	err := p.app.Check(context.Background(), app.CheckOptions{})
	require.ErrorIs(t, err, domain.ErrLockingFailed)
	assert.ErrorIs(t, err, domain.ErrMalformedLockArtifact)
	assert.NotContains(t, p.out.String(), "compile")
}

func TestApp_Show(t *testing.T) {
	p := newProject(t)
	ctx := context.Background()
	require.NoError(t, p.app.Write(ctx, app.WriteOptions{}))

	require.NoError(t, p.app.Show(ctx, "compile"))
	assert.Equal(t, "compile (strict) 203b3e50414458a9\n  g:a:1.0\n  g:b:2.0\n", p.out.String())

	p.out.Reset()
	require.NoError(t, p.app.Show(ctx, "docs"))
	assert.Equal(t, "docs\n  ! locking is disabled for docs\n  · no lock\n", p.out.String())

	require.ErrorIs(t, p.app.Show(ctx, "../etc"), domain.ErrInvalidConfigurationName)
}

func TestApp_List(t *testing.T) {
	p := newProject(t)
	ctx := context.Background()
	require.NoError(t, p.app.Write(ctx, app.WriteOptions{}))

	require.NoError(t, p.app.List(ctx))
	assert.Equal(t,
		"compile  strict    present  2 entries  203b3e50414458a9\n"+
			"docs     disabled  absent\n"+
			"test     lenient   present  1 entry  43b735588ce8b2bf\n",
		p.out.String())
}

func TestApp_SettingsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockSettingsLoader(ctrl)
	loader.EXPECT().Load("/work").Return(nil, domain.ErrConfigNotFound)

	a := app.New(loader, mocks.NewMockResolutionLoader(ctrl), mocks.NewMockLockStoreFactory(ctrl),
		telemetry.NewNoOpTracer(), mocks.NewMockLogger(ctrl)).WithWorkDir("/work")

	err := a.List(context.Background())
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Write_StoreErrorsAreCollected(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockSettingsLoader(ctrl)
	snapshots := mocks.NewMockResolutionLoader(ctrl)
	stores := mocks.NewMockLockStoreFactory(ctrl)
	store := mocks.NewMockLockStore(ctrl)
	log := mocks.NewMockLogger(ctrl)

	settings := &domain.LockingSettings{
		Root:     "/work",
		LocksDir: domain.DefaultLocksDirName,
		Enabled:  true,
		Mode:     domain.LockModeStrict,
		Configurations: map[string]domain.ConfigurationSettings{
			"compile": {Enabled: true},
			"test":    {Enabled: true},
		},
	}
	modules := []domain.ResolvedModule{{Coordinate: domain.MustModuleCoordinate("g", "a"), Version: "1.0"}}
	diskFull := errors.New("no space left on device")

	loader.EXPECT().Load("/work").Return(settings, nil)
	snapshots.EXPECT().Load("/work/resolved.yaml").Return(&domain.ResolutionSnapshot{
		Configurations: map[string][]domain.ResolvedModule{"compile": modules, "test": modules},
	}, nil)
	stores.EXPECT().Open("/work/dependency-locks").Return(store)
	store.EXPECT().Load(gomock.Any()).Return(nil, nil).Times(2)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(diskFull).Times(2)

	a := app.New(loader, snapshots, stores, telemetry.NewNoOpTracer(), log).WithWorkDir("/work")

	err := a.Write(context.Background(), app.WriteOptions{})
	require.ErrorIs(t, err, domain.ErrLockingFailed)
	assert.ErrorIs(t, err, diskFull)
	assert.Contains(t, err.Error(), "2 of 2 configurations failed")
}

func TestApp_Trace(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), pinYAML)
	writeFile(t, filepath.Join(root, domain.DefaultSnapshotFileName), resolvedYAML)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Cond(func(x any) bool {
		s, ok := x.(string)
		return ok && strings.HasPrefix(s, "trace lock.persist ")
	})).MinTimes(1)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	a := app.New(
		config.NewLoader(log),
		snapshot.NewLoader(),
		lockfile.NewFactory(),
		telemetry.NewOTelTracer(telemetry.InstrumentationName),
		log,
	).WithOutput(new(bytes.Buffer)).WithWorkDir(root)
	a.SetTrace(true)

	require.NoError(t, a.Write(context.Background(), app.WriteOptions{}))
}
