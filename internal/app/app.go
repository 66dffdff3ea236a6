// Package app implements the application layer for pin.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"go.trai.ch/pin/internal/adapters/detector"
	"go.trai.ch/pin/internal/adapters/linear"
	"go.trai.ch/pin/internal/adapters/telemetry"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/pin/internal/engine/locking"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	settingsLoader ports.SettingsLoader
	snapshots      ports.ResolutionLoader
	stores         ports.LockStoreFactory
	tracer         ports.Tracer
	logger         ports.Logger
	out            io.Writer
	mode           detector.OutputMode
	workDir        string
	trace          bool
}

// New creates a new App instance.
func New(
	settingsLoader ports.SettingsLoader,
	snapshots ports.ResolutionLoader,
	stores ports.LockStoreFactory,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		settingsLoader: settingsLoader,
		snapshots:      snapshots,
		stores:         stores,
		tracer:         tracer,
		logger:         log,
		out:            os.Stdout,
		mode:           detector.ModeAuto,
	}
}

// WithOutput sets the writer reports are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithWorkDir sets the directory pin.yaml is searched from.
// The process working directory is used by default.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// SetOutputMode selects how reports and logs are presented.
func (a *App) SetOutputMode(mode detector.OutputMode) {
	if mode == detector.ModeAuto {
		mode = detector.DetectEnvironment()
	}
	a.mode = mode
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(mode.JSONLogs())
	}
}

// SetTrace enables reporting of every locking span through the logger.
func (a *App) SetTrace(enable bool) {
	a.trace = enable
}

// WriteOptions configuration for the Write method.
type WriteOptions struct {
	// Snapshot is the resolution snapshot path. Defaults to resolved.yaml in the project root.
	Snapshot string
	// Configurations limits the write to these names. All snapshot configurations by default.
	Configurations []string
	// UpdateAll replaces every lock without reconciliation.
	UpdateAll bool
	// Update lists group:module or group:* selectors whose drift is accepted.
	Update []string
}

// Write persists the resolved modules of every selected configuration.
// Configurations are persisted concurrently and every failure is reported.
func (a *App) Write(ctx context.Context, opts WriteOptions) error {
	policy, err := locking.NewUpdatePolicy(opts.UpdateAll, opts.Update)
	if err != nil {
		return err
	}

	settings, snapshot, names, err := a.prepare(opts.Snapshot, opts.Configurations)
	if err != nil {
		return err
	}

	stop := a.startTrace()
	defer stop(ctx)

	selector := locking.NewSelector(settings, a.stores.Open(settings.LocksPath()), policy, a.tracer, a.logger)

	errs := make([]error, len(names))
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for i, name := range names {
		if !selector.Participates(name) {
			a.logger.Info(name + ": locking disabled, skipped")
			continue
		}
		modules, _ := snapshot.Modules(name)
		g.Go(func() error {
			errs[i] = selector.For(name).PersistResolvedDependencies(ctx, name, modules)
			return nil
		})
	}
	_ = g.Wait()

	return joinFailures(domain.ErrLockingFailed, errs)
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	Snapshot       string
	Configurations []string
}

// Check reconciles the resolved modules of every selected configuration with its
// lock and prints the drift. Nothing is written.
func (a *App) Check(ctx context.Context, opts CheckOptions) error {
	settings, snapshot, names, err := a.prepare(opts.Snapshot, opts.Configurations)
	if err != nil {
		return err
	}

	stop := a.startTrace()
	defer stop(ctx)

	selector := locking.NewSelector(settings, a.stores.Open(settings.LocksPath()), locking.UpdatePolicy{}, a.tracer, a.logger)

	results := make([]domain.CheckResult, len(names))
	errs := make([]error, len(names))
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for i, name := range names {
		results[i] = domain.CheckResult{Configuration: name}
		provider, ok := selector.Provider(name)
		if !ok {
			continue
		}
		results[i].Participates = true
		results[i].Mode = provider.Mode()

		modules, _ := snapshot.Modules(name)
		g.Go(func() error {
			report, err := provider.Check(ctx, name, modules)
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i].Report = report
			errs[i] = report.Err(name)
			return nil
		})
	}
	_ = g.Wait()

	// Configurations that could not be checked are reported through the error only.
	printable := make([]domain.CheckResult, 0, len(results))
	failed := false
	for i, res := range results {
		if errs[i] != nil && !res.Failed() {
			failed = true
			continue
		}
		printable = append(printable, res)
	}
	a.renderer().Check(printable)

	if failed {
		return joinFailures(domain.ErrLockingFailed, errs)
	}
	return joinFailures(domain.ErrCheckFailed, errs)
}

// Show prints the locked constraints of one configuration.
func (a *App) Show(_ context.Context, configuration string) error {
	if err := domain.ValidateConfigurationName(configuration); err != nil {
		return err
	}

	settings, err := a.loadSettings()
	if err != nil {
		return err
	}

	status, err := a.status(settings, a.stores.Open(settings.LocksPath()), configuration)
	if err != nil {
		return err
	}
	a.renderer().Show(status)
	return nil
}

// List prints every configuration known from pin.yaml or from the lock directory.
func (a *App) List(_ context.Context) error {
	settings, err := a.loadSettings()
	if err != nil {
		return err
	}

	store := a.stores.Open(settings.LocksPath())
	locked, err := store.Configurations()
	if err != nil {
		return err
	}

	names := append(settings.Declared(), locked...)
	slices.Sort(names)
	names = slices.Compact(names)

	statuses := make([]domain.ConfigurationStatus, 0, len(names))
	for _, name := range names {
		status, err := a.status(settings, store, name)
		if err != nil {
			return err
		}
		statuses = append(statuses, status)
	}
	a.renderer().List(statuses)
	return nil
}

func (a *App) status(
	settings *domain.LockingSettings,
	store ports.LockStore,
	name string,
) (domain.ConfigurationStatus, error) {
	cs := settings.For(name)
	record, err := store.Load(name)
	if err != nil {
		return domain.ConfigurationStatus{}, err
	}
	return domain.ConfigurationStatus{
		Name:         name,
		Participates: cs.Enabled,
		Mode:         cs.Mode,
		Record:       record,
	}, nil
}

// prepare loads the settings and the snapshot and selects the configurations to process.
func (a *App) prepare(
	snapshotPath string,
	requested []string,
) (*domain.LockingSettings, *domain.ResolutionSnapshot, []string, error) {
	settings, err := a.loadSettings()
	if err != nil {
		return nil, nil, nil, err
	}

	if snapshotPath == "" {
		snapshotPath = filepath.Join(settings.Root, domain.DefaultSnapshotFileName)
	}
	snapshot, err := a.snapshots.Load(snapshotPath)
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, "failed to load resolution snapshot")
	}

	if len(requested) == 0 {
		return settings, snapshot, snapshot.Names(), nil
	}

	names := slices.Clone(requested)
	slices.Sort(names)
	names = slices.Compact(names)
	for _, name := range names {
		if err := domain.ValidateConfigurationName(name); err != nil {
			return nil, nil, nil, err
		}
		if _, ok := snapshot.Modules(name); !ok {
			err := zerr.Wrap(domain.ErrConfigurationNotInSnapshot, name)
			return nil, nil, nil, zerr.With(zerr.With(err, "configuration", name), "snapshot", snapshotPath)
		}
	}
	return settings, snapshot, names, nil
}

func (a *App) loadSettings() (*domain.LockingSettings, error) {
	dir := a.workDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
		dir = wd
	}

	settings, err := a.settingsLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return settings, nil
}

func (a *App) renderer() *linear.Renderer {
	mode := a.mode
	if mode == detector.ModeAuto {
		mode = detector.DetectEnvironment()
	}
	return linear.NewRenderer(a.out, mode.Profile())
}

// startTrace installs the span bridge when tracing is enabled.
// The returned function flushes and uninstalls it.
func (a *App) startTrace() func(context.Context) {
	if !a.trace {
		return func(context.Context) {}
	}
	shutdown := telemetry.Install(telemetry.NewBridge(a.logger))
	return func(ctx context.Context) {
		_ = shutdown(ctx)
	}
}

// joinFailures combines the non-nil errors under kind, or returns nil.
func joinFailures(kind error, errs []error) error {
	failures := []error{kind}
	for _, err := range errs {
		if err != nil {
			failures = append(failures, err)
		}
	}
	failed := len(failures) - 1
	if failed == 0 {
		return nil
	}
	return zerr.Wrap(errors.Join(failures...), fmt.Sprintf("%d of %d configurations failed", failed, len(errs)))
}
