// Package locking implements the dependency locking engine: the provider the
// resolver calls before and after resolution, and the reconciliation between a
// fresh resolution and the previous lock.
package locking

import (
	"context"
	"fmt"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

// Provider implements ports.LockingProvider on a lock store.
//
// A Provider keeps no state of its own. Distinct configurations may be handled
// concurrently; a single configuration must not be persisted concurrently.
type Provider struct {
	store  ports.LockStore
	mode   domain.LockMode
	policy UpdatePolicy
	tracer ports.Tracer
	logger ports.Logger
}

// NewProvider creates a Provider enforcing mode on the locks in store.
func NewProvider(
	store ports.LockStore,
	mode domain.LockMode,
	policy UpdatePolicy,
	tracer ports.Tracer,
	logger ports.Logger,
) *Provider {
	return &Provider{
		store:  store,
		mode:   mode,
		policy: policy,
		tracer: tracer,
		logger: logger,
	}
}

// Mode returns the enforcement mode.
func (p *Provider) Mode() domain.LockMode {
	return p.mode
}

// FindLockedDependencies returns one constraint per locked module, in coordinate order.
func (p *Provider) FindLockedDependencies(
	ctx context.Context,
	configuration string,
) ([]domain.DependencyConstraint, error) {
	_, span := p.tracer.Start(ctx, "lock.find", ports.WithAttribute("configuration", configuration))
	defer span.End()

	record, err := p.store.Load(configuration)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(err, "configuration", configuration)
	}
	if record == nil {
		span.SetAttribute("state", string(domain.LockStateAbsent))
		return nil, nil
	}

	span.SetAttribute("state", string(domain.LockStatePresent))
	span.SetAttribute("entries", record.Len())
	return record.Constraints(), nil
}

// PersistResolvedDependencies records the modules selected for a configuration.
//
// When a previous lock is present it is reconciled with the resolution first and
// every violation is reported in one error; nothing is written in that case. An
// unchanged lock is left untouched.
func (p *Provider) PersistResolvedDependencies(
	ctx context.Context,
	configuration string,
	modules []domain.ResolvedModule,
) error {
	_, span := p.tracer.Start(ctx, "lock.persist",
		ports.WithAttribute("configuration", configuration),
		ports.WithAttribute("mode", string(p.mode)),
	)
	defer span.End()

	err := p.persist(configuration, modules, span)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (p *Provider) persist(configuration string, modules []domain.ResolvedModule, span ports.Span) error {
	next, err := domain.NewLockRecordFromResolved(modules)
	if err != nil {
		return zerr.With(err, "configuration", configuration)
	}
	span.SetAttribute("entries", next.Len())

	if p.policy.WriteAll {
		if err := p.save(configuration, next); err != nil {
			return err
		}
		span.SetAttribute("state", string(domain.LockStateUpdated))
		p.logger.Info(fmt.Sprintf("%s: lock replaced with %d entries (%s)", configuration, next.Len(), next.Fingerprint()))
		return nil
	}

	previous, err := p.store.Load(configuration)
	if err != nil {
		return zerr.With(err, "configuration", configuration)
	}

	if previous == nil {
		if err := p.save(configuration, next); err != nil {
			return err
		}
		span.SetAttribute("state", string(domain.LockStateUpdated))
		p.logger.Info(fmt.Sprintf("%s: lock created with %d entries (%s)", configuration, next.Len(), next.Fingerprint()))
		return nil
	}

	report := Reconcile(previous, next, p.mode, p.policy.Allows)
	span.SetAttribute("violations", len(report.Violations))
	for _, d := range report.Accepted {
		p.logger.Info(fmt.Sprintf("%s: %s", configuration, d))
	}
	if report.HasViolations() {
		return report.Err(configuration)
	}

	if previous.Equal(next) {
		span.SetAttribute("state", string(domain.LockStatePresent))
		p.logger.Info(fmt.Sprintf("%s: lock unchanged (%s)", configuration, previous.Fingerprint()))
		return nil
	}

	if err := p.save(configuration, next); err != nil {
		return err
	}
	span.SetAttribute("state", string(domain.LockStateUpdated))
	p.logger.Info(fmt.Sprintf("%s: lock updated %s → %s", configuration, previous.Fingerprint(), next.Fingerprint()))
	return nil
}

// Check reconciles a resolution with the current lock without persisting anything.
// It returns a nil report when the configuration has no lock.
func (p *Provider) Check(
	ctx context.Context,
	configuration string,
	modules []domain.ResolvedModule,
) (*domain.DriftReport, error) {
	_, span := p.tracer.Start(ctx, "lock.check",
		ports.WithAttribute("configuration", configuration),
		ports.WithAttribute("mode", string(p.mode)),
	)
	defer span.End()

	next, err := domain.NewLockRecordFromResolved(modules)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(err, "configuration", configuration)
	}

	previous, err := p.store.Load(configuration)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(err, "configuration", configuration)
	}
	if previous == nil {
		span.SetAttribute("state", string(domain.LockStateAbsent))
		return nil, nil
	}

	report := Reconcile(previous, next, p.mode, p.policy.Allows)
	span.SetAttribute("state", string(domain.LockStatePresent))
	span.SetAttribute("violations", len(report.Violations))
	return report, nil
}

func (p *Provider) save(configuration string, record *domain.LockRecord) error {
	if err := p.store.Save(configuration, record); err != nil {
		return zerr.With(err, "configuration", configuration)
	}
	return nil
}
