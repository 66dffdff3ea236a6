package locking

import (
	"cmp"
	"slices"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/pin/internal/core/domain"
)

// Reconcile compares a fresh resolution with the previous lock of a configuration.
//
// Each coordinate is classified once, in precedence order: missing, extra,
// version mismatch, match. Missing and extra modules are violations in strict
// mode and accepted in lenient mode; a version mismatch is a violation in every
// mode. Coordinates permitted by allow are never violations. A nil allow permits
// nothing.
func Reconcile(
	previous, resolved *domain.LockRecord,
	mode domain.LockMode,
	allow func(domain.ModuleCoordinate) bool,
) *domain.DriftReport {
	if allow == nil {
		allow = func(domain.ModuleCoordinate) bool { return false }
	}
	if previous == nil {
		previous = domain.MustLockRecord()
	}
	if resolved == nil {
		resolved = domain.MustLockRecord()
	}

	report := &domain.DriftReport{}
	classify := func(d domain.Drift) {
		if allow(d.Coordinate) || tolerated(d.Kind, mode) {
			report.Accepted = append(report.Accepted, d)
			return
		}
		report.Violations = append(report.Violations, d)
	}

	for locked := range previous.All() {
		version, ok := resolved.Version(locked.Coordinate)
		switch {
		case !ok:
			classify(domain.Drift{
				Kind:          domain.DriftMissing,
				Coordinate:    locked.Coordinate,
				LockedVersion: locked.Version,
			})
		case version != locked.Version:
			classify(domain.Drift{
				Kind:            domain.DriftVersionMismatch,
				Coordinate:      locked.Coordinate,
				LockedVersion:   locked.Version,
				ResolvedVersion: version,
				Direction:       direction(locked.Version, version),
			})
		default:
			report.Matched++
		}
	}

	for e := range resolved.All() {
		if _, ok := previous.Version(e.Coordinate); !ok {
			classify(domain.Drift{
				Kind:            domain.DriftExtra,
				Coordinate:      e.Coordinate,
				ResolvedVersion: e.Version,
			})
		}
	}

	slices.SortFunc(report.Violations, compareDrift)
	slices.SortFunc(report.Accepted, compareDrift)
	return report
}

func tolerated(kind domain.DriftKind, mode domain.LockMode) bool {
	return mode == domain.LockModeLenient && kind != domain.DriftVersionMismatch
}

func compareDrift(a, b domain.Drift) int {
	return cmp.Or(
		cmp.Compare(a.Kind, b.Kind),
		a.Coordinate.Compare(b.Coordinate),
	)
}

// direction annotates a version change when both versions are semantic versions.
func direction(locked, resolved string) string {
	from, err := semver.NewVersion(locked)
	if err != nil {
		return ""
	}
	to, err := semver.NewVersion(resolved)
	if err != nil {
		return ""
	}
	switch to.Compare(from) {
	case 1:
		return "upgrade"
	case -1:
		return "downgrade"
	default:
		return ""
	}
}
