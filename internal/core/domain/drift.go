package domain

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"
)

// DriftKind classifies a difference between a lock and a fresh resolution.
// Kinds are declared in reporting precedence order.
type DriftKind uint8

const (
	// DriftMissing means a locked module is absent from the resolution.
	DriftMissing DriftKind = iota
	// DriftExtra means a resolved module has no lock entry.
	DriftExtra
	// DriftVersionMismatch means a module resolved to a version other than the locked one.
	DriftVersionMismatch
)

// String returns a short name for the kind.
func (k DriftKind) String() string {
	switch k {
	case DriftMissing:
		return "missing"
	case DriftExtra:
		return "extra"
	case DriftVersionMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Sentinel returns the error kind reported for this drift.
func (k DriftKind) Sentinel() error {
	switch k {
	case DriftMissing:
		return ErrLockedModuleMissing
	case DriftExtra:
		return ErrUnlockedModuleResolved
	default:
		return ErrLockedVersionMismatch
	}
}

// Drift is one difference found by reconciliation.
type Drift struct {
	Kind            DriftKind
	Coordinate      ModuleCoordinate
	LockedVersion   string
	ResolvedVersion string
	// Direction is "upgrade" or "downgrade" for version mismatches between
	// semantic versions, empty otherwise.
	Direction string
}

// String renders the drift as a single report line.
func (d Drift) String() string {
	switch d.Kind {
	case DriftMissing:
		return fmt.Sprintf("%s: locked at %s but no longer resolved", d.Coordinate, d.LockedVersion)
	case DriftExtra:
		return fmt.Sprintf("%s: resolved %s but not locked", d.Coordinate, d.ResolvedVersion)
	default:
		line := fmt.Sprintf("%s: locked %s, resolved %s", d.Coordinate, d.LockedVersion, d.ResolvedVersion)
		if d.Direction != "" {
			line += " (" + d.Direction + ")"
		}
		return line
	}
}

// Err converts the drift into its classified error.
func (d Drift) Err() error {
	err := zerr.Wrap(d.Kind.Sentinel(), d.Coordinate.String())
	err = zerr.With(err, "coordinate", d.Coordinate.String())
	if d.LockedVersion != "" {
		err = zerr.With(err, "locked_version", d.LockedVersion)
	}
	if d.ResolvedVersion != "" {
		err = zerr.With(err, "resolved_version", d.ResolvedVersion)
	}
	return err
}

// DriftReport is the outcome of reconciling one configuration.
type DriftReport struct {
	// Violations are the drifts that fail the build under the active mode.
	Violations []Drift
	// Accepted are drifts tolerated by the active mode or the update policy.
	Accepted []Drift
	// Matched counts modules whose locked and resolved versions agree.
	Matched int
}

// HasViolations reports whether the report must fail the build.
func (r *DriftReport) HasViolations() bool {
	return r != nil && len(r.Violations) > 0
}

// Err aggregates every violation into a single error, or returns nil.
// errors.Is matches each contained kind as well as ErrLockDrift.
func (r *DriftReport) Err(configuration string) error {
	if !r.HasViolations() {
		return nil
	}
	errs := make([]error, 0, len(r.Violations)+1)
	errs = append(errs, ErrLockDrift)
	for _, d := range r.Violations {
		errs = append(errs, d.Err())
	}
	err := zerr.Wrap(errors.Join(errs...), "configuration "+configuration)
	err = zerr.With(err, "configuration", configuration)
	return zerr.With(err, "violations", len(r.Violations))
}
