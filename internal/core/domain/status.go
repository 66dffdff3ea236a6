package domain

// ConfigurationStatus describes the lock of one configuration as seen by the CLI.
type ConfigurationStatus struct {
	Name         string
	Participates bool
	Mode         LockMode
	// Record is nil when the configuration has no lock.
	Record *LockRecord
}

// State reports whether the configuration is locked.
func (s ConfigurationStatus) State() LockState {
	if s.Record == nil {
		return LockStateAbsent
	}
	return LockStatePresent
}

// CheckResult is the outcome of checking one configuration against its lock.
type CheckResult struct {
	Configuration string
	Mode          LockMode
	// Report is nil when the configuration has no lock, or does not participate.
	Report       *DriftReport
	Participates bool
}

// Failed reports whether the check found violations.
func (r CheckResult) Failed() bool {
	return r.Report.HasViolations()
}
