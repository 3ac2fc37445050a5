package config

import "time"

// Timeouts bound the readiness waits of a run.
type Timeouts struct {
	// RoleWaitMaxAttempts caps the identity propagation poll after
	// first-time role creation.
	RoleWaitMaxAttempts int `yaml:"role_wait_max_attempts,omitempty"`

	// RoleWaitDelaySeconds is the initial delay between polls; subsequent
	// delays back off exponentially.
	RoleWaitDelaySeconds int `yaml:"role_wait_delay_seconds,omitempty"`
}

// DefaultTimeouts returns the default readiness budget.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		RoleWaitMaxAttempts:  6,
		RoleWaitDelaySeconds: 2,
	}
}

func (t *Timeouts) applyDefaults() {
	def := DefaultTimeouts()
	if t.RoleWaitMaxAttempts <= 0 {
		t.RoleWaitMaxAttempts = def.RoleWaitMaxAttempts
	}
	if t.RoleWaitDelaySeconds <= 0 {
		t.RoleWaitDelaySeconds = def.RoleWaitDelaySeconds
	}
}

// RoleWaitDelay returns the initial poll delay as a duration.
func (t Timeouts) RoleWaitDelay() time.Duration {
	return time.Duration(t.RoleWaitDelaySeconds) * time.Second
}
