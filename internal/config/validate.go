package config

import "fmt"

// Validate checks the job for configuration errors. It is called once
// before any work is dispatched; per-item execution assumes a valid
// job and has no failure path of its own for these conditions.
func (j *Job) Validate() error {
	if _, err := NewVlanRange(j.Range.Start, j.Range.End); err != nil {
		return err
	}
	if j.Concurrency < 1 {
		return fmt.Errorf("%w: got %d", ErrConcurrency, j.Concurrency)
	}

	switch j.Mode {
	case ModeCreateBridge, ModeCreateLocalnet, ModeDelete:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, j.Mode)
	}

	if j.Network.Prefix == "" {
		return ErrPrefixRequired
	}
	if j.Network.Namespace == "" {
		return ErrNamespaceRequired
	}

	if j.Mode == ModeDelete {
		// Deletion addresses resources by name only; the template
		// fields are create-time concerns.
		return nil
	}

	return j.validateNetwork()
}

// validateNetwork checks the create-time template fields, including
// that each optional flag is applicable to the selected kind.
func (j *Job) validateNetwork() error {
	n := &j.Network

	if len(n.Labels) == 0 {
		return fmt.Errorf("%w for %s networks", ErrLabelsRequired, n.Kind)
	}

	switch j.Mode {
	case ModeCreateBridge:
		if n.Bridge == "" {
			return ErrBridgeRequired
		}
		if n.MTU != 0 {
			return ErrMTUNotApplicable
		}
	case ModeCreateLocalnet:
		if n.Bridge != "" {
			return ErrBridgeNotApplicable
		}
		if n.MacSpoofCheck != nil {
			return ErrMacSpoofNotApplicable
		}
		if n.MTU != 0 && (n.MTU < MinMTU || n.MTU > MaxMTU) {
			return fmt.Errorf("%w: %d not in %d-%d", ErrMTUOutOfRange, n.MTU, MinMTU, MaxMTU)
		}
	}

	return nil
}
