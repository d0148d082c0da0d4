package config

import (
	"errors"
	"testing"

	"github.com/vlanadm/vlanadm/internal/util/ptr"
)

// validBridgeJob returns a job that passes validation for bridge creation.
func validBridgeJob() *Job {
	return &Job{
		Range:       VlanRange{Start: 100, End: 110},
		Mode:        ModeCreateBridge,
		Concurrency: 10,
		Network: Network{
			Prefix:    "vlan-",
			Kind:      KindBridge,
			Namespace: "default",
			Bridge:    "br0",
			Labels:    map[string]string{"env": "prod"},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()
	if err := validBridgeJob().Validate(); err != nil {
		t.Errorf("valid bridge job rejected: %v", err)
	}

	localnet := validBridgeJob()
	localnet.Mode = ModeCreateLocalnet
	localnet.Network.Kind = KindLocalnet
	localnet.Network.Bridge = ""
	localnet.Network.MTU = 9000
	if err := localnet.Validate(); err != nil {
		t.Errorf("valid localnet job rejected: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*Job)
		wantErr error
	}{
		{"range above space", func(j *Job) { j.Range = VlanRange{Start: 5000, End: 5001} }, ErrRangeBounds},
		{"range inverted", func(j *Job) { j.Range = VlanRange{Start: 10, End: 5} }, ErrRangeInverted},
		{"zero concurrency", func(j *Job) { j.Concurrency = 0 }, ErrConcurrency},
		{"negative concurrency", func(j *Job) { j.Concurrency = -2 }, ErrConcurrency},
		{"unknown mode", func(j *Job) { j.Mode = "reconcile" }, ErrUnknownMode},
		{"missing prefix", func(j *Job) { j.Network.Prefix = "" }, ErrPrefixRequired},
		{"missing namespace", func(j *Job) { j.Network.Namespace = "" }, ErrNamespaceRequired},
		{"missing bridge", func(j *Job) { j.Network.Bridge = "" }, ErrBridgeRequired},
		{"empty labels", func(j *Job) { j.Network.Labels = nil }, ErrLabelsRequired},
		{"mtu on bridge", func(j *Job) { j.Network.MTU = 1500 }, ErrMTUNotApplicable},
		{
			"mac spoof check on localnet",
			func(j *Job) {
				j.Mode = ModeCreateLocalnet
				j.Network.Kind = KindLocalnet
				j.Network.Bridge = ""
				j.Network.MacSpoofCheck = ptr.Bool(false)
			},
			ErrMacSpoofNotApplicable,
		},
		{
			"bridge name on localnet",
			func(j *Job) {
				j.Mode = ModeCreateLocalnet
				j.Network.Kind = KindLocalnet
			},
			ErrBridgeNotApplicable,
		},
		{
			"mtu below minimum",
			func(j *Job) {
				j.Mode = ModeCreateLocalnet
				j.Network.Kind = KindLocalnet
				j.Network.Bridge = ""
				j.Network.MTU = 60
			},
			ErrMTUOutOfRange,
		},
		{
			"mtu above maximum",
			func(j *Job) {
				j.Mode = ModeCreateLocalnet
				j.Network.Kind = KindLocalnet
				j.Network.Bridge = ""
				j.Network.MTU = 9500
			},
			ErrMTUOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			job := validBridgeJob()
			tt.mutate(job)
			err := job.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_DeleteSkipsTemplateFields(t *testing.T) {
	t.Parallel()
	job := &Job{
		Range:       VlanRange{Start: 100, End: 110},
		Mode:        ModeDelete,
		Concurrency: 10,
		Network: Network{
			Prefix:    "vlan-",
			Namespace: "default",
		},
	}

	// No labels, no bridge: deletion only needs name and namespace.
	if err := job.Validate(); err != nil {
		t.Errorf("delete job rejected: %v", err)
	}
}
