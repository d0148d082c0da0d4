package config

import "fmt"

// VLAN ids live in the standard 802.1Q tag space.
const (
	MinVlanID = 1
	MaxVlanID = 4094
)

// MTU bounds accepted for localnet attachments: IPv4 minimum link MTU
// up to common jumbo frames.
const (
	MinMTU = 68
	MaxMTU = 9000
)

// DefaultConcurrency is the worker budget used when none is given.
const DefaultConcurrency = 10

// Kind selects the attachment implementation of a generated resource.
type Kind string

const (
	// KindBridge attaches workloads through a VLAN-tagged software bridge.
	KindBridge Kind = "bridge"

	// KindLocalnet attaches workloads through an OVN localnet overlay.
	KindLocalnet Kind = "localnet"
)

// Mode is the operation a job performs over its VLAN range.
type Mode string

const (
	ModeCreateBridge   Mode = "create-bridge"
	ModeCreateLocalnet Mode = "create-localnet"
	ModeDelete         Mode = "delete"
)

// IsCreate reports whether the mode provisions resources.
func (m Mode) IsCreate() bool {
	return m == ModeCreateBridge || m == ModeCreateLocalnet
}

// Kind returns the attachment kind a create mode produces.
func (m Mode) Kind() Kind {
	if m == ModeCreateLocalnet {
		return KindLocalnet
	}
	return KindBridge
}

// VlanRange is a contiguous, inclusive range of VLAN ids.
type VlanRange struct {
	Start int
	End   int
}

// NewVlanRange validates the bounds and returns the range.
func NewVlanRange(start, end int) (VlanRange, error) {
	vr := VlanRange{Start: start, End: end}
	if start < MinVlanID || start > MaxVlanID || end < MinVlanID || end > MaxVlanID {
		return vr, fmt.Errorf("%w: %d-%d is outside %d-%d", ErrRangeBounds, start, end, MinVlanID, MaxVlanID)
	}
	if start > end {
		return vr, fmt.Errorf("%w: start %d is after end %d", ErrRangeInverted, start, end)
	}
	return vr, nil
}

// Count returns the number of ids in the range.
func (vr VlanRange) Count() int {
	return vr.End - vr.Start + 1
}

// IDs returns every id in the range in ascending order.
func (vr VlanRange) IDs() []int {
	ids := make([]int, 0, vr.Count())
	for id := vr.Start; id <= vr.End; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Network is the per-VLAN resource template of a job. One resource is
// rendered from it for every id in the range.
type Network struct {
	// Prefix is prepended to the decimal VLAN id to form resource names.
	Prefix string

	// Kind selects the bridge or localnet payload shape.
	Kind Kind

	// Namespace receives the generated resources.
	Namespace string

	// Description is copied into each resource with the {vlan} token
	// replaced by the decimal VLAN id. May be empty.
	Description string

	// Bridge is the bridge device name. Required for KindBridge.
	Bridge string

	// MTU for localnet attachments. Zero means unset, in which case the
	// field is omitted from the rendered payload entirely.
	MTU int

	// MacSpoofCheck toggles MAC spoof filtering on bridge attachments.
	// Nil means unset and defaults to enabled.
	MacSpoofCheck *bool

	// Labels are applied verbatim to every generated resource.
	Labels map[string]string
}

// Job is the complete, validated input of one invocation.
type Job struct {
	Range       VlanRange
	Mode        Mode
	DryRun      bool
	Concurrency int
	Network     Network
}

// ApplyDefaults fills unset execution settings.
func (j *Job) ApplyDefaults() {
	if j.Concurrency == 0 {
		j.Concurrency = DefaultConcurrency
	}
}
