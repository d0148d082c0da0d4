package config

import "errors"

// Validation errors. Each distinct configuration problem maps to its
// own sentinel so callers and tests can tell them apart.
var (
	ErrRangeBounds           = errors.New("vlan range outside the 802.1Q id space")
	ErrRangeInverted         = errors.New("vlan range start is after its end")
	ErrConcurrency           = errors.New("concurrency must be at least 1")
	ErrPrefixRequired        = errors.New("name prefix is required")
	ErrNamespaceRequired     = errors.New("namespace is required")
	ErrBridgeRequired        = errors.New("bridge name is required for bridge networks")
	ErrLabelsRequired        = errors.New("at least one label is required")
	ErrMTUOutOfRange         = errors.New("mtu outside the valid range")
	ErrMTUNotApplicable      = errors.New("mtu applies only to localnet networks")
	ErrMacSpoofNotApplicable = errors.New("mac spoof check applies only to bridge networks")
	ErrBridgeNotApplicable   = errors.New("bridge name applies only to bridge networks")
	ErrUnknownMode           = errors.New("unknown operation mode")
)
