package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errPrefixRequired     = errors.New("name prefix is required")
	errPrefixInvalid      = errors.New("prefix must be lowercase alphanumeric with hyphens, ending in an alphanumeric or hyphen")
	errNamespaceRequired  = errors.New("namespace is required")
	errBridgeRequired     = errors.New("bridge device name is required")
	errVlanIDInvalid      = errors.New("vlan id must be an integer between 1 and 4094")
	errMTUInvalid         = errors.New("mtu must be an integer between 68 and 9000")
	errConcurrencyInvalid = errors.New("concurrency must be a positive integer")
)
