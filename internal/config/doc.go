// Package config defines and validates the inputs of a bulk
// provisioning job: the VLAN range, the network template, and the
// execution settings.
//
// A Job is assembled once from CLI flags (optionally seeded from a
// vlanadm.yaml file), validated, and read-only from then on. All
// configuration problems are surfaced here, before any API traffic.
package config
