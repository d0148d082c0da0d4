// Package wizard implements the interactive questionnaire behind
// `vlanadm init`. It collects a network template and VLAN range
// through terminal forms and writes the result as a vlanadm.yaml
// file that the create and delete commands accept via --config.
package wizard
