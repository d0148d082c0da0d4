// Package labels parses and renders Kubernetes label sets for
// network attachment resources.
//
// Labels arrive from the CLI as a comma-separated key=value list and
// are applied verbatim to every generated resource in a range.
package labels
