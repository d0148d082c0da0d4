// Package provision is the range-to-resource reconciliation engine.
//
// Given a validated job it renders one manifest per VLAN id, drives
// the create or delete action over the range with a bounded worker
// pool, and reduces the per-item outcomes into an overall verdict.
// Configuration problems fail fast before any API traffic; per-item
// failures never stop sibling items and only surface in the verdict.
package provision
