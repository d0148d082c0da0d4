package provision

import (
	"fmt"
	"sort"
)

// Status classifies what happened to one VLAN id.
type Status string

const (
	StatusCreated       Status = "created"
	StatusDeleted       Status = "deleted"
	StatusAlreadyAbsent Status = "already absent"
	StatusFailed        Status = "failed"

	// StatusPlanned marks a dry-run outcome: the action that would
	// have been taken, without contacting the API.
	StatusPlanned Status = "planned"
)

// Outcome is the result of processing one VLAN id. Exactly one is
// produced per id in the range.
type Outcome struct {
	VlanID int
	Name   string
	Status Status

	// Detail carries the error message for failed items and the
	// rendered manifest or intent for planned items.
	Detail string
}

// Summary aggregates outcomes by status.
type Summary struct {
	Total         int
	Created       int
	Deleted       int
	AlreadyAbsent int
	Failed        int
	Planned       int
}

// Summarize reduces outcomes to counts.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch o.Status {
		case StatusCreated:
			s.Created++
		case StatusDeleted:
			s.Deleted++
		case StatusAlreadyAbsent:
			s.AlreadyAbsent++
		case StatusFailed:
			s.Failed++
		case StatusPlanned:
			s.Planned++
		}
	}
	return s
}

// Verdict applies the aggregation policy: every item is processed
// regardless of earlier failures, and the run as a whole fails if any
// single item failed.
func Verdict(outcomes []Outcome) error {
	s := Summarize(outcomes)
	if s.Failed > 0 {
		return fmt.Errorf("%d of %d items failed", s.Failed, s.Total)
	}
	return nil
}

// SortByVlanID orders outcomes for stable reporting. Completion order
// is nondeterministic under the worker pool.
func SortByVlanID(outcomes []Outcome) {
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].VlanID < outcomes[j].VlanID })
}
