// Package async provides bounded parallel task execution with result
// collection.
//
// The [Run] function fans a slice of work items out to a fixed number
// of worker goroutines and joins on all of them before returning. It
// drives the per-VLAN create and delete paths.
package async
