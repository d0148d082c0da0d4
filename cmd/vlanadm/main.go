// Package main is the entry point for the vlanadm CLI.
//
// vlanadm provisions and removes VLAN-backed NetworkAttachmentDefinition
// resources in bulk. Given a contiguous VLAN id range and a naming prefix
// it renders one attachment manifest per id and reconciles the cluster
// toward that set, either creating bridge or OVN localnet attachments or
// deleting a previously provisioned range.
//
// Commands: create, delete, init, version, completion.
//
// For detailed usage information, run:
//
//	vlanadm --help
package main

import (
	"fmt"
	"os"

	"github.com/vlanadm/vlanadm/cmd/vlanadm/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
