package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	cmd := Create()

	require.NotNil(t, cmd)
	assert.Equal(t, "create", cmd.Use)
	assert.Equal(t, "Create network attachments for a VLAN range", cmd.Short)
	assert.Contains(t, cmd.Long, "one NetworkAttachmentDefinition per VLAN id")
}

func TestCreate_HasSubcommands(t *testing.T) {
	cmd := Create()

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	assert.True(t, subcommands["bridge"], "Expected subcommand bridge not found")
	assert.True(t, subcommands["localnet"], "Expected subcommand localnet not found")
}

func TestCreateBridge_Flags(t *testing.T) {
	cmd := findSubcommand(t, Create(), "bridge")

	assertCommonCreateFlags(t, cmd)

	bridge := cmd.Flags().Lookup("bridge")
	require.NotNil(t, bridge, "bridge flag should exist")
	assert.Equal(t, "b", bridge.Shorthand)

	spoof := cmd.Flags().Lookup("mac-spoof-check")
	require.NotNil(t, spoof, "mac-spoof-check flag should exist")
	assert.Equal(t, "true", spoof.DefValue)

	assert.Nil(t, cmd.Flags().Lookup("mtu"), "bridge should not accept --mtu")
}

func TestCreateLocalnet_Flags(t *testing.T) {
	cmd := findSubcommand(t, Create(), "localnet")

	assertCommonCreateFlags(t, cmd)

	mtu := cmd.Flags().Lookup("mtu")
	require.NotNil(t, mtu, "mtu flag should exist")
	assert.Equal(t, "0", mtu.DefValue)

	assert.Nil(t, cmd.Flags().Lookup("bridge"), "localnet should not accept --bridge")
	assert.Nil(t, cmd.Flags().Lookup("mac-spoof-check"), "localnet should not accept --mac-spoof-check")
}

func TestCreateSubcommands_RunE(t *testing.T) {
	assert.NotNil(t, findSubcommand(t, Create(), "bridge").RunE)
	assert.NotNil(t, findSubcommand(t, Create(), "localnet").RunE)
}

// assertCommonCreateFlags verifies the flag set shared by both create
// subcommands.
func assertCommonCreateFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()

	for _, name := range []string{"start", "end", "prefix", "namespace", "labels", "description", "concurrency", "dry-run", "config", "kubeconfig"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "%s flag should exist", name)
	}

	assert.Equal(t, "p", cmd.Flags().Lookup("prefix").Shorthand)
	assert.Equal(t, "n", cmd.Flags().Lookup("namespace").Shorthand)
	assert.Equal(t, "l", cmd.Flags().Lookup("labels").Shorthand)
	assert.Equal(t, "c", cmd.Flags().Lookup("config").Shorthand)
	assert.Equal(t, "false", cmd.Flags().Lookup("dry-run").DefValue)
}

// findSubcommand locates a direct subcommand by name.
func findSubcommand(t *testing.T, parent *cobra.Command, name string) *cobra.Command {
	t.Helper()

	for _, sub := range parent.Commands() {
		if sub.Name() == name {
			return sub
		}
	}
	t.Fatalf("subcommand %s not found", name)
	return nil
}
