package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelete(t *testing.T) {
	cmd := Delete()

	require.NotNil(t, cmd)
	assert.Equal(t, "delete", cmd.Use)
	assert.Equal(t, "Delete network attachments for a VLAN range", cmd.Short)
	assert.Contains(t, cmd.Long, "already absent")
}

func TestDelete_Flags(t *testing.T) {
	cmd := Delete()

	for _, name := range []string{"start", "end", "prefix", "namespace", "concurrency", "dry-run", "config", "kubeconfig"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "%s flag should exist", name)
	}
}

func TestDelete_NoTemplateFlags(t *testing.T) {
	cmd := Delete()

	// Template fields only shape created manifests; deletion needs
	// names, not payloads.
	assert.Nil(t, cmd.Flags().Lookup("bridge"))
	assert.Nil(t, cmd.Flags().Lookup("mtu"))
	assert.Nil(t, cmd.Flags().Lookup("mac-spoof-check"))
	assert.Nil(t, cmd.Flags().Lookup("labels"))
	assert.Nil(t, cmd.Flags().Lookup("description"))
}

func TestDelete_RunE(t *testing.T) {
	cmd := Delete()
	assert.NotNil(t, cmd.RunE, "Delete command should have RunE function")
}
