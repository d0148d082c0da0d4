package handlers

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlanadm/vlanadm/internal/config"
	"github.com/vlanadm/vlanadm/internal/k8s"
	"github.com/vlanadm/vlanadm/internal/nad"
)

// clientMock implements k8s.Interface and records every call.
type clientMock struct {
	mu       sync.Mutex
	existing map[string]bool
	upserts  []string
	deletes  []string

	upsertErr error
	deleteErr error
}

func newClientMock(existing ...string) *clientMock {
	m := &clientMock{existing: make(map[string]bool)}
	for _, name := range existing {
		m.existing[name] = true
	}
	return m
}

func (m *clientMock) Exists(_ context.Context, name, _ string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.existing[name], nil
}

func (m *clientMock) Upsert(_ context.Context, manifest *nad.NetworkAttachmentDefinition) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserts = append(m.upserts, manifest.Name)
	return nil
}

func (m *clientMock) Delete(_ context.Context, name, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletes = append(m.deletes, name)
	return nil
}

// installClientMock swaps the client factory for the test's lifetime
// and silences terminal styling so report output stays plain.
func installClientMock(t *testing.T, mock *clientMock) {
	t.Helper()

	origClient := newNADClient
	origTTY := stdoutIsTerminal
	t.Cleanup(func() {
		newNADClient = origClient
		stdoutIsTerminal = origTTY
	})

	newNADClient = func(_ string) (k8s.Interface, error) { return mock, nil }
	stdoutIsTerminal = func() bool { return false }
}

func writeDefaultsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vlanadm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBuildCreateJob_FlagsOnly(t *testing.T) {
	opts := &CreateOptions{
		Start:     100,
		End:       102,
		Prefix:    "vlan-",
		Namespace: "production",
		Bridge:    "br0",
		Labels:    "env=prod,team=net",
	}

	job, err := buildCreateJob(opts, config.KindBridge)
	require.NoError(t, err)

	assert.Equal(t, config.ModeCreateBridge, job.Mode)
	assert.Equal(t, 100, job.Range.Start)
	assert.Equal(t, 102, job.Range.End)
	assert.Equal(t, config.DefaultConcurrency, job.Concurrency)
	assert.Equal(t, map[string]string{"env": "prod", "team": "net"}, job.Network.Labels)
}

func TestBuildCreateJob_FileDefaults(t *testing.T) {
	path := writeDefaultsFile(t, `
prefix: vlan-
kind: bridge
namespace: production
bridge: br0
labels:
  env: prod
range:
  start: 200
  end: 210
concurrency: 4
`)

	job, err := buildCreateJob(&CreateOptions{ConfigPath: path}, config.KindBridge)
	require.NoError(t, err)

	assert.Equal(t, "vlan-", job.Network.Prefix)
	assert.Equal(t, "br0", job.Network.Bridge)
	assert.Equal(t, 200, job.Range.Start)
	assert.Equal(t, 210, job.Range.End)
	assert.Equal(t, 4, job.Concurrency)
	assert.Equal(t, map[string]string{"env": "prod"}, job.Network.Labels)
}

func TestBuildCreateJob_FlagsOverrideFile(t *testing.T) {
	path := writeDefaultsFile(t, `
prefix: file-
namespace: file-ns
bridge: br-file
labels:
  env: staging
range:
  start: 200
  end: 210
`)

	opts := &CreateOptions{
		ConfigPath: path,
		Start:      300,
		End:        305,
		Prefix:     "flag-",
		Labels:     "env=prod",
	}
	job, err := buildCreateJob(opts, config.KindBridge)
	require.NoError(t, err)

	assert.Equal(t, "flag-", job.Network.Prefix)
	assert.Equal(t, "file-ns", job.Network.Namespace, "unset flag falls back to file")
	assert.Equal(t, 300, job.Range.Start)
	assert.Equal(t, map[string]string{"env": "prod"}, job.Network.Labels)
}

func TestBuildCreateJob_InvalidLabelsFlag(t *testing.T) {
	opts := &CreateOptions{
		Start:     100,
		End:       100,
		Prefix:    "vlan-",
		Namespace: "production",
		Bridge:    "br0",
		Labels:    "badlabel",
	}

	_, err := buildCreateJob(opts, config.KindBridge)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --labels")
}

func TestBuildCreateJob_ValidationFailure(t *testing.T) {
	// Bridge kind without a bridge device.
	opts := &CreateOptions{
		Start:     100,
		End:       102,
		Prefix:    "vlan-",
		Namespace: "production",
		Labels:    "env=prod",
	}

	_, err := buildCreateJob(opts, config.KindBridge)
	require.ErrorIs(t, err, config.ErrBridgeRequired)
}

func TestBuildCreateJob_MissingConfigFile(t *testing.T) {
	opts := &CreateOptions{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")}

	_, err := buildCreateJob(opts, config.KindBridge)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestBuildDeleteJob(t *testing.T) {
	opts := &DeleteOptions{Start: 100, End: 105, Prefix: "vlan-", Namespace: "production"}

	job, err := buildDeleteJob(opts)
	require.NoError(t, err)

	assert.Equal(t, config.ModeDelete, job.Mode)
	assert.Equal(t, 6, job.Range.Count())
	assert.Equal(t, config.DefaultConcurrency, job.Concurrency)
}

func TestBuildDeleteJob_FileDefaults(t *testing.T) {
	path := writeDefaultsFile(t, `
prefix: vlan-
namespace: production
range:
  start: 100
  end: 101
`)

	job, err := buildDeleteJob(&DeleteOptions{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, "vlan-", job.Network.Prefix)
	assert.Equal(t, "production", job.Network.Namespace)
	assert.Equal(t, 100, job.Range.Start)
}

func TestBuildDeleteJob_InvalidRange(t *testing.T) {
	_, err := buildDeleteJob(&DeleteOptions{Start: 10, End: 5, Prefix: "vlan-", Namespace: "ns"})
	require.ErrorIs(t, err, config.ErrRangeInverted)
}
