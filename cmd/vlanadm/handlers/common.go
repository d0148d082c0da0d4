// Package handlers implements the execution logic behind the CLI commands.
//
// Commands parse flags and delegate here. Handlers merge flag values with
// the optional defaults file, validate the resulting job, run it against
// the cluster and render the report.
package handlers

import (
	"context"
	"fmt"

	"github.com/vlanadm/vlanadm/internal/config"
	"github.com/vlanadm/vlanadm/internal/k8s"
	"github.com/vlanadm/vlanadm/internal/provision"
	"github.com/vlanadm/vlanadm/internal/util/labels"
)

// Factory function variables - can be replaced in tests.
var (
	// loadConfigFile reads a vlanadm.yaml defaults file.
	loadConfigFile = config.LoadFile

	// newNADClient builds the cluster client for live runs.
	newNADClient = func(kubeconfigPath string) (k8s.Interface, error) {
		return k8s.NewClient(kubeconfigPath)
	}

	// runJob executes a validated job.
	runJob = provision.Run
)

// CreateOptions carries the create flags. Zero values mean the flag was
// not given; the defaults file fills those in where it can.
type CreateOptions struct {
	Start         int
	End           int
	Prefix        string
	Namespace     string
	Labels        string
	Description   string
	Bridge        string
	MTU           int
	MacSpoofCheck *bool
	Concurrency   int
	DryRun        bool
	ConfigPath    string
	Kubeconfig    string
}

// DeleteOptions carries the delete flags.
type DeleteOptions struct {
	Start       int
	End         int
	Prefix      string
	Namespace   string
	Concurrency int
	DryRun      bool
	ConfigPath  string
	Kubeconfig  string
}

// loadDefaults returns the parsed defaults file, or an empty one when no
// path was given.
func loadDefaults(path string) (*config.File, error) {
	if path == "" {
		return &config.File{}, nil
	}
	return loadConfigFile(path)
}

// buildCreateJob merges flags over file defaults into a validated job.
// Flags always win; the file only fills fields the command line left
// unset.
func buildCreateJob(opts *CreateOptions, kind config.Kind) (*config.Job, error) {
	file, err := loadDefaults(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	start, end := opts.Start, opts.End
	if start == 0 && end == 0 && file.Range != nil {
		start, end = file.Range.Start, file.Range.End
	}
	vr, err := config.NewVlanRange(start, end)
	if err != nil {
		return nil, err
	}

	netw := config.Network{
		Prefix:        firstNonEmpty(opts.Prefix, file.Prefix),
		Kind:          kind,
		Namespace:     firstNonEmpty(opts.Namespace, file.Namespace),
		Description:   firstNonEmpty(opts.Description, file.Description),
		Bridge:        firstNonEmpty(opts.Bridge, file.Bridge),
		MTU:           firstNonZero(opts.MTU, file.MTU),
		MacSpoofCheck: opts.MacSpoofCheck,
	}
	if netw.MacSpoofCheck == nil {
		netw.MacSpoofCheck = file.MacSpoofCheck
	}

	if opts.Labels != "" {
		parsed, err := labels.Parse(opts.Labels)
		if err != nil {
			return nil, fmt.Errorf("invalid --labels: %w", err)
		}
		netw.Labels = parsed
	} else {
		netw.Labels = file.Labels
	}

	mode := config.ModeCreateBridge
	if kind == config.KindLocalnet {
		mode = config.ModeCreateLocalnet
	}

	job := &config.Job{
		Range:       vr,
		Mode:        mode,
		DryRun:      opts.DryRun,
		Concurrency: firstNonZero(opts.Concurrency, file.Concurrency),
		Network:     netw,
	}
	job.ApplyDefaults()
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}

// buildDeleteJob merges flags over file defaults into a validated
// delete job. Template fields of the file (bridge, labels, mtu) are
// irrelevant for deletion and ignored.
func buildDeleteJob(opts *DeleteOptions) (*config.Job, error) {
	file, err := loadDefaults(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	start, end := opts.Start, opts.End
	if start == 0 && end == 0 && file.Range != nil {
		start, end = file.Range.Start, file.Range.End
	}
	vr, err := config.NewVlanRange(start, end)
	if err != nil {
		return nil, err
	}

	job := &config.Job{
		Range:       vr,
		Mode:        config.ModeDelete,
		DryRun:      opts.DryRun,
		Concurrency: firstNonZero(opts.Concurrency, file.Concurrency),
		Network: config.Network{
			Prefix:    firstNonEmpty(opts.Prefix, file.Prefix),
			Namespace: firstNonEmpty(opts.Namespace, file.Namespace),
		},
	}
	job.ApplyDefaults()
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}

// run executes the job and renders the report. Dry runs never build a
// client; live runs fail before touching the range when the client
// cannot be constructed.
func run(ctx context.Context, job *config.Job, kubeconfigPath string) error {
	var client k8s.Interface
	if !job.DryRun {
		var err error
		client, err = newNADClient(kubeconfigPath)
		if err != nil {
			return fmt.Errorf("failed to build cluster client: %w", err)
		}
	}

	outcomes, remaining := runJob(ctx, job, client)
	fmt.Print(renderReport(job, outcomes, remaining))

	return provision.Verdict(outcomes)
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstNonZero(a, b int) int {
	if a != 0 {
		return a
	}
	return b
}
