package handlers

import (
	"context"
	"log"

	"github.com/vlanadm/vlanadm/internal/config"
)

// CreateBridge handles the create bridge command.
//
// It merges flags with the optional defaults file, validates the job and
// upserts one bridge attachment per VLAN id in the range. With --dry-run
// the manifests are rendered locally and the cluster is never contacted.
func CreateBridge(ctx context.Context, opts *CreateOptions) error {
	return create(ctx, opts, config.KindBridge)
}

// CreateLocalnet handles the create localnet command.
func CreateLocalnet(ctx context.Context, opts *CreateOptions) error {
	return create(ctx, opts, config.KindLocalnet)
}

func create(ctx context.Context, opts *CreateOptions, kind config.Kind) error {
	job, err := buildCreateJob(opts, kind)
	if err != nil {
		return err
	}

	if job.DryRun {
		log.Printf("Dry run: rendering %s attachments %s%d-%s%d, no changes will be made",
			kind, job.Network.Prefix, job.Range.Start, job.Network.Prefix, job.Range.End)
	} else {
		log.Printf("Creating %d %s attachments in %s (%s%d-%s%d)",
			job.Range.Count(), kind, job.Network.Namespace,
			job.Network.Prefix, job.Range.Start, job.Network.Prefix, job.Range.End)
	}

	return run(ctx, job, opts.Kubeconfig)
}
