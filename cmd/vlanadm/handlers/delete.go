package handlers

import (
	"context"
	"log"
)

// Delete handles the delete command.
//
// It derives the attachment names from the prefix and range and removes
// each one. Names that do not exist are reported as already absent; the
// run fails only when an existing attachment cannot be removed.
func Delete(ctx context.Context, opts *DeleteOptions) error {
	job, err := buildDeleteJob(opts)
	if err != nil {
		return err
	}

	if job.DryRun {
		log.Printf("Dry run: listing deletions for %s%d-%s%d, no changes will be made",
			job.Network.Prefix, job.Range.Start, job.Network.Prefix, job.Range.End)
	} else {
		log.Printf("Deleting %d attachments from %s (%s%d-%s%d)",
			job.Range.Count(), job.Network.Namespace,
			job.Network.Prefix, job.Range.Start, job.Network.Prefix, job.Range.End)
	}

	return run(ctx, job, opts.Kubeconfig)
}
