package provision

import (
	"context"

	"github.com/vlanadm/vlanadm/internal/config"
	"github.com/vlanadm/vlanadm/internal/k8s"
	"github.com/vlanadm/vlanadm/internal/nad"
	"github.com/vlanadm/vlanadm/internal/util/async"
)

// Run executes a job and returns its outcomes sorted by VLAN id, plus
// the number of ids a dry-run preview left unrendered (always zero in
// live modes, where every id in the range is processed).
//
// Dry runs never touch the client, which may then be nil.
func Run(ctx context.Context, job *config.Job, client k8s.Interface) ([]Outcome, int) {
	if job.DryRun {
		return Preview(job)
	}

	var action func(context.Context, int) Outcome
	if job.Mode.IsCreate() {
		action = func(ctx context.Context, id int) Outcome {
			return createOne(ctx, id, job, client)
		}
	} else {
		action = func(ctx context.Context, id int) Outcome {
			return deleteOne(ctx, id, job, client)
		}
	}

	outcomes := async.Run(ctx, job.Range.IDs(), job.Concurrency, action)
	SortByVlanID(outcomes)
	return outcomes, 0
}

// createOne builds and upserts the manifest for one id. A client
// failure is recorded locally and never propagates.
func createOne(ctx context.Context, id int, job *config.Job, client k8s.Interface) Outcome {
	manifest := nad.Build(id, job.Network)
	outcome := Outcome{VlanID: id, Name: manifest.Name}

	if err := client.Upsert(ctx, &manifest); err != nil {
		outcome.Status = StatusFailed
		outcome.Detail = err.Error()
		return outcome
	}
	outcome.Status = StatusCreated
	return outcome
}

// deleteOne removes the resource for one id. A resource that was
// never there is a successful no-op, distinguished from transport
// failures by the existence pre-check.
func deleteOne(ctx context.Context, id int, job *config.Job, client k8s.Interface) Outcome {
	name := nad.ResourceName(job.Network.Prefix, id)
	outcome := Outcome{VlanID: id, Name: name}

	found, err := client.Exists(ctx, name, job.Network.Namespace)
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Detail = err.Error()
		return outcome
	}
	if !found {
		outcome.Status = StatusAlreadyAbsent
		return outcome
	}

	if err := client.Delete(ctx, name, job.Network.Namespace); err != nil {
		outcome.Status = StatusFailed
		outcome.Detail = err.Error()
		return outcome
	}
	outcome.Status = StatusDeleted
	return outcome
}
