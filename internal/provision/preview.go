package provision

import (
	"github.com/vlanadm/vlanadm/internal/config"
	"github.com/vlanadm/vlanadm/internal/nad"
)

// PreviewLimit caps how many manifests a create dry run renders in
// full. The remainder is reported as a count only; this truncation is
// presentation, not partial execution.
const PreviewLimit = 5

// Preview renders a dry run without any API contact. Create modes
// render at most PreviewLimit manifests and return the number of ids
// left unrendered; delete previews state intent for the full range.
func Preview(job *config.Job) ([]Outcome, int) {
	ids := job.Range.IDs()

	if !job.Mode.IsCreate() {
		outcomes := make([]Outcome, 0, len(ids))
		for _, id := range ids {
			name := nad.ResourceName(job.Network.Prefix, id)
			outcomes = append(outcomes, Outcome{
				VlanID: id,
				Name:   name,
				Status: StatusPlanned,
				Detail: "would delete " + job.Network.Namespace + "/" + name,
			})
		}
		return outcomes, 0
	}

	remaining := 0
	if len(ids) > PreviewLimit {
		remaining = len(ids) - PreviewLimit
		ids = ids[:PreviewLimit]
	}

	outcomes := make([]Outcome, 0, len(ids))
	for _, id := range ids {
		manifest := nad.Build(id, job.Network)
		outcome := Outcome{VlanID: id, Name: manifest.Name, Status: StatusPlanned}

		rendered, err := nad.ToYAML(&manifest)
		if err != nil {
			outcome.Status = StatusFailed
			outcome.Detail = err.Error()
		} else {
			outcome.Detail = string(rendered)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, remaining
}
