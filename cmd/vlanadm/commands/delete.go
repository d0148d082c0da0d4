package commands

import (
	"github.com/spf13/cobra"

	"github.com/vlanadm/vlanadm/cmd/vlanadm/handlers"
)

// Delete returns the delete command.
//
// The delete command removes the attachments a previous create produced
// for a range. Deletion is idempotent: ids whose attachment is already
// gone are reported as already absent, not as failures.
func Delete() *cobra.Command {
	var opts handlers.DeleteOptions

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete network attachments for a VLAN range",
		Long: `Delete the NetworkAttachmentDefinition for every VLAN id in a range.

Names are derived the same way create derives them, by appending the
decimal VLAN id to the prefix. Ids whose attachment does not exist are
skipped and reported as already absent, so re-running a delete over a
partially removed range is safe.

Example:
  vlanadm delete --start 100 --end 199 --prefix vlan- --namespace production`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Delete(cmd.Context(), &opts)
		},
	}

	cmd.Flags().IntVar(&opts.Start, "start", 0, "First VLAN id of the range (1-4094)")
	cmd.Flags().IntVar(&opts.End, "end", 0, "Last VLAN id of the range, inclusive (1-4094)")
	cmd.Flags().StringVarP(&opts.Prefix, "prefix", "p", "", "Resource name prefix, appended with the VLAN id")
	cmd.Flags().StringVarP(&opts.Namespace, "namespace", "n", "", "Namespace to delete the attachments from")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 0, "Maximum attachments processed in parallel (default 10)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "List the planned deletions without contacting the cluster")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a vlanadm.yaml defaults file")
	cmd.Flags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "Path to the kubeconfig file (default: in-cluster or $KUBECONFIG)")

	return cmd
}
